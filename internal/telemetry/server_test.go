package telemetry

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"headbox/pkg/core"
)

func TestStateEndpointBeforeFirstFrame(t *testing.T) {
	ts := httptest.NewServer(NewServer().Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/state")
	if err != nil {
		t.Fatalf("GET /api/state: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("无数据时状态码 = %d, want %d", resp.StatusCode, http.StatusServiceUnavailable)
	}
}

func TestStateEndpointReturnsLatestFrame(t *testing.T) {
	s := NewServer()
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	s.Publish(Frame{Pose: core.Pose{Yaw: 10}, GazeX: 100})
	s.Publish(Frame{Pose: core.Pose{Yaw: 12, Pitch: -5}, Calibrated: true, GazeX: 960, GazeY: 270})

	resp, err := http.Get(ts.URL + "/api/state")
	if err != nil {
		t.Fatalf("GET /api/state: %v", err)
	}
	defer resp.Body.Close()

	var got Frame
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("解码响应失败: %v", err)
	}

	if got.Pose.Yaw != 12 || got.Pose.Pitch != -5 || !got.Calibrated || got.GazeX != 960 || got.GazeY != 270 {
		t.Errorf("返回的不是最新快照: %+v", got)
	}
}

func TestWebSocketPush(t *testing.T) {
	s := NewServer()
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("WebSocket 连接失败: %v", err)
	}
	defer conn.Close()

	// 等待服务端完成订阅注册
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		s.clientsMu.Lock()
		n := len(s.clients)
		s.clientsMu.Unlock()
		if n > 0 {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}

	s.Publish(Frame{Pose: core.Pose{Yaw: 3}, Calibrating: true})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var got Frame
	if err := conn.ReadJSON(&got); err != nil {
		t.Fatalf("读取推送失败: %v", err)
	}
	if got.Pose.Yaw != 3 || !got.Calibrating {
		t.Errorf("推送内容 = %+v", got)
	}
}
