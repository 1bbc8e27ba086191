// Package telemetry 提供调试用的 HTTP/WebSocket 遥测端点
// 查看器每帧发布一次快照，HTTP 取最新值，WebSocket 持续推送
package telemetry

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"headbox/pkg/core"
)

// Frame 每帧发布一次的遥测快照
type Frame struct {
	Pose        core.Pose `json:"pose"`
	Calibrating bool      `json:"calibrating"`
	Calibrated  bool      `json:"calibrated"`
	GazeX       int       `json:"gaze_x"`
	GazeY       int       `json:"gaze_y"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // 本地调试端点，放开来源检查
	},
}

// Server 持有最新快照并向 WebSocket 订阅者推送
type Server struct {
	mu        sync.RWMutex
	last      Frame
	haveFrame bool

	clientsMu sync.Mutex
	clients   map[*websocket.Conn]struct{}
}

// NewServer 创建遥测服务
func NewServer() *Server {
	return &Server{
		clients: make(map[*websocket.Conn]struct{}),
	}
}

// Handler 构造路由
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/state", s.handleState)
	mux.HandleFunc("/ws", s.handleWS)
	return mux
}

// Start 在指定地址启动遥测服务（后台 goroutine）
func Start(addr string) *Server {
	s := NewServer()
	go func() {
		if err := http.ListenAndServe(addr, s.Handler()); err != nil {
			log.Printf("遥测服务退出: %v", err)
		}
	}()
	log.Printf("遥测服务监听于 %s", addr)
	return s
}

// Publish 更新最新快照并推送给所有订阅者
func (s *Server) Publish(f Frame) {
	s.mu.Lock()
	s.last = f
	s.haveFrame = true
	s.mu.Unlock()

	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	for conn := range s.clients {
		if err := conn.WriteJSON(f); err != nil {
			conn.Close()
			delete(s.clients, conn)
		}
	}
}

// handleState 返回最新快照
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.haveFrame {
		http.Error(w, "no data yet", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.last); err != nil {
		log.Printf("遥测编码失败: %v", err)
	}
}

// handleWS 升级为 WebSocket 并注册订阅者
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket 升级失败: %v", err)
		return
	}

	s.clientsMu.Lock()
	s.clients[conn] = struct{}{}
	s.clientsMu.Unlock()
	log.Printf("遥测订阅者已连接: %s", conn.RemoteAddr())
}
