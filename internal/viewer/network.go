package viewer

import (
	"fmt"
	"log"
	"net"
	"sync"

	"headbox/pkg/core"
	"headbox/pkg/protocol"
)

const readBufferSize = 1024

// PoseReceiver 姿态接收器
// 后台 goroutine 独占 UDP socket，解码后写入缓冲通道；
// 渲染线程每帧用 Poll 非阻塞排空通道，只保留最新姿态
type PoseReceiver struct {
	conn    *net.UDPConn
	forward *net.UDPConn // 可选：把合法负载原样转发给下游消费者

	poseChan chan core.Pose
	done     chan struct{}
	wg       sync.WaitGroup
}

// ListenPose 绑定 UDP 端口并启动接收循环
// 绑定失败直接返回错误，进程级处理交给调用方
func ListenPose(port int, forwardAddr string) (*PoseReceiver, error) {
	conn, err := net.ListenUDP("udp", &net.UDPAddr{Port: port})
	if err != nil {
		return nil, fmt.Errorf("绑定 UDP 端口 %d 失败: %w", port, err)
	}

	r := &PoseReceiver{
		conn:     conn,
		poseChan: make(chan core.Pose, 64),
		done:     make(chan struct{}),
	}

	if forwardAddr != "" {
		addr, err := net.ResolveUDPAddr("udp", forwardAddr)
		if err != nil {
			conn.Close()
			return nil, fmt.Errorf("解析转发地址 %q 失败: %w", forwardAddr, err)
		}
		fconn, err := net.DialUDP("udp", nil, addr)
		if err != nil {
			conn.Close()
			return nil, fmt.Errorf("连接转发地址 %q 失败: %w", forwardAddr, err)
		}
		r.forward = fconn
	}

	r.wg.Add(1)
	go r.receiveLoop()

	return r, nil
}

// receiveLoop 接收循环：读取数据包、校验长度、解码入队
func (r *PoseReceiver) receiveLoop() {
	defer r.wg.Done()

	buf := make([]byte, readBufferSize)
	for {
		n, _, err := r.conn.ReadFromUDP(buf)
		if err != nil {
			select {
			case <-r.done:
				return
			default:
			}
			// 传输是尽力而为的，读失败只记录，不中断
			log.Printf("读取 UDP 数据失败: %v", err)
			continue
		}

		// 长度不符的帧静默丢弃，当前姿态不受影响
		pose, ok := protocol.Decode(buf[:n])
		if !ok {
			continue
		}

		if r.forward != nil {
			// 转发也是尽力而为，失败直接丢
			_, _ = r.forward.Write(buf[:n])
		}

		// 队列满时先丢最旧的一条，保证最新姿态总能入队
		select {
		case r.poseChan <- pose:
		default:
			select {
			case <-r.poseChan:
			default:
			}
			select {
			case r.poseChan <- pose:
			default:
			}
		}
	}
}

// Poll 非阻塞取出一条已解码姿态
// 返回 false 表示本帧没有更多数据，这是常态而不是错误
func (r *PoseReceiver) Poll() (core.Pose, bool) {
	select {
	case pose := <-r.poseChan:
		return pose, true
	default:
		return core.Pose{}, false
	}
}

// LocalAddr 实际监听的地址
func (r *PoseReceiver) LocalAddr() net.Addr {
	return r.conn.LocalAddr()
}

// Close 关闭接收器并等待后台循环退出
func (r *PoseReceiver) Close() {
	close(r.done)
	r.conn.Close()
	if r.forward != nil {
		r.forward.Close()
	}
	r.wg.Wait()
}
