package main

import (
	"context"
	"flag"
	"log"
	"math"
	"net"
	"os/signal"
	"syscall"
	"time"

	"headbox/pkg/core"
	"headbox/pkg/protocol"

	"golang.org/x/time/rate"
)

func main() {
	// 命令行参数
	addr := flag.String("addr", "127.0.0.1:4242", "目标地址")
	hz := flag.Int("hz", 60, "每秒发送的数据包数")
	amplitude := flag.Float64("amplitude", 20, "偏航/俯仰摆动幅度（度）")
	flag.Parse()

	udpAddr, err := net.ResolveUDPAddr("udp", *addr)
	if err != nil {
		log.Fatalf("解析目标地址失败: %v", err)
	}
	conn, err := net.DialUDP("udp", nil, udpAddr)
	if err != nil {
		log.Fatalf("连接目标地址失败: %v", err)
	}
	defer conn.Close()

	log.Println("========================================")
	log.Println("  HeadBox 姿态模拟器")
	log.Println("========================================")
	log.Printf("向 %s 发送模拟姿态（%d Hz，幅度 %.0f 度）", *addr, *hz, *amplitude)
	log.Println("按 Ctrl+C 停止")

	// 中断信号 → 结束发送循环
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	limiter := rate.NewLimiter(rate.Limit(*hz), 1)
	start := time.Now()

	for {
		if err := limiter.Wait(ctx); err != nil {
			log.Println("模拟器已停止")
			return
		}

		// 平滑变化的头部运动
		elapsed := time.Since(start).Seconds()
		pose := core.Pose{
			X:     30 * math.Sin(elapsed*0.4),
			Y:     20 * math.Cos(elapsed*0.3),
			Z:     0,
			Yaw:   *amplitude * math.Sin(elapsed*0.8),
			Pitch: *amplitude * math.Cos(elapsed*0.5),
			Roll:  10 * math.Sin(elapsed*0.6),
		}

		if _, err := conn.Write(protocol.Encode(pose)); err != nil {
			log.Printf("发送失败: %v", err)
		}
	}
}
