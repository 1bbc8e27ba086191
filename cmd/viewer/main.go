package main

import (
	"flag"
	"log"

	"headbox/internal/telemetry"
	"headbox/internal/viewer"
	"headbox/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	// 命令行参数
	port := flag.Int("port", core.DefaultUDPPort, "UDP 监听端口（SmoothTrack/OpenTrack 默认 4242）")
	forward := flag.String("forward", "", "把收到的姿态数据包转发到该地址（如 127.0.0.1:4243）")
	debugAddr := flag.String("debug", "", "遥测服务监听地址（留空禁用，如 127.0.0.1:7070）")
	flag.Parse()

	// 绑定 UDP 端口，失败直接退出
	receiver, err := viewer.ListenPose(*port, *forward)
	if err != nil {
		log.Printf("启动失败: %v", err)
		log.Fatalf("请确认没有其他软件（例如 OpenTrack）占用端口 %d", *port)
	}
	defer receiver.Close()

	var tel *telemetry.Server
	if *debugAddr != "" {
		tel = telemetry.Start(*debugAddr)
	}

	log.Println("========================================")
	log.Println("  HeadBox 姿态查看器 & 注视点跟踪")
	log.Println("========================================")
	log.Printf("UDP 监听端口: %d", *port)
	if *forward != "" {
		log.Printf("数据包转发到: %s", *forward)
	}
	log.Println("请确认 SmoothTrack 正在向本机 IP 发送数据")
	log.Println("C 开始校准 / 空格采集角点 / Esc 退出")
	log.Println("========================================")

	game := viewer.NewGame(receiver, tel)

	ebiten.SetWindowSize(core.ScreenWidth, core.ScreenHeight)
	ebiten.SetWindowTitle("HeadBox - SmoothTrack Viewer & Gaze Tracker")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetTPS(core.FPS)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
