package core

// 窗口配置
const (
	ScreenWidth  = 1280
	ScreenHeight = 720
)

// 帧率
const FPS = 60

// BoxScale 3D 头部盒子的投影缩放
const BoxScale = 100

// DefaultUDPPort OpenTrack/SmoothTrack 标准端口
const DefaultUDPPort = 4242

// DefaultAngleRange 完成首次校准前的默认映射范围（度）
const DefaultAngleRange = 20.0
