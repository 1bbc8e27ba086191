package viewer

import (
	"log"

	"headbox/internal/telemetry"
	"headbox/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Game 查看器主结构（Ebiten 游戏循环）
// 当前姿态与校准状态只在 Update/Draw 所在的 tick 线程上读写
type Game struct {
	receiver  *PoseReceiver
	telemetry *telemetry.Server // 可为 nil

	pose  core.Pose
	calib *core.Calibration
	input keyTracker
}

// NewGame 创建查看器
func NewGame(receiver *PoseReceiver, tel *telemetry.Server) *Game {
	return &Game{
		receiver:  receiver,
		telemetry: tel,
		calib:     core.NewCalibration(),
	}
}

// Update 每帧逻辑：排空网络队列 → 处理按键 → 发布遥测
func (g *Game) Update() error {
	// 1. 排空接收队列，同一帧内只保留最新姿态
	for {
		pose, ok := g.receiver.Poll()
		if !ok {
			break
		}
		g.pose = pose
	}

	// 2. 处理按键
	if g.input.JustPressed(ebiten.KeyC) {
		g.calib.Start()
		log.Println("开始校准...")
	}
	if g.input.JustPressed(ebiten.KeySpace) {
		if g.calib.Capture(g.pose.Yaw, g.pose.Pitch) {
			minYaw, maxYaw, _, _ := g.calib.Bounds()
			log.Printf("校准完成！偏航范围: %.2f ~ %.2f", minYaw, maxYaw)
		}
	}
	if g.input.JustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	// 3. 发布遥测快照
	if g.telemetry != nil {
		gaze := g.calib.MapGaze(g.pose.Yaw, g.pose.Pitch, core.ScreenWidth, core.ScreenHeight)
		g.telemetry.Publish(telemetry.Frame{
			Pose:        g.pose,
			Calibrating: g.calib.Calibrating(),
			Calibrated:  g.calib.Calibrated(),
			GazeX:       gaze.X,
			GazeY:       gaze.Y,
		})
	}

	return nil
}

// Draw 绘制头部线框、注视点与 HUD
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	// 头部线框：12 条棱
	points := core.ProjectHead(g.pose, core.ScreenWidth, core.ScreenHeight, core.BoxScale)
	for _, e := range core.CubeEdges {
		a, b := points[e[0]], points[e[1]]
		vector.StrokeLine(screen,
			float32(a.X), float32(a.Y),
			float32(b.X), float32(b.Y),
			2, wireframeColor, false)
	}

	if g.calib.Calibrating() {
		g.drawCalibrationPrompt(screen)
		return
	}

	// 注视点只在完成过校准后显示
	if g.calib.Calibrated() {
		gaze := g.calib.MapGaze(g.pose.Yaw, g.pose.Pitch, core.ScreenWidth, core.ScreenHeight)
		vector.DrawFilledCircle(screen,
			float32(gaze.X), float32(gaze.Y),
			gazeDotRadius, gazeColor, false)
	}

	g.drawInfoLine(screen)
}

// Layout 设置屏幕布局
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return core.ScreenWidth, core.ScreenHeight
}
