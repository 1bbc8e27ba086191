package viewer

import (
	"fmt"
	"image/color"

	"headbox/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var hudFont = text.NewGoXFace(basicfont.Face7x13)

// 调色板
var (
	backgroundColor = color.RGBA{30, 30, 30, 255}
	wireframeColor  = color.RGBA{0, 255, 0, 255}
	gazeColor       = color.RGBA{255, 0, 0, 255}
	markerColor     = color.RGBA{255, 255, 0, 255}
	infoColor       = color.RGBA{255, 255, 255, 255}
)

const (
	gazeDotRadius = 15
	markerRadius  = 20
	markerInset   = 20
)

// drawText 在指定位置绘制一行文本
func drawText(screen *ebiten.Image, x, y int, msg string, clr color.Color) {
	options := &text.DrawOptions{}
	options.GeoM.Translate(float64(x), float64(y))
	options.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, msg, hudFont, options)
}

// drawCalibrationPrompt 绘制校准提示与当前角点的目标标记
func (g *Game) drawCalibrationPrompt(screen *ebiten.Image) {
	step := g.calib.Step()

	msg := fmt.Sprintf("LOOK AT %s and press SPACE", step)
	// basicfont 等宽 7 像素，据此粗略居中
	x := core.ScreenWidth/2 - len(msg)*7/2
	drawText(screen, x, core.ScreenHeight/2, msg, markerColor)

	mx, my := markerPosition(step)
	vector.DrawFilledCircle(screen, float32(mx), float32(my), markerRadius, markerColor, false)
}

// markerPosition 角点标记在屏幕上的位置，留 20 像素内边距
func markerPosition(step core.Corner) (int, int) {
	switch step {
	case core.CornerTopLeft:
		return markerInset, markerInset
	case core.CornerTopRight:
		return core.ScreenWidth - markerInset, markerInset
	case core.CornerBottomRight:
		return core.ScreenWidth - markerInset, core.ScreenHeight - markerInset
	case core.CornerBottomLeft:
		return markerInset, core.ScreenHeight - markerInset
	}
	return core.ScreenWidth / 2, core.ScreenHeight / 2
}

// drawInfoLine 左上角状态行
func (g *Game) drawInfoLine(screen *ebiten.Image) {
	info := fmt.Sprintf("Yaw: %.1f Pitch: %.1f | Press 'C' to Calibrate", g.pose.Yaw, g.pose.Pitch)
	drawText(screen, 10, 10, info, infoColor)
}
