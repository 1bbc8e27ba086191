package core

import "image"

// safeRatio 受保护除法：分母为零时返回哨兵比例 0.5
// 粗略模式与角点插值模式统一使用，避免退化校准触发除零
func safeRatio(num, den float64) float64 {
	if den == 0 {
		return 0.5
	}
	return num / den
}

// MapGaze 把当前朝向映射为屏幕像素坐标
// 已有完整角点表时使用角点插值；否则退回 min/max 粗略映射
func (c *Calibration) MapGaze(yaw, pitch float64, width, height int) image.Point {
	if c.Calibrated() {
		return c.mapCorners(yaw, pitch, width, height)
	}
	return c.mapCoarse(yaw, pitch, width, height)
}

// mapCorners 角点插值模式
// 同侧两角取平均以抵抗单点抖动；结果不裁剪，越出屏幕的注视点保留原样便于诊断
func (c *Calibration) mapCorners(yaw, pitch float64, width, height int) image.Point {
	yawLeft := (c.table[CornerTopLeft].Yaw + c.table[CornerBottomLeft].Yaw) / 2
	yawRight := (c.table[CornerTopRight].Yaw + c.table[CornerBottomRight].Yaw) / 2
	pitchTop := (c.table[CornerTopLeft].Pitch + c.table[CornerTopRight].Pitch) / 2
	pitchBottom := (c.table[CornerBottomRight].Pitch + c.table[CornerBottomLeft].Pitch) / 2

	ratioX := safeRatio(yaw-yawLeft, yawRight-yawLeft)
	ratioY := safeRatio(pitch-pitchTop, pitchBottom-pitchTop)

	return image.Pt(int(ratioX*float64(width)), int(ratioY*float64(height)))
}

// mapCoarse 粗略模式：按标量范围归一化后逐轴裁剪到视口
func (c *Calibration) mapCoarse(yaw, pitch float64, width, height int) image.Point {
	normX := safeRatio(yaw-c.minYaw, c.maxYaw-c.minYaw)
	normY := safeRatio(pitch-c.minPitch, c.maxPitch-c.minPitch)

	x := clamp(int(normX*float64(width)), 0, width)
	y := clamp(int(normY*float64(height)), 0, height)
	return image.Pt(x, y)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
