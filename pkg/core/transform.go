package core

import (
	"image"
	"math"
)

// Vec3 模型空间中的一个三维点
type Vec3 struct {
	X, Y, Z float64
}

// CubeVertices 单位立方体的 8 个顶点（头部模型）
var CubeVertices = [8]Vec3{
	{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
	{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
}

// CubeEdges 立方体的 12 条棱（顶点索引对），固定拓扑
var CubeEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// 透视投影参数
const (
	perspectiveFOV   = 300
	perspectiveDepth = 400
)

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Rotate 对点依次施加三次平面旋转：偏航（绕 Y 轴）→ 俯仰（绕 X 轴）→ 翻滚（绕 Z 轴）
// 角度为度。旋转不可交换，顺序不能改动
func Rotate(p Vec3, pitch, yaw, roll float64) Vec3 {
	// 偏航
	sin, cos := math.Sincos(radians(yaw))
	p.X, p.Z = p.X*cos-p.Z*sin, p.X*sin+p.Z*cos

	// 俯仰
	sin, cos = math.Sincos(radians(pitch))
	p.Y, p.Z = p.Y*cos-p.Z*sin, p.Y*sin+p.Z*cos

	// 翻滚
	sin, cos = math.Sincos(radians(roll))
	p.X, p.Y = p.X*cos-p.Y*sin, p.X*sin+p.Y*cos

	return p
}

// Project 把三维点透视投影到屏幕坐标，截断为整数像素
// 屏幕 Y 轴向下，模型 Y 轴向上，因此 Y 取反
func Project(p Vec3, width, height int, scale float64) image.Point {
	factor := perspectiveFOV / (p.Z + perspectiveDepth)
	sx := p.X*factor*scale + float64(width)/2
	sy := -p.Y*factor*scale + float64(height)/2
	return image.Pt(int(sx), int(sy))
}

// ProjectHead 按当前姿态旋转、平移并投影头部模型的全部顶点
// 平移只使用 X/Y 位置（缩小 10 倍）；Z 轴固定后移 5 个单位保证模型可见
func ProjectHead(pose Pose, width, height int, scale float64) [8]image.Point {
	var points [8]image.Point
	for i, v := range CubeVertices {
		r := Rotate(v, pose.Pitch, pose.Yaw, pose.Roll)
		r.X += pose.X / 10
		r.Y += pose.Y / 10
		r.Z -= 5
		points[i] = Project(r, width, height, scale)
	}
	return points
}
