package core

// Corner 校准角点，值即采集顺序
type Corner int

const (
	CornerTopLeft Corner = iota
	CornerTopRight
	CornerBottomRight
	CornerBottomLeft

	cornerCount
)

func (c Corner) String() string {
	switch c {
	case CornerTopLeft:
		return "Top-Left"
	case CornerTopRight:
		return "Top-Right"
	case CornerBottomRight:
		return "Bottom-Right"
	case CornerBottomLeft:
		return "Bottom-Left"
	}
	return "Unknown"
}

// CornerSample 校准时在某个角点记录的一次朝向读数
type CornerSample struct {
	Yaw   float64
	Pitch float64
}

// Calibration 四角校准状态机与最近一次完成的角点表
// 空闲时 table 为上一轮完整样本（从未校准则为空）；
// 校准中 pending 的长度始终等于当前步数
type Calibration struct {
	calibrating bool
	step        Corner
	pending     []CornerSample

	// 最近一次完整校准：角点表与标量范围
	table              []CornerSample
	minYaw, maxYaw     float64
	minPitch, maxPitch float64
}

// NewCalibration 创建校准状态机，映射范围取默认值
func NewCalibration() *Calibration {
	return &Calibration{
		minYaw:   -DefaultAngleRange,
		maxYaw:   DefaultAngleRange,
		minPitch: -DefaultAngleRange,
		maxPitch: DefaultAngleRange,
	}
}

// Start 进入校准流程
// 校准中再次触发则丢弃已有进度，从第一个角点重新开始
func (c *Calibration) Start() {
	c.calibrating = true
	c.step = CornerTopLeft
	c.pending = c.pending[:0]
}

// Capture 把当前朝向记录为本步的角点样本，空闲状态下为空操作
// 采满 4 个样本时整体替换角点表并回到空闲，此时返回 true
func (c *Calibration) Capture(yaw, pitch float64) bool {
	if !c.calibrating {
		return false
	}

	c.pending = append(c.pending, CornerSample{Yaw: yaw, Pitch: pitch})
	c.step++
	if c.step < cornerCount {
		return false
	}

	c.finish()
	return true
}

// finish 用采满的样本集替换角点表，并重新计算标量范围
func (c *Calibration) finish() {
	c.table = append(c.table[:0:0], c.pending...)
	c.pending = nil
	c.calibrating = false

	c.minYaw, c.maxYaw = c.table[0].Yaw, c.table[0].Yaw
	c.minPitch, c.maxPitch = c.table[0].Pitch, c.table[0].Pitch
	for _, s := range c.table[1:] {
		if s.Yaw < c.minYaw {
			c.minYaw = s.Yaw
		}
		if s.Yaw > c.maxYaw {
			c.maxYaw = s.Yaw
		}
		if s.Pitch < c.minPitch {
			c.minPitch = s.Pitch
		}
		if s.Pitch > c.maxPitch {
			c.maxPitch = s.Pitch
		}
	}
}

// Calibrating 是否正处于校准流程中
func (c *Calibration) Calibrating() bool {
	return c.calibrating
}

// Step 当前等待采集的角点（仅校准中有意义）
func (c *Calibration) Step() Corner {
	return c.step
}

// Calibrated 是否已完成过至少一轮完整校准
func (c *Calibration) Calibrated() bool {
	return len(c.table) == int(cornerCount)
}

// Bounds 返回当前的标量映射范围（minYaw, maxYaw, minPitch, maxPitch）
func (c *Calibration) Bounds() (float64, float64, float64, float64) {
	return c.minYaw, c.maxYaw, c.minPitch, c.maxPitch
}
