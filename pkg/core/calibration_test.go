package core

import "testing"

func TestCornerLabels(t *testing.T) {
	want := []string{"Top-Left", "Top-Right", "Bottom-Right", "Bottom-Left"}
	for i, label := range want {
		if got := Corner(i).String(); got != label {
			t.Errorf("Corner(%d).String() = %q, want %q", i, got, label)
		}
	}
}

func TestCalibrationCycle(t *testing.T) {
	c := NewCalibration()

	if c.Calibrating() || c.Calibrated() {
		t.Fatal("初始状态应为空闲且未校准")
	}

	c.Start()
	if !c.Calibrating() {
		t.Fatal("Start 后应处于校准中")
	}

	samples := []CornerSample{
		{Yaw: -20, Pitch: -18},
		{Yaw: 22, Pitch: -16},
		{Yaw: 18, Pitch: 20},
		{Yaw: -24, Pitch: 16},
	}

	for i, s := range samples {
		if got := c.Step(); got != Corner(i) {
			t.Fatalf("第 %d 步的角点 = %v, want %v", i, got, Corner(i))
		}
		done := c.Capture(s.Yaw, s.Pitch)
		if wantDone := i == len(samples)-1; done != wantDone {
			t.Fatalf("第 %d 次采集的返回值 = %v, want %v", i, done, wantDone)
		}
	}

	if c.Calibrating() {
		t.Error("采满 4 个样本后应回到空闲")
	}
	if !c.Calibrated() {
		t.Error("采满 4 个样本后应视为已校准")
	}

	minYaw, maxYaw, minPitch, maxPitch := c.Bounds()
	if minYaw != -24 || maxYaw != 22 || minPitch != -18 || maxPitch != 20 {
		t.Errorf("Bounds() = %v %v %v %v, want -24 22 -18 20", minYaw, maxYaw, minPitch, maxPitch)
	}
}

// 空闲状态下的采集是空操作（完成校准后的第 5 次采集也一样）
func TestCaptureWhileIdleIsNoOp(t *testing.T) {
	c := NewCalibration()
	if c.Capture(1, 2) {
		t.Error("未开始校准时采集不应生效")
	}
	if c.Calibrated() {
		t.Error("空操作不应产生角点表")
	}

	c.Start()
	for i := 0; i < 4; i++ {
		c.Capture(float64(i), float64(-i))
	}

	before := c.MapGaze(3, 3, ScreenWidth, ScreenHeight)
	if c.Capture(99, 99) {
		t.Error("完整周期之后的额外采集应是空操作")
	}
	if after := c.MapGaze(3, 3, ScreenWidth, ScreenHeight); after != before {
		t.Errorf("空操作不应改变映射结果: %v → %v", before, after)
	}
}

// 校准中重新开始会丢弃已采集的样本
func TestRestartDiscardsPartialSamples(t *testing.T) {
	c := NewCalibration()

	c.Start()
	c.Capture(100, 100)
	c.Capture(200, 200)

	c.Start()
	if got := c.Step(); got != CornerTopLeft {
		t.Fatalf("重新开始后应回到第一个角点, got %v", got)
	}

	fresh := []CornerSample{
		{Yaw: -10, Pitch: -10},
		{Yaw: 10, Pitch: -10},
		{Yaw: 10, Pitch: 10},
		{Yaw: -10, Pitch: 10},
	}
	for _, s := range fresh {
		c.Capture(s.Yaw, s.Pitch)
	}

	if !c.Calibrated() {
		t.Fatal("新一轮周期应正常完成")
	}

	// 范围只能来自新样本；若旧样本残留，maxYaw 会是 200
	minYaw, maxYaw, _, _ := c.Bounds()
	if minYaw != -10 || maxYaw != 10 {
		t.Errorf("范围应只由新样本决定: %v ~ %v", minYaw, maxYaw)
	}
}
