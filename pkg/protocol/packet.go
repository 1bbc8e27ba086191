// Package protocol 实现 OpenTrack/SmoothTrack UDP 数据包的编解码
package protocol

import (
	"encoding/binary"
	"math"

	"headbox/pkg/core"
)

// PacketSize 数据包固定长度：6 个连续的 float64
const PacketSize = 48

// Decode 把一个 UDP 负载解码为姿态，字段顺序固定为 x, y, z, yaw, pitch, roll
// 只接受恰好 48 字节的负载，其余长度一律返回 false，由调用方静默丢弃
// （格式的前向兼容策略：形状未知的帧直接丢掉）
// 字节序为小端，即 OpenTrack 在 x86 上的本机序
func Decode(data []byte) (core.Pose, bool) {
	if len(data) != PacketSize {
		return core.Pose{}, false
	}

	var fields [6]float64
	for i := range fields {
		fields[i] = math.Float64frombits(binary.LittleEndian.Uint64(data[i*8:]))
	}

	return core.Pose{
		X:     fields[0],
		Y:     fields[1],
		Z:     fields[2],
		Yaw:   fields[3],
		Pitch: fields[4],
		Roll:  fields[5],
	}, true
}

// Encode 把姿态编码为 48 字节数据包（模拟器与测试使用）
func Encode(p core.Pose) []byte {
	fields := [6]float64{p.X, p.Y, p.Z, p.Yaw, p.Pitch, p.Roll}
	buf := make([]byte, PacketSize)
	for i, f := range fields {
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(f))
	}
	return buf
}
