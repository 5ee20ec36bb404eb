package mocks

import (
	"image"

	"github.com/user/samplegen/pkg/ports"
)

// VideoEncoder is a mock implementation of ports.VideoEncoder.
type VideoEncoder struct {
	BeginFunc       func(width, height int, fps float64, opts ports.EncoderOptions) error
	EncodeFrameFunc func(img image.Image, timestampMs int) error
	EndFunc         func() ([]byte, error)

	// Recorded calls for verification
	BeginCalled      bool
	BeginWidth       int
	BeginHeight      int
	BeginFPS         float64
	EncodeFrameCalls []EncodeFrameCall
	EndCalled        bool
}

// EncodeFrameCall records a call to EncodeFrame.
type EncodeFrameCall struct {
	TimestampMs int
}

func (m *VideoEncoder) Begin(width, height int, fps float64, opts ports.EncoderOptions) error {
	m.BeginCalled = true
	m.BeginWidth = width
	m.BeginHeight = height
	m.BeginFPS = fps
	if m.BeginFunc != nil {
		return m.BeginFunc(width, height, fps, opts)
	}
	return nil
}

func (m *VideoEncoder) EncodeFrame(img image.Image, timestampMs int) error {
	m.EncodeFrameCalls = append(m.EncodeFrameCalls, EncodeFrameCall{TimestampMs: timestampMs})
	if m.EncodeFrameFunc != nil {
		return m.EncodeFrameFunc(img, timestampMs)
	}
	return nil
}

func (m *VideoEncoder) End() ([]byte, error) {
	m.EndCalled = true
	if m.EndFunc != nil {
		return m.EndFunc()
	}
	// Minimal MP4 ftyp header
	return []byte{0x00, 0x00, 0x00, 0x18, 0x66, 0x74, 0x79, 0x70}, nil
}

var _ ports.VideoEncoder = (*VideoEncoder)(nil)

// VideoInspector is a mock implementation of ports.VideoInspector.
type VideoInspector struct {
	InspectFunc func(data []byte) (ports.VideoInfo, error)
}

func (m *VideoInspector) Inspect(data []byte) (ports.VideoInfo, error) {
	if m.InspectFunc != nil {
		return m.InspectFunc(data)
	}
	return ports.VideoInfo{Codec: "h264"}, nil
}

var _ ports.VideoInspector = (*VideoInspector)(nil)
