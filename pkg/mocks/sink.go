package mocks

import (
	"image"

	"github.com/user/samplegen/pkg/ports"
)

// DebugSink is a mock implementation of ports.DebugSink.
type DebugSink struct {
	enabled bool

	// Recorded calls for verification
	StillNames   []string
	FrameIndexes []int
}

// NewDebugSink creates a mock sink with the given enabled state.
func NewDebugSink(enabled bool) *DebugSink {
	return &DebugSink{enabled: enabled}
}

func (m *DebugSink) Enabled() bool {
	return m.enabled
}

func (m *DebugSink) SaveStill(name string, img image.Image) error {
	m.StillNames = append(m.StillNames, name)
	return nil
}

func (m *DebugSink) SaveFrame(index int, img image.Image) error {
	m.FrameIndexes = append(m.FrameIndexes, index)
	return nil
}

var _ ports.DebugSink = (*DebugSink)(nil)
