package ports

import (
	"image"
)

// VideoEncoder abstracts video encoding operations.
type VideoEncoder interface {
	// Begin initializes the encoder with the specified dimensions and frame rate.
	Begin(width, height int, fps float64, opts EncoderOptions) error

	// EncodeFrame encodes a single frame at the specified timestamp.
	// Frames must be submitted in increasing timestamp order.
	EncodeFrame(img image.Image, timestampMs int) error

	// End finalizes encoding and returns the container data.
	End() ([]byte, error)
}

// EncoderOptions configures video encoding parameters.
type EncoderOptions struct {
	Bitrate int // Target bitrate in kbps (0 = encoder default)
	Quality int // CRF value: 0-63 (lower is higher quality)
}

// EncoderAvailability is the result of probing for a usable video encoder.
// The probe runs once at startup; callers branch on Available instead of
// discovering a missing encoder mid-run.
type EncoderAvailability struct {
	Available bool
	Reason    string // human-readable reason when unavailable
}

// VideoInfo summarizes an encoded video container.
type VideoInfo struct {
	Codec      string
	Width      int
	Height     int
	FrameCount int
	DurationMs int
}

// VideoInspector reports summary information about encoded video data.
type VideoInspector interface {
	Inspect(data []byte) (VideoInfo, error)
}
