// Package mp4probe inspects MP4 data produced by the video encoder.
// It reports the codec, track dimensions, frame count and duration, and
// is used to confirm a written video artifact looks like a valid MP4.
package mp4probe

import (
	"bytes"
	"fmt"

	"github.com/Eyevinn/mp4ff/mp4"

	"github.com/user/samplegen/pkg/ports"
)

// Prober implements ports.VideoInspector for MP4 containers.
type Prober struct{}

// New creates a new Prober.
func New() *Prober {
	return &Prober{}
}

// Inspect parses the MP4 data and summarizes its first video track.
func (p *Prober) Inspect(data []byte) (ports.VideoInfo, error) {
	if len(data) == 0 {
		return ports.VideoInfo{}, fmt.Errorf("mp4probe: empty data")
	}

	mp4File, err := mp4.DecodeFile(bytes.NewReader(data))
	if err != nil {
		return ports.VideoInfo{}, fmt.Errorf("mp4probe: decode mp4: %w", err)
	}

	moov := mp4File.Moov
	if moov == nil && mp4File.Init != nil {
		moov = mp4File.Init.Moov
	}
	if moov == nil {
		return ports.VideoInfo{}, fmt.Errorf("mp4probe: no moov box")
	}

	for _, trak := range moov.Traks {
		info, ok := videoTrackInfo(trak)
		if !ok {
			continue
		}
		if moov.Mvhd != nil && moov.Mvhd.Timescale > 0 {
			info.DurationMs = int(moov.Mvhd.Duration * 1000 / uint64(moov.Mvhd.Timescale))
		}
		return info, nil
	}

	return ports.VideoInfo{}, fmt.Errorf("mp4probe: no video track found")
}

// videoTrackInfo extracts codec, dimensions and sample count from a track.
func videoTrackInfo(trak *mp4.TrakBox) (ports.VideoInfo, bool) {
	if trak.Mdia == nil || trak.Mdia.Hdlr == nil || trak.Mdia.Hdlr.HandlerType != "vide" {
		return ports.VideoInfo{}, false
	}
	if trak.Mdia.Minf == nil || trak.Mdia.Minf.Stbl == nil || trak.Mdia.Minf.Stbl.Stsd == nil {
		return ports.VideoInfo{}, false
	}

	info := ports.VideoInfo{Codec: "unknown"}
	for _, child := range trak.Mdia.Minf.Stbl.Stsd.Children {
		switch child.Type() {
		case "avc1", "avc3":
			info.Codec = "h264"
		case "av01":
			info.Codec = "av1"
		case "hvc1", "hev1":
			info.Codec = "hevc"
		}
	}

	if trak.Tkhd != nil {
		// Tkhd stores dimensions as 16.16 fixed point.
		info.Width = int(trak.Tkhd.Width >> 16)
		info.Height = int(trak.Tkhd.Height >> 16)
	}
	if stsz := trak.Mdia.Minf.Stbl.Stsz; stsz != nil {
		info.FrameCount = int(stsz.SampleNumber)
	}

	return info, true
}

// Ensure Prober implements ports.VideoInspector
var _ ports.VideoInspector = (*Prober)(nil)
