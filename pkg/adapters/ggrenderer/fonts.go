package ggrenderer

import (
	"os"
)

// fontSearchPaths lists well-known TrueType font locations, probed in order.
// Linux first, then macOS, then Windows.
var fontSearchPaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/System/Library/Fonts/Helvetica.ttc",
	"/Library/Fonts/Arial.ttf",
	`C:\Windows\Fonts\arial.ttf`,
}

// FindDefaultFont looks for a usable font file in well-known system
// locations. It returns false when none is available; callers then rely
// on the built-in bitmap face for label rendering.
func FindDefaultFont() (string, bool) {
	for _, p := range fontSearchPaths {
		if _, err := os.Stat(p); err == nil {
			return p, true
		}
	}
	return "", false
}
