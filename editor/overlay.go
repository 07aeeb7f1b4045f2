package editor

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// overlayCenter splices top over the center of base, preserving the escape
// sequences of the surrounding base cells.
func overlayCenter(base, top string) string {
	baseLines := strings.Split(base, "\n")
	topLines := strings.Split(top, "\n")
	if len(topLines) > len(baseLines) {
		return base
	}

	baseW := 0
	for _, l := range baseLines {
		baseW = max(baseW, ansi.StringWidth(l))
	}
	topW := 0
	for _, l := range topLines {
		topW = max(topW, ansi.StringWidth(l))
	}
	if topW > baseW {
		return base
	}

	x := (baseW - topW) / 2
	y := (len(baseLines) - len(topLines)) / 2
	for i, tl := range topLines {
		bl := baseLines[y+i]
		left := ansi.Truncate(bl, x, "")
		if pad := x - ansi.StringWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		right := ansi.TruncateLeft(bl, x+topW, "")
		if pad := topW - ansi.StringWidth(tl); pad > 0 {
			tl += strings.Repeat(" ", pad)
		}
		baseLines[y+i] = left + tl + right
	}
	return strings.Join(baseLines, "\n")
}
