package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a bar like [████░░░░]  45%. The bar is green from
// 70%, yellow from 40% and red below, matching the plan risk bands.
func RenderProgress(pct float64, width int) string {
	return fmt.Sprintf("[%s] %3.0f%%", RenderCompactBar(pct, width, false), clampPct(pct)*100)
}

// RenderCompactBar renders only the blocks, without brackets or a label.
func RenderCompactBar(pct float64, width int, dim bool) string {
	pct = clampPct(pct)
	if width < 2 {
		width = 2
	}

	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	if dim {
		return StyleDim.Render(bar)
	}
	style := StyleGreen
	switch {
	case pct < 0.4:
		style = StyleRed
	case pct < 0.7:
		style = StyleYellow
	}
	return style.Render(bar)
}

func clampPct(pct float64) float64 {
	if pct < 0 {
		return 0
	}
	if pct > 1 {
		return 1
	}
	return pct
}
