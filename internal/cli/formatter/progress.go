package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a progress bar like [████░░░░] 45% from a
// 0..100 percentage. The bar is colored green above 66, yellow from 33
// to 66, red below 33.
func RenderProgress(pct int, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	if width < 2 {
		width = 2
	}

	filled := pct * width / 100
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	if pct < 33 {
		style = StyleRed
	} else if pct < 66 {
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %3d%%", style.Render(bar), pct)
}
