package output

import (
	"fmt"
	"strings"
)

// ProgressBar renders a visual bar for current progress toward a target.
// Example: "███████░░░ 7/10"
func ProgressBar(current, target, width int) string {
	if width <= 0 {
		width = 20
	}
	if target <= 0 {
		target = 1
	}
	filled := current * width / target
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	style := StyleMuted
	if current >= target {
		style = StyleSuccess
	}

	return fmt.Sprintf("%s %s", style.Render(bar), StyleMuted.Render(fmt.Sprintf("%d/%d", current, target)))
}

// IndexBar renders a visual bar for a 0-100 index where lower is better.
// Example: "████████░░ 80/100"
func IndexBar(index float64, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := int((index / 100.0) * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	var style func(string) string
	switch {
	case index >= 70:
		style = func(s string) string { return StyleError.Render(s) }
	case index >= 40:
		style = func(s string) string { return StyleWarning.Render(s) }
	default:
		style = func(s string) string { return StyleSuccess.Render(s) }
	}

	return fmt.Sprintf("%s %s", style(bar), StyleMuted.Render(fmt.Sprintf("%.0f/100", index)))
}

// TrendArrowPercent returns a styled trend indicator for a percentage delta.
// Waiting less is better, so negative deltas render green.
func TrendArrowPercent(delta float64) string {
	if delta == 0 {
		return StyleMuted.Render("─")
	}

	var arrow string
	if delta > 0 {
		arrow = fmt.Sprintf("▲ +%.0f%%", delta)
	} else {
		arrow = fmt.Sprintf("▼ %.0f%%", delta)
	}

	if delta < 0 {
		return StyleSuccess.Render(arrow)
	}
	return StyleError.Render(arrow)
}

// Section prints a styled section header with a horizontal rule.
func Section(title string) string {
	header := StyleHeader.Render(title)
	rule := StyleMuted.Render(strings.Repeat("─", 66))
	return fmt.Sprintf("\n %s\n %s", header, rule)
}
