package shared

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
)

// ComputeLeftPanelWidth returns a stable left column width based on the
// terminal width with sensible clamping and ensuring room for the right side.
//
// Rules:
// - Target ~45% of terminal width
// - Clamp to [minLeft, maxLeft]
// - Reserve a single-space gap and at least rightMin for the right panel
func ComputeLeftPanelWidth(termWidth int) int {
	const (
		defaultLeft = 56
		minLeft     = 36
		maxLeft     = 72
		gap         = 1
		rightMin    = 32
	)
	if termWidth <= 0 {
		return defaultLeft
	}
	left := (termWidth * 9) / 20 // ~45%
	left = max(minLeft, min(left, maxLeft))
	if left+gap+rightMin > termWidth {
		left = termWidth - gap - rightMin
	}
	if left < 20 { // last-ditch lower bound for very small terminals
		left = 20
	}
	return left
}

// ComputeRightPanelWidth returns the remaining width after the left panel and a gap.
func ComputeRightPanelWidth(termWidth, left, gap int) int {
	return max(termWidth-left-gap, 0)
}

// FolderHeader renders a gray header naming a folder.
func FolderHeader(path string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("#888")).Render(fmt.Sprintf("📂 %s", filepath.Base(path)))
}
