package drawer

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// The composer is a pure derivation over the openness value: it never
// mutates drawer state and never inspects surface content beyond
// slicing rendered cells.

// SlideOffset returns how many columns of the menu are revealed at the
// given openness value on a screen of the given width.
func (c Config) SlideOffset(value float64, screenWidth int) int {
	return int(math.Round(clamp01(value) * float64(c.slideWidth(screenWidth))))
}

// OverlayOpacity returns the scrim strength for the given openness.
// Zero means the scrim does not exist at all.
func (c Config) OverlayOpacity(value float64) float64 {
	return clamp01(value) * c.ShadowMaxOpacity
}

// OverlayHit reports whether a press at screen column x lands on the
// scrim covering the body. At openness 0 there is no scrim, so a fully
// closed drawer never intercepts taps meant for the body surface.
func (c Config) OverlayHit(value float64, x, screenWidth int) bool {
	offset := c.SlideOffset(value, screenWidth)
	if offset == 0 {
		return false
	}
	if c.Direction == RightToLeft {
		return x < screenWidth-offset
	}
	return x >= offset
}

// scrimForeground blends the body text color toward the shadow color
// by the overlay opacity. Falls back to the shadow color when either
// hex string fails to parse.
func scrimForeground(bodyFg, shadow string, opacity float64) string {
	b, errB := colorful.Hex(bodyFg)
	s, errS := colorful.Hex(shadow)
	if errB != nil || errS != nil {
		return shadow
	}
	return b.BlendRgb(s, clamp01(opacity)).Hex()
}

// scrimBodyFg is the reference body foreground the scrim blend starts
// from. Terminals have no real alpha channel, so the scrim restyles
// text instead of layering.
const scrimBodyFg = "#c0c0c0"

// scrimLine strips the body line's own styling and re-renders it in
// the blended scrim color. Stripping first matters: a strong inner
// foreground would otherwise override the scrim.
func scrimLine(line string, style lipgloss.Style) string {
	return style.Render(xansi.Strip(line))
}

// normalizePane forces s to exactly width columns and height lines,
// ANSI-aware, so slicing and joining stay stable.
func normalizePane(s string, width, height int) string {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i, ln := range lines {
		w := xansi.StringWidth(ln)
		if w > width {
			ln = xansi.Cut(ln, 0, width)
			w = width
		}
		if w < width {
			ln += strings.Repeat(" ", width-w)
		}
		lines[i] = ln
	}
	return strings.Join(lines, "\n")
}

// Compose builds the slid frame: the menu fixed on its edge, the body
// shifted by the slide offset, and the scrim over whatever body region
// remains visible. menu and body are pre-rendered frames; Compose
// positions and sizes them without inspecting their contents.
func Compose(menu, body string, value float64, width, height int, cfg Config) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	offset := cfg.SlideOffset(value, width)
	body = normalizePane(body, width, height)
	if offset == 0 {
		// Fully closed: the body alone, untouched. No scrim element
		// exists in the output at all.
		return body
	}

	slideW := cfg.slideWidth(width)
	menu = normalizePane(menu, slideW, height)
	scrim := lipgloss.NewStyle().
		Foreground(lipgloss.Color(scrimForeground(scrimBodyFg, cfg.ShadowColor, cfg.OverlayOpacity(value))))

	menuLines := strings.Split(menu, "\n")
	bodyLines := strings.Split(body, "\n")
	out := make([]string, height)
	for i := 0; i < height; i++ {
		if cfg.Direction == RightToLeft {
			// Body slides left; the menu is revealed along the right
			// edge, innermost columns first.
			b := scrimLine(xansi.Cut(bodyLines[i], offset, width), scrim)
			m := xansi.Cut(menuLines[i], slideW-offset, slideW)
			out[i] = b + m
		} else {
			m := xansi.Cut(menuLines[i], 0, offset)
			b := scrimLine(xansi.Cut(bodyLines[i], 0, width-offset), scrim)
			out[i] = m + b
		}
	}
	return strings.Join(out, "\n")
}
