package drawer

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
)

func setTrueColor(t *testing.T) {
	t.Helper()
	old := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.TrueColor)
	t.Cleanup(func() { lipgloss.SetColorProfile(old) })
}

func TestSlideOffset(t *testing.T) {
	cfg := DefaultConfig() // fraction 0.75

	require.Equal(t, 0, cfg.SlideOffset(0, 200))
	require.Equal(t, 75, cfg.SlideOffset(0.5, 200))
	require.Equal(t, 150, cfg.SlideOffset(1, 200))
	require.Equal(t, 150, cfg.SlideOffset(2, 200), "value clamps before scaling")
	require.Equal(t, 0, cfg.SlideOffset(0.5, 0), "degenerate screen")
}

func TestOverlayOpacity(t *testing.T) {
	cfg := DefaultConfig() // max opacity 0.3

	require.Equal(t, 0.0, cfg.OverlayOpacity(0))
	require.InDelta(t, 0.15, cfg.OverlayOpacity(0.5), 1e-9)
	require.InDelta(t, 0.3, cfg.OverlayOpacity(1), 1e-9)
}

func TestOverlayHit_AbsentWhenClosed(t *testing.T) {
	cfg := DefaultConfig()

	// Fully closed: nothing intercepts, anywhere.
	for _, x := range []int{0, 50, 199} {
		require.False(t, cfg.OverlayHit(0, x, 200))
	}
}

func TestOverlayHit_CoversBodyRegion(t *testing.T) {
	cfg := DefaultConfig()

	// Fully open LTR: menu occupies [0,150), body remainder [150,200).
	require.False(t, cfg.OverlayHit(1, 149, 200))
	require.True(t, cfg.OverlayHit(1, 150, 200))
	require.True(t, cfg.OverlayHit(1, 199, 200))

	cfg.Direction = RightToLeft
	// Fully open RTL: body remainder [0,50), menu [50,200).
	require.True(t, cfg.OverlayHit(1, 0, 200))
	require.True(t, cfg.OverlayHit(1, 49, 200))
	require.False(t, cfg.OverlayHit(1, 50, 200))
}

func TestScrimForeground_Blend(t *testing.T) {
	require.Equal(t, "#c0c0c0", scrimForeground("#c0c0c0", "#000000", 0))
	require.Equal(t, "#000000", scrimForeground("#c0c0c0", "#000000", 1))
	mid := scrimForeground("#c0c0c0", "#000000", 0.5)
	require.NotEqual(t, "#c0c0c0", mid)
	require.NotEqual(t, "#000000", mid)
	require.Equal(t, "#102030", scrimForeground("not-a-color", "#102030", 0.5),
		"unparsable base falls back to the shadow color")
}

func TestCompose_ClosedIsBodyAlone(t *testing.T) {
	setTrueColor(t)
	cfg := DefaultConfig()

	out := Compose("MENU", "BODY", 0, 20, 2, cfg)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "BODY"+strings.Repeat(" ", 16), lines[0])
	require.NotContains(t, out, "\x1b[", "no scrim element exists at all when closed")
	require.NotContains(t, out, "MENU")
}

func TestCompose_OpenRevealsMenu(t *testing.T) {
	setTrueColor(t)
	cfg := DefaultConfig()
	cfg.SlideWidthFraction = 0.5 // slide width 10 on a 20-column screen

	out := Compose("MENU", "BODY", 1, 20, 1, cfg)
	require.True(t, strings.HasPrefix(out, "MENU"), "menu visible on the left edge")
	require.Contains(t, out, "BODY", "body remainder still visible")
	require.Contains(t, out, "\x1b[", "scrim styling present while open")
	require.Equal(t, 20, xansi.StringWidth(out), "composed line is exactly screen width")
}

func TestCompose_LineWidthsStable(t *testing.T) {
	setTrueColor(t)
	cfg := DefaultConfig()

	for _, v := range []float64{0, 0.1, 0.33, 0.5, 0.77, 1} {
		out := Compose("menu\nwith\nrows", "body content\nhere", v, 40, 4, cfg)
		for i, ln := range strings.Split(out, "\n") {
			require.Equal(t, 40, xansi.StringWidth(ln), "value %v line %d", v, i)
		}
	}
}

func TestCompose_RightToLeftMirrors(t *testing.T) {
	setTrueColor(t)
	cfg := DefaultConfig()
	cfg.SlideWidthFraction = 0.5
	cfg.Direction = RightToLeft

	out := Compose("MENU______", "BODY", 1, 20, 1, cfg)
	require.True(t, strings.HasSuffix(xansi.Strip(out), "MENU______"),
		"menu revealed along the right edge")
}

func TestCompose_ScrimStripsBodyStyling(t *testing.T) {
	setTrueColor(t)
	cfg := DefaultConfig()

	loud := lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0000")).Render("BODY")
	out := Compose("MENU", loud, 0.5, 20, 1, cfg)
	require.NotContains(t, out, "255;0;0", "inner foreground cannot override the scrim")
}

func TestNormalizePane(t *testing.T) {
	out := normalizePane("ab\ncdefgh", 4, 3)
	require.Equal(t, "ab  \ncdef\n    ", out)

	out = normalizePane("one\ntwo\nthree\nfour", 3, 2)
	require.Equal(t, "one\ntwo", out)
}
