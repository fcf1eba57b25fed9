package drawer

import (
	"fmt"
	"math"
	"time"
)

// Direction controls which edge of the screen the menu lives on.
type Direction int

const (
	LeftToRight Direction = iota
	RightToLeft
)

func (d Direction) String() string {
	switch d {
	case LeftToRight:
		return "LeftToRight"
	case RightToLeft:
		return "RightToLeft"
	default:
		return "Unknown"
	}
}

// Defaults applied by DefaultConfig.
const (
	DefaultSlideWidthFraction = 0.75
	DefaultDragStartEdge      = 60.0
	DefaultAnimationDuration  = 250 * time.Millisecond
	DefaultShadowColor        = "#000000"
	DefaultShadowMaxOpacity   = 0.3
)

// Config is the immutable drawer configuration, supplied at construction.
type Config struct {
	// SlideWidthFraction is the menu width as a fraction of the screen
	// width. Must be in (0, 1].
	SlideWidthFraction float64

	// DragStartEdge is the width, in columns, of the zone an opening
	// drag may start from. Closing drags are accepted from anywhere.
	DragStartEdge float64

	// AnimationDuration is how long a full open or close slide takes.
	// Zero completes on the first frame.
	AnimationDuration time.Duration

	// ShadowColor is the scrim color as a hex string (e.g. "#000000").
	ShadowColor string

	// ShadowMaxOpacity is the scrim strength at a fully open drawer.
	// Must be in [0, 1].
	ShadowMaxOpacity float64

	// Direction selects which edge the menu slides out from.
	Direction Direction
}

// DefaultConfig returns the stock configuration: a menu covering 3/4 of
// the screen, opened from a 60-column edge zone over 250ms.
func DefaultConfig() Config {
	return Config{
		SlideWidthFraction: DefaultSlideWidthFraction,
		DragStartEdge:      DefaultDragStartEdge,
		AnimationDuration:  DefaultAnimationDuration,
		ShadowColor:        DefaultShadowColor,
		ShadowMaxOpacity:   DefaultShadowMaxOpacity,
		Direction:          LeftToRight,
	}
}

// Validate rejects malformed configuration. A non-positive slide width
// fraction would turn drag updates into a division by zero, so it is
// caught here rather than mid-gesture.
func (c Config) Validate() error {
	if c.SlideWidthFraction <= 0 || c.SlideWidthFraction > 1 {
		return fmt.Errorf("slide width fraction %v outside (0, 1]", c.SlideWidthFraction)
	}
	if c.DragStartEdge < 0 {
		return fmt.Errorf("drag start edge %v is negative", c.DragStartEdge)
	}
	if c.AnimationDuration < 0 {
		return fmt.Errorf("animation duration %v is negative", c.AnimationDuration)
	}
	if c.ShadowMaxOpacity < 0 || c.ShadowMaxOpacity > 1 {
		return fmt.Errorf("shadow max opacity %v outside [0, 1]", c.ShadowMaxOpacity)
	}
	if c.Direction != LeftToRight && c.Direction != RightToLeft {
		return fmt.Errorf("unknown direction %d", int(c.Direction))
	}
	return nil
}

// slideWidth returns the menu width in columns for a given screen width.
func (c Config) slideWidth(screenWidth int) int {
	if screenWidth <= 0 {
		return 0
	}
	w := int(math.Round(float64(screenWidth) * c.SlideWidthFraction))
	if w > screenWidth {
		w = screenWidth
	}
	return w
}
