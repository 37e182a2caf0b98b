package alert

import (
	"fmt"
	"strings"
	"time"
)

// AnimationStyle selects the entrance direction.
type AnimationStyle int

const (
	AnimationTopToBottom AnimationStyle = iota
	AnimationNone
	AnimationBottomToTop
	AnimationLeftToRight
	AnimationRightToLeft
)

const (
	entranceDistance = 400
	bounceOffset     = 15

	entrancePhaseDuration = 200 * time.Millisecond
	exitDuration          = 200 * time.Millisecond
)

var animationNames = map[AnimationStyle]string{
	AnimationTopToBottom: "top-to-bottom",
	AnimationNone:        "none",
	AnimationBottomToTop: "bottom-to-top",
	AnimationLeftToRight: "left-to-right",
	AnimationRightToLeft: "right-to-left",
}

func (s AnimationStyle) String() string {
	if name, ok := animationNames[s]; ok {
		return name
	}
	return fmt.Sprintf("animation(%d)", int(s))
}

// AnimationStyles lists every style.
func AnimationStyles() []AnimationStyle {
	return []AnimationStyle{
		AnimationNone, AnimationTopToBottom, AnimationBottomToTop,
		AnimationLeftToRight, AnimationRightToLeft,
	}
}

// ParseAnimationStyle accepts the names printed by String.
func ParseAnimationStyle(s string) (AnimationStyle, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for style, name := range animationNames {
		if name == s {
			return style, nil
		}
	}
	return AnimationTopToBottom, fmt.Errorf("unknown animation style %q", s)
}

// direction returns the unit vector the alert travels along.
func (s AnimationStyle) direction() Point {
	switch s {
	case AnimationBottomToTop:
		return Point{Y: -1}
	case AnimationLeftToRight:
		return Point{X: 1}
	case AnimationRightToLeft:
		return Point{X: -1}
	default:
		return Point{Y: 1}
	}
}

// entrancePoses returns the start, overshoot and resting poses.
func entrancePoses(s AnimationStyle) (start, overshoot, rest Pose) {
	d := s.direction()
	start = Pose{Offset: Point{X: -d.X * entranceDistance, Y: -d.Y * entranceDistance}}
	overshoot = Pose{Opacity: 1, Offset: Point{X: d.X * bounceOffset, Y: d.Y * bounceOffset}}
	rest = Pose{Opacity: 1}
	return start, overshoot, rest
}
