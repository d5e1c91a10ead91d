package templates

import (
	"strconv"
	"time"
)

// Effect names an entrance animation defined in the stylesheet.
type Effect string

const (
	EffectFadeIn    Effect = "fade-in"
	EffectSlideDown Effect = "slide-down"
	EffectSlideUp   Effect = "slide-up"
)

// Motion is a declarative entrance animation: the stylesheet owns the
// keyframes, markup only states effect, duration and delay.
type Motion struct {
	Effect   Effect
	Duration time.Duration
	Delay    time.Duration
}

var (
	nameMotion    = Motion{Effect: EffectSlideDown, Duration: 400 * time.Millisecond}
	aboutMotion   = Motion{Effect: EffectFadeIn, Duration: 300 * time.Millisecond, Delay: 100 * time.Millisecond}
	skillMotion   = Motion{Effect: EffectFadeIn, Duration: 300 * time.Millisecond, Delay: 150 * time.Millisecond}
	projectMotion = Motion{Effect: EffectSlideUp, Duration: 300 * time.Millisecond}
)

// Class returns the CSS classes selecting the effect.
func (m Motion) Class() string {
	if m.Effect == "" {
		return ""
	}
	return "motion motion-" + string(m.Effect)
}

// Style returns the inline timing declarations.
func (m Motion) Style() string {
	if m.Effect == "" {
		return ""
	}
	return "animation-duration:" + seconds(m.Duration) + ";animation-delay:" + seconds(m.Delay)
}

func seconds(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64) + "s"
}

func withClass(base string, m Motion) string {
	motion := m.Class()
	switch {
	case base == "":
		return motion
	case motion == "":
		return base
	default:
		return base + " " + motion
	}
}
