// Package motion describes the entrance transitions applied to page regions and
// models the one-shot "played" latch that the browser script drives from
// viewport intersection events.
package motion

import (
	"strconv"
	"strings"
	"time"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Trigger selects what starts a transition.
type Trigger string

const (
	// TriggerInView starts the transition when the element enters the viewport.
	TriggerInView Trigger = "in-view"
	// TriggerMount starts the transition as soon as the document is ready.
	TriggerMount Trigger = "mount"
)

// Ease names a timing function understood by reveal.js.
type Ease string

const (
	EaseDefault Ease = "ease"
	EaseOut     Ease = "ease-out"
)

// Motion holds the parameters of one entrance transition.
type Motion struct {
	Trigger  Trigger
	OffsetY  int
	Duration time.Duration
	Delay    time.Duration
	Ease     Ease
	Once     bool
	// Margin grows (positive) or shrinks (negative) the viewport, in pixels,
	// before intersection is tested.
	Margin int
}

// SectionEntrance is applied to every report section.
func SectionEntrance() Motion {
	return Motion{
		Trigger:  TriggerInView,
		OffsetY:  30,
		Duration: 800 * time.Millisecond,
		Ease:     EaseOut,
		Once:     true,
		Margin:   -100,
	}
}

// CardEntrance is applied to cards; delay staggers siblings.
func CardEntrance(delay time.Duration) Motion {
	return Motion{
		Trigger:  TriggerInView,
		OffsetY:  20,
		Duration: 500 * time.Millisecond,
		Delay:    delay,
		Ease:     EaseDefault,
		Once:     true,
	}
}

// HeroEntrance plays once when the page loads.
func HeroEntrance() Motion {
	return Motion{
		Trigger:  TriggerMount,
		OffsetY:  30,
		Duration: time.Second,
		Ease:     EaseOut,
		Once:     true,
	}
}

// Stagger returns the delay for the i-th sibling in a group.
func Stagger(i int) time.Duration {
	if i <= 0 {
		return 0
	}
	return time.Duration(i) * 100 * time.Millisecond
}

// RootMargin formats Margin the way IntersectionObserver expects it.
func (m Motion) RootMargin() string {
	return strconv.Itoa(m.Margin) + "px"
}

// InitialStyle is the inline style the element carries until it plays.
func (m Motion) InitialStyle() string {
	var b strings.Builder
	b.WriteString("opacity:0")
	if m.OffsetY != 0 {
		b.WriteString(";transform:translateY(")
		b.WriteString(strconv.Itoa(m.OffsetY))
		b.WriteString("px)")
	}
	return b.String()
}

// Attrs renders the data attributes consumed by reveal.js together with the
// initial hidden style.
func (m Motion) Attrs() g.Node {
	trigger := m.Trigger
	if trigger == "" {
		trigger = TriggerInView
	}
	ease := m.Ease
	if ease == "" {
		ease = EaseDefault
	}
	return g.Group{
		h.Data("motion", string(trigger)),
		h.Data("motion-y", strconv.Itoa(m.OffsetY)),
		h.Data("motion-duration", strconv.FormatInt(m.Duration.Milliseconds(), 10)),
		h.Data("motion-delay", strconv.FormatInt(m.Delay.Milliseconds(), 10)),
		h.Data("motion-ease", string(ease)),
		h.Data("motion-once", strconv.FormatBool(m.Once)),
		h.Data("motion-margin", m.RootMargin()),
		h.Style(m.InitialStyle()),
	}
}
