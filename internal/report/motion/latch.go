package motion

import (
	"sort"
	"sync"
	"sync/atomic"
)

// Latch records whether an entrance transition has played. It only ever moves
// from not played to played.
type Latch struct {
	played atomic.Bool
}

// Observe feeds one intersection sample. It returns true exactly once: on the
// first sample that reports the element intersecting the viewport.
func (l *Latch) Observe(intersecting bool) bool {
	if !intersecting {
		return false
	}
	return l.played.CompareAndSwap(false, true)
}

// Played reports whether the latch has fired.
func (l *Latch) Played() bool {
	return l.played.Load()
}

// Rect is a vertical extent in document coordinates, in pixels.
type Rect struct {
	Top    int
	Height int
}

// Bottom returns the exclusive lower edge.
func (r Rect) Bottom() int { return r.Top + r.Height }

// Viewport is the visible window of the document.
type Viewport struct {
	ScrollY int
	Height  int
}

// intersects applies the root margin and tests overlap the way
// IntersectionObserver does for the vertical axis. Edges are inclusive, so a
// zero-height target touching the viewport counts as intersecting.
func (v Viewport) intersects(r Rect, margin int) bool {
	top := v.ScrollY - margin
	bottom := v.ScrollY + v.Height + margin
	if bottom < top {
		return false
	}
	return r.Top <= bottom && r.Bottom() >= top
}

type target struct {
	box    Rect
	motion Motion
	latch  Latch
	// shown tracks repeatable motions, which reset when they leave the viewport.
	shown bool
}

func (t *target) sample(intersecting bool) bool {
	if t.motion.Once {
		return t.latch.Observe(intersecting)
	}
	if !intersecting {
		t.shown = false
		return false
	}
	if t.shown {
		return false
	}
	t.shown = true
	return true
}

func (t *target) played() bool {
	if t.motion.Once {
		return t.latch.Played()
	}
	return t.shown
}

// Observer tracks a set of in-view targets as the viewport moves. Targets
// with Once set play at most once; the others replay on every entry.
type Observer struct {
	mu      sync.Mutex
	targets map[string]*target
}

// NewObserver constructs an empty observer.
func NewObserver() *Observer {
	return &Observer{targets: make(map[string]*target)}
}

// Observe registers id with its bounding box. Mount-triggered motions play
// immediately. Registering an id twice keeps the first registration.
func (o *Observer) Observe(id string, box Rect, m Motion) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if _, exists := o.targets[id]; exists {
		return
	}
	t := &target{box: box, motion: m}
	if m.Trigger == TriggerMount {
		t.sample(true)
	}
	o.targets[id] = t
}

// Scroll delivers a viewport change and returns the ids that started playing
// on this call, sorted.
func (o *Observer) Scroll(v Viewport) []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	var fired []string
	for id, t := range o.targets {
		if t.motion.Trigger == TriggerMount {
			continue
		}
		if t.sample(v.intersects(t.box, t.motion.Margin)) {
			fired = append(fired, id)
		}
	}
	sort.Strings(fired)
	return fired
}

// Played reports whether id has played. Unknown ids report false.
func (o *Observer) Played(id string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	t, ok := o.targets[id]
	return ok && t.played()
}
