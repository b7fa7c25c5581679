package motion

import (
	"bytes"
	"sync"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func TestLatchFiresOnceAfterIntersection(t *testing.T) {
	t.Parallel()

	var l Latch
	require.False(t, l.Observe(false), "no intersection must not fire")
	require.False(t, l.Played())

	require.True(t, l.Observe(true), "first intersection fires")
	require.True(t, l.Played())

	require.False(t, l.Observe(true), "second intersection must not fire again")
	require.False(t, l.Observe(false))
	require.True(t, l.Played(), "latch never resets")
}

func TestLatchConcurrentObserveFiresOnce(t *testing.T) {
	t.Parallel()

	var (
		l     Latch
		wg    sync.WaitGroup
		mu    sync.Mutex
		fired int
	)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l.Observe(true) {
				mu.Lock()
				fired++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	require.Equal(t, 1, fired)
}

func TestObserverPlaysSectionsAsViewportReachesThem(t *testing.T) {
	t.Parallel()

	o := NewObserver()
	o.Observe("regional", Rect{Top: 1200, Height: 900}, SectionEntrance())
	o.Observe("enterprise", Rect{Top: 2300, Height: 1400}, SectionEntrance())
	o.Observe("hero", Rect{Top: 100, Height: 800}, HeroEntrance())

	require.True(t, o.Played("hero"), "mount motions play immediately")
	require.False(t, o.Played("regional"))

	// Viewport bottom at 1000 does not reach regional.
	require.Empty(t, o.Scroll(Viewport{ScrollY: 0, Height: 1000}))

	// Bottom edge 1250 overlaps regional by 50px, but the -100px margin
	// shrinks the viewport so it still must not fire.
	require.Empty(t, o.Scroll(Viewport{ScrollY: 250, Height: 1000}))
	require.False(t, o.Played("regional"))

	require.Equal(t, []string{"regional"}, o.Scroll(Viewport{ScrollY: 400, Height: 1000}))
	require.True(t, o.Played("regional"))

	// Scrolling back up never resets, scrolling down again never re-fires.
	require.Empty(t, o.Scroll(Viewport{ScrollY: 0, Height: 1000}))
	require.True(t, o.Played("regional"))
	require.Equal(t, []string{"enterprise"}, o.Scroll(Viewport{ScrollY: 1600, Height: 1000}))
	require.Empty(t, o.Scroll(Viewport{ScrollY: 1700, Height: 1000}))

	require.False(t, o.Played("missing"))
}

func TestObserverIgnoresDuplicateRegistration(t *testing.T) {
	t.Parallel()

	o := NewObserver()
	o.Observe("card", Rect{Top: 0, Height: 100}, CardEntrance(0))
	require.Equal(t, []string{"card"}, o.Scroll(Viewport{ScrollY: 0, Height: 500}))

	o.Observe("card", Rect{Top: 5000, Height: 100}, CardEntrance(0))
	require.True(t, o.Played("card"))
}

func TestObserverZeroHeightTargetTouchingViewport(t *testing.T) {
	t.Parallel()

	m := SectionEntrance()
	m.Margin = 0

	o := NewObserver()
	o.Observe("anchor", Rect{Top: 1000, Height: 0}, m)
	require.Empty(t, o.Scroll(Viewport{ScrollY: 0, Height: 999}))
	require.Equal(t, []string{"anchor"}, o.Scroll(Viewport{ScrollY: 0, Height: 1000}))
}

func TestObserverReplaysWhenOnceIsOff(t *testing.T) {
	t.Parallel()

	m := CardEntrance(0)
	m.Once = false

	o := NewObserver()
	o.Observe("card", Rect{Top: 2000, Height: 300}, m)
	o.Observe("fixed", Rect{Top: 2000, Height: 300}, CardEntrance(0))

	in := Viewport{ScrollY: 1500, Height: 1000}
	out := Viewport{ScrollY: 0, Height: 1000}

	require.Equal(t, []string{"card", "fixed"}, o.Scroll(in))
	require.Empty(t, o.Scroll(in), "staying in view does not replay")

	require.Empty(t, o.Scroll(out))
	require.False(t, o.Played("card"), "leaving the viewport resets a repeatable motion")
	require.True(t, o.Played("fixed"))

	require.Equal(t, []string{"card"}, o.Scroll(in))
	require.True(t, o.Played("card"))
}

func TestAttrsRenderDataAttributes(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	node := h.Div(h.ID("card"), CardEntrance(Stagger(2)).Attrs(), g.Text("x"))
	require.NoError(t, node.Render(&buf))

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	el := doc.Find("#card")

	require.Equal(t, "in-view", el.AttrOr("data-motion", ""))
	require.Equal(t, "20", el.AttrOr("data-motion-y", ""))
	require.Equal(t, "500", el.AttrOr("data-motion-duration", ""))
	require.Equal(t, "200", el.AttrOr("data-motion-delay", ""))
	require.Equal(t, "true", el.AttrOr("data-motion-once", ""))
	require.Equal(t, "0px", el.AttrOr("data-motion-margin", ""))
	require.Equal(t, "opacity:0;transform:translateY(20px)", el.AttrOr("style", ""))
}

func TestPresets(t *testing.T) {
	t.Parallel()

	s := SectionEntrance()
	require.Equal(t, "-100px", s.RootMargin())
	require.Equal(t, 800*time.Millisecond, s.Duration)
	require.Equal(t, EaseOut, s.Ease)

	require.Equal(t, TriggerMount, HeroEntrance().Trigger)
	require.Equal(t, time.Duration(0), Stagger(0))
	require.Equal(t, 100*time.Millisecond, Stagger(1))
	require.Equal(t, "opacity:0", Motion{}.InitialStyle())
}
