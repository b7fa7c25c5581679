package icon

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func TestLookupKnownGlyphs(t *testing.T) {
	t.Parallel()

	for _, name := range []string{Target, Globe, Briefcase, UserCheck, Share2, Cpu} {
		glyph, ok := Lookup(name)
		require.True(t, ok, "glyph %s should be registered", name)
		require.NotEmpty(t, glyph.Body)
		require.True(t, Known(name))
	}

	_, ok := Lookup("Spaceship")
	require.False(t, ok)
	require.False(t, Known(""))
}

func TestNamesSorted(t *testing.T) {
	t.Parallel()

	names := Names()
	require.Len(t, names, 18)
	for i := 1; i < len(names); i++ {
		require.Less(t, names[i-1], names[i])
	}
}

func TestRenderEmitsSVG(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Render(UserCheck, 40, "shrink-0").Render(&buf))

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)

	svg := doc.Find("svg")
	require.Equal(t, 1, svg.Length())
	require.Equal(t, "40", svg.AttrOr("width", ""))
	require.Equal(t, "0 0 24 24", svg.AttrOr("viewbox", svg.AttrOr("viewBox", "")))
	class := svg.AttrOr("class", "")
	require.Contains(t, class, "lucide-user-check")
	require.Contains(t, class, "shrink-0")
	require.Equal(t, 1, svg.Find("polyline").Length())
}

func TestRenderDefaultsSizeAndSkipsUnknown(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Render(Zap, 0, "").Render(&buf))
	require.Contains(t, buf.String(), `width="24"`)

	require.Nil(t, Render("Unknown", 24, ""))
}

func TestClassNameKebabCase(t *testing.T) {
	t.Parallel()

	glyph, _ := Lookup(PlayCircle)
	require.Equal(t, "lucide-play-circle", glyph.ClassName())

	share, _ := Lookup(Share2)
	require.True(t, strings.HasPrefix(share.ClassName(), "lucide-share"))
	require.True(t, strings.HasSuffix(share.ClassName(), "-2"))
}
