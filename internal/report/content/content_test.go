package content

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultReportSectionsInOrder(t *testing.T) {
	t.Parallel()

	report := Default()
	require.Equal(t, []string{SectionRegional, SectionEnterprise, SectionPersonal}, report.SectionIDs())
	require.Equal(t, "zh-CN", report.Lang)
	require.Len(t, report.Digest(), 64)
}

func TestCheckCanonical(t *testing.T) {
	t.Parallel()

	report := Default()
	require.NoError(t, report.CheckCanonical())

	report.Sections = slices.Clone(report.Sections)
	report.Sections[0], report.Sections[2] = report.Sections[2], report.Sections[0]
	err := report.CheckCanonical()
	require.Error(t, err)
	require.Contains(t, err.Error(), "[personal enterprise regional]")

	report.Sections = report.Sections[:2]
	require.Error(t, report.CheckCanonical())
	require.Equal(t, []string{SectionRegional, SectionEnterprise, SectionPersonal}, Default().SectionIDs())
}

func TestDefaultReportEnterpriseCards(t *testing.T) {
	t.Parallel()

	section, err := Default().Section(SectionEnterprise)
	require.NoError(t, err)

	cards := section.Cards()
	require.Len(t, cards, 3)
	titles := make([]string, 0, len(cards))
	for _, c := range cards {
		titles = append(titles, c.Title)
		require.NotEmpty(t, c.Badge, "card %s must carry a badge", c.Title)
	}
	require.Equal(t, []string{"黄小西", "西城家园", "贵人家园"}, titles)
}

func TestDefaultReportLinksResolve(t *testing.T) {
	t.Parallel()

	report := Default()
	ids := map[string]int{}
	for _, id := range report.SectionIDs() {
		ids[id]++
	}
	for _, link := range report.Links() {
		if link.Target == "" {
			require.Equal(t, "#", link.Href())
			continue
		}
		require.Equal(t, 1, ids[link.Target], "link %s", link.Label)
	}
	require.Equal(t, SectionRegional, report.Header.CTA.Target)
}

func TestSectionUnknown(t *testing.T) {
	t.Parallel()

	_, err := Default().Section("pricing")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrUnknownSection))
}

func TestDefaultSourceRoundTripsThroughParse(t *testing.T) {
	t.Parallel()

	src := DefaultSource()
	report, err := Parse(src)
	require.NoError(t, err)
	require.Equal(t, Default().Digest(), report.Digest())

	src[0] = 'X'
	require.NotEqual(t, src[0], DefaultSource()[0], "DefaultSource must return a copy")
}

func TestParseRejectsProblems(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(*Report)
		want   string
	}{
		{
			name:   "duplicate section id",
			mutate: func(r *Report) { r.Sections[1].ID = SectionRegional },
			want:   `section id "regional" is not unique`,
		},
		{
			name:   "nav target missing",
			mutate: func(r *Report) { r.Nav[0].Target = "pricing" },
			want:   `targets "pricing" which matches 0 sections`,
		},
		{
			name:   "unknown icon",
			mutate: func(r *Report) { r.Sections[0].Icon = "Spaceship" },
			want:   `"Spaceship" is not a known glyph`,
		},
		{
			name:   "unknown theme",
			mutate: func(r *Report) { r.Sections[0].Blocks[0].Panels[0].Theme = "neon" },
			want:   `theme "neon" is unknown`,
		},
		{
			name:   "bad gradient",
			mutate: func(r *Report) { r.Sections[2].Gradient = "bg-red-500" },
			want:   `gradient "bg-red-500"`,
		},
		{
			name:   "bad language",
			mutate: func(r *Report) { r.Lang = "not a tag!" },
			want:   `lang "not a tag!"`,
		},
		{
			name:   "header cta without target",
			mutate: func(r *Report) { r.Header.CTA.Target = "" },
			want:   "header.cta has no target",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var report Report
			require.NoError(t, yaml.Unmarshal(DefaultSource(), &report))
			tc.mutate(&report)
			raw, err := yaml.Marshal(report)
			require.NoError(t, err)

			_, err = Parse(raw)
			require.Error(t, err)
			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "expected ValidationError, got %T", err)
			require.Contains(t, strings.Join(verr.Problems(), "\n"), tc.want)
		})
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("lang: zh-CN\ncolour: red\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "decode")

	_, err = Parse(nil)
	require.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "report.yaml")
	require.NoError(t, os.WriteFile(path, DefaultSource(), 0o600))

	report, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, Default().SectionIDs(), report.SectionIDs())

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	require.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadDefaultsGradient(t *testing.T) {
	t.Parallel()

	var report Report
	require.NoError(t, yaml.Unmarshal(DefaultSource(), &report))
	report.Sections[0].Gradient = ""
	raw, err := yaml.Marshal(report)
	require.NoError(t, err)

	loaded, err := Load(strings.NewReader(string(raw)))
	require.NoError(t, err)
	require.Equal(t, DefaultGradient, loaded.Sections[0].Gradient)
}
