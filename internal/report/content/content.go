package content

import (
	"bytes"
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed report.yaml
var defaultSource []byte

// ErrUnknownSection is returned when a section id is not part of the report.
var ErrUnknownSection = errors.New("content: unknown section")

var (
	defaultOnce   sync.Once
	defaultReport Report
	defaultErr    error
)

// Default returns the embedded report. The embedded table is validated once;
// a broken table is a build defect, so Default panics on it.
func Default() Report {
	defaultOnce.Do(func() {
		defaultReport, defaultErr = Parse(defaultSource)
		if defaultErr == nil {
			defaultErr = defaultReport.CheckCanonical()
		}
	})
	if defaultErr != nil {
		panic(fmt.Sprintf("content: embedded report invalid: %v", defaultErr))
	}
	return defaultReport
}

// DefaultSource returns a copy of the embedded YAML document.
func DefaultSource() []byte {
	return bytes.Clone(defaultSource)
}

// Load reads and validates a report from r.
func Load(r io.Reader) (Report, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Report{}, fmt.Errorf("content: read: %w", err)
	}
	return Parse(raw)
}

// LoadFile reads and validates a report from path.
func LoadFile(path string) (Report, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Report{}, fmt.Errorf("content: unable to read %s: %w", path, err)
	}
	report, err := Parse(raw)
	if err != nil {
		return Report{}, fmt.Errorf("content: %s: %w", path, err)
	}
	return report, nil
}

// Parse decodes a YAML document and validates it.
func Parse(raw []byte) (Report, error) {
	var report Report
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&report); err != nil {
		if errors.Is(err, io.EOF) {
			return Report{}, errors.New("content: empty document")
		}
		return Report{}, fmt.Errorf("content: decode: %w", err)
	}
	report.normalise()
	if err := report.Validate(); err != nil {
		return Report{}, err
	}
	sum := sha256.Sum256(raw)
	report.digest = hex.EncodeToString(sum[:])
	return report, nil
}

// Digest is the sha256 of the source document, or empty for reports built in code.
func (r Report) Digest() string {
	return r.digest
}

// SectionIDs returns the section anchors in page order.
func (r Report) SectionIDs() []string {
	ids := make([]string, 0, len(r.Sections))
	for _, s := range r.Sections {
		ids = append(ids, s.ID)
	}
	return ids
}

// Section returns the section with the given anchor id.
func (r Report) Section(id string) (SectionConfig, error) {
	for _, s := range r.Sections {
		if s.ID == id {
			return s, nil
		}
	}
	return SectionConfig{}, fmt.Errorf("%w: %q", ErrUnknownSection, id)
}

// Links returns every navigation link on the page: header nav, header call to
// action, hero controls and footer groups.
func (r Report) Links() []NavLink {
	links := make([]NavLink, 0, len(r.Nav)+3)
	links = append(links, r.Nav...)
	links = append(links, r.Header.CTA)
	for _, cta := range []CTA{r.Hero.Primary, r.Hero.Secondary} {
		if cta.IsLink() {
			links = append(links, NavLink{Label: cta.Label, Target: cta.Target})
		}
	}
	for _, group := range r.Footer.Groups {
		links = append(links, group.Links...)
	}
	return links
}

// Cards returns every card in the section, in order.
func (s SectionConfig) Cards() []CardConfig {
	var cards []CardConfig
	for _, b := range s.Blocks {
		if b.Kind == BlockCards {
			cards = append(cards, b.Cards...)
		}
	}
	return cards
}

func (r *Report) normalise() {
	r.Lang = strings.TrimSpace(r.Lang)
	for i := range r.Sections {
		s := &r.Sections[i]
		s.ID = strings.TrimSpace(s.ID)
		if strings.TrimSpace(s.Gradient) == "" {
			s.Gradient = DefaultGradient
		}
	}
	for i := range r.Nav {
		r.Nav[i].Target = strings.TrimSpace(r.Nav[i].Target)
	}
	r.Header.CTA.Target = strings.TrimSpace(r.Header.CTA.Target)
	r.Hero.Primary.Target = strings.TrimSpace(r.Hero.Primary.Target)
	r.Hero.Secondary.Target = strings.TrimSpace(r.Hero.Secondary.Target)
	for gi := range r.Footer.Groups {
		for li := range r.Footer.Groups[gi].Links {
			link := &r.Footer.Groups[gi].Links[li]
			link.Target = strings.TrimSpace(link.Target)
		}
	}
}
