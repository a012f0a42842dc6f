package usecase

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"resume-builder/internal/model"
)

// Placeholders shown in the preview header while a field is empty.
const (
	FallbackName  = "Your Name"
	FallbackTitle = "Professional Title"
	FallbackEmail = "email@example.com"
	FallbackPhone = "123-456-7890"

	MetaSeparator = " • "

	// SummarySoftLimit is the length the counter is measured against. It is
	// informational; longer summaries are accepted.
	SummarySoftLimit = 500
)

// View is the read-only preview of a Document.
type View struct {
	Name         string   `json:"name"`
	Meta         []string `json:"meta"`
	Summary      string   `json:"summary,omitempty"`
	ShowSummary  bool     `json:"show_summary"`
	Skills       []string `json:"skills,omitempty"`
	Achievements []string `json:"achievements,omitempty"`

	SummaryLength int    `json:"summary_length"`
	SummaryLimit  int    `json:"summary_limit"`
	SummaryCount  string `json:"summary_count"`
	OverLimit     bool   `json:"over_limit"`
}

// MetaLine joins the title, email and phone entries of the header.
func (v View) MetaLine() string {
	return strings.Join(v.Meta, MetaSeparator)
}

func (v View) ShowSkills() bool       { return len(v.Skills) > 0 }
func (v View) ShowAchievements() bool { return len(v.Achievements) > 0 }

// Render projects a document into its preview using the default summary
// limit.
func Render(d *model.Document) View {
	return RenderWithLimit(d, SummarySoftLimit)
}

// RenderWithLimit is Render with a configurable summary counter limit.
func RenderWithLimit(d *model.Document, limit int) View {
	n := utf8.RuneCountInString(d.Summary)
	return View{
		Name: orDefault(d.Name, FallbackName),
		Meta: []string{
			orDefault(d.Title, FallbackTitle),
			orDefault(d.Email, FallbackEmail),
			orDefault(d.Phone, FallbackPhone),
		},
		Summary:       d.Summary,
		ShowSummary:   d.Summary != "",
		Skills:        nonBlank(d.Skills),
		Achievements:  nonBlank(d.Achievements),
		SummaryLength: n,
		SummaryLimit:  limit,
		SummaryCount:  fmt.Sprintf("%d/%d", n, limit),
		OverLimit:     n > limit,
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// nonBlank keeps the entries that are not whitespace-only, in order, with
// their text as typed. A byte order mark counts as whitespace.
func nonBlank(items []string) []string {
	var out []string
	for _, s := range items {
		if strings.TrimFunc(s, isBlankRune) != "" {
			out = append(out, s)
		}
	}
	return out
}

func isBlankRune(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}
