// Package selfcheck evaluates the page's diagnostic assertions: navigation entries
// must target known sections, and removed UI elements must not reappear in the
// rendered text.
//
// Evaluation is a pure function of the navigation config and the visible text
// of a previous render pass. A failed check is a reported state, never an error.
package selfcheck

import (
	"regexp"

	"kartabogor.or.id/web/internal/content"
)

// Result is the outcome of one assertion.
type Result struct {
	Name string `json:"name"`
	Pass bool   `json:"pass"`
}

// Input is everything a check may look at. TextOK is false when the rendered
// text could not be obtained; text-dependent checks then fail closed.
type Input struct {
	Nav      []content.NavEntry
	Sections content.SectionSet
	Text     string
	TextOK   bool
}

// Check is a single named assertion.
type Check struct {
	Name string
	// NeedsText marks checks that inspect rendered text.
	NeedsText bool
	Eval      func(in Input) bool
}

var (
	programsAnchor = regexp.MustCompile(`#programs`)
	heroButtons    = regexp.MustCompile(`Program Unggulan|Kontak Kami`)
	contactButtons = regexp.MustCompile(`WhatsApp Sekretariat|Kirim Email`)
)

// checks is the fixed, ordered list of assertions.
var checks = []Check{
	{
		Name: "Tidak ada link 'Program' di navigasi",
		Eval: func(in Input) bool {
			for _, entry := range in.Nav {
				if entry.Href == "#programs" || entry.Label == "Program" {
					return false
				}
			}
			return true
		},
	},
	{
		Name: "Semua tautan navigasi mengarah ke section yang ada",
		Eval: func(in Input) bool {
			for _, entry := range in.Nav {
				id, ok := entry.Fragment()
				if !ok || !in.Sections.Has(id) {
					return false
				}
			}
			return true
		},
	},
	{
		Name:      "Section 'Program' tidak ada",
		NeedsText: true,
		Eval:      absent(programsAnchor),
	},
	{
		Name:      "Tidak ada tombol 'Program Unggulan' & 'Kontak Kami' di hero",
		NeedsText: true,
		Eval:      absent(heroButtons),
	},
	{
		Name:      "Tidak ada tombol 'WhatsApp Sekretariat' & 'Kirim Email' di Kontak",
		NeedsText: true,
		Eval:      absent(contactButtons),
	},
}

func absent(re *regexp.Regexp) func(Input) bool {
	return func(in Input) bool {
		return !re.MatchString(in.Text)
	}
}

// Evaluate runs every check against nav, sections and the rendered text.
// An empty text is valid input: absence checks trivially pass.
func Evaluate(nav []content.NavEntry, sections content.SectionSet, text string) []Result {
	return Run(Input{Nav: nav, Sections: sections, Text: text, TextOK: true})
}

// Names returns the check names in evaluation order.
func Names() []string {
	names := make([]string, 0, len(checks))
	for _, c := range checks {
		names = append(names, c.Name)
	}
	return names
}

// Run evaluates the checks in order. It never panics: a check that panics is reported as failed.
func Run(in Input) []Result {
	results := make([]Result, 0, len(checks))
	for _, c := range checks {
		results = append(results, Result{Name: c.Name, Pass: runOne(c, in)})
	}
	return results
}

func runOne(c Check, in Input) (pass bool) {
	if c.Eval == nil {
		return false
	}
	if c.NeedsText && !in.TextOK {
		return false
	}
	defer func() {
		if recover() != nil {
			pass = false
		}
	}()
	return c.Eval(in)
}

// Report summarizes a set of results.
type Report struct {
	Results []Result `json:"results"`
	Passed  int      `json:"passed"`
	Failed  int      `json:"failed"`
}

// NewReport counts passes and failures, keeping result order.
func NewReport(results []Result) Report {
	r := Report{Results: results}
	for _, res := range results {
		if res.Pass {
			r.Passed++
		} else {
			r.Failed++
		}
	}
	return r
}

// OK reports whether every check passed.
func (r Report) OK() bool { return r.Failed == 0 && len(r.Results) > 0 }
