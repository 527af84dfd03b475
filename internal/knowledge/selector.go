package knowledge

import (
	"fmt"
	"sort"
	"strings"
)

// Match is the per-request selection result: the titles of the selected
// sections in rank order and their concatenated text.
type Match struct {
	Titles []string
	Text   string
}

// FullCorpus returns the entire knowledge base as one string, injected into
// every prompt so the model is always grounded.
func FullCorpus() string {
	return render(sections)
}

// Select scores every section by how many of its keywords appear as literal
// substrings of the lower-cased query. Sections with at least one hit are
// kept, ordered by hit count descending; equal scores keep catalog order.
// When nothing matches, the whole catalog is selected so the assembled
// prompt never lacks grounding material.
func Select(query string) Match {
	lower := strings.ToLower(query)

	type scoredSection struct {
		section Section
		hits    int
	}

	kept := make([]scoredSection, 0, len(sections))
	for _, section := range sections {
		hits := 0
		for _, keyword := range section.Keywords {
			if strings.Contains(lower, keyword) {
				hits++
			}
		}
		if hits > 0 {
			kept = append(kept, scoredSection{section: section, hits: hits})
		}
	}

	// Stable sort so equal-hit sections retain catalog order.
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].hits > kept[j].hits
	})

	selected := make([]Section, 0, len(kept))
	for _, scored := range kept {
		selected = append(selected, scored.section)
	}
	if len(selected) == 0 {
		selected = sections
	}

	titles := make([]string, len(selected))
	for i, section := range selected {
		titles[i] = section.Title
	}

	return Match{Titles: titles, Text: render(selected)}
}

func render(selected []Section) string {
	parts := make([]string, len(selected))
	for i, section := range selected {
		parts[i] = fmt.Sprintf("### %s\n%s", section.Title, section.Content)
	}
	return strings.Join(parts, sectionDelimiter)
}
