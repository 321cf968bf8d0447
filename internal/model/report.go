package model

import (
	"fmt"
	"strings"
)

// SectionKind tells what part of a response a section renders.
type SectionKind int

// Section kinds.
const (
	SectionBucket SectionKind = iota
	SectionFile
	SectionRecommendations
	SectionSupersummary
	SectionFinalSummary
	SectionModernisationSummary
)

// Section is one heading of a rendered document, with its markdown body.
type Section struct {
	Level int
	Kind  SectionKind
	Title string
	Body  string
}

// Diagram is a diagram source block found inside a section body.
type Diagram struct {
	Section int
	Kind    string
	Source  string
}

// Document is a rendered analysis response.
type Document struct {
	Title    string
	Sections []Section
	Diagrams []Diagram
}

// Markdown returns the document as a markdown text.
func (d Document) Markdown() string {
	var b strings.Builder

	if d.Title != "" {
		fmt.Fprintf(&b, "# %s\n\n", d.Title)
	}

	for i, section := range d.Sections {
		if section.Kind == SectionBucket && i > 0 {
			b.WriteString("---\n\n")
		}

		fmt.Fprintf(&b, "%s %s\n\n", strings.Repeat("#", section.Level), section.Title)

		if body := strings.TrimSpace(section.Body); body != "" {
			b.WriteString(body)
			b.WriteString("\n\n")
		}
	}

	return b.String()
}

// Empty reports whether nothing was rendered.
func (d Document) Empty() bool {
	return len(d.Sections) == 0
}
