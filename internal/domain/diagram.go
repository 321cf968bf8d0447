package domain

import (
	"strings"

	m "treesummary.dev/pkg/treesummary/internal/model"
)

// DiagramKind is the fence language recognised as a diagram.
const DiagramKind = "mermaid"

// CollectDiagrams scans every section body once for fenced diagram blocks and
// records them on the document. An unterminated fence is ignored.
func CollectDiagrams(doc m.Document) m.Document {
	doc.Diagrams = nil

	for i, section := range doc.Sections {
		for _, source := range diagramBlocks(section.Body) {
			doc.Diagrams = append(doc.Diagrams, m.Diagram{Section: i, Kind: DiagramKind, Source: source})
		}
	}

	return doc
}

func diagramBlocks(body string) []string {
	var (
		blocks  []string
		current []string
		inFence bool
		capture bool
	)

	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)

		if !inFence {
			if strings.HasPrefix(trimmed, "```") {
				inFence = true
				capture = strings.EqualFold(strings.TrimSpace(strings.TrimPrefix(trimmed, "```")), DiagramKind)
				current = nil
			}

			continue
		}

		if trimmed == "```" {
			if capture {
				blocks = append(blocks, strings.Join(current, "\n"))
			}

			inFence = false
			capture = false

			continue
		}

		if capture {
			current = append(current, line)
		}
	}

	return blocks
}
