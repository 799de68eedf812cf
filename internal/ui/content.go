// ABOUTME: Pure content renderers for the read-only tabs
// ABOUTME: Turn fetched item lists into styled view fragments, order preserved

package ui

import (
	"strings"

	"github.com/brigadress/showcase-tui/internal/api"
)

func renderFAQ(items []api.FAQItem) string {
	if len(items) == 0 {
		return mutedStyle.Render("No FAQ entries yet.")
	}

	var b strings.Builder
	for i, it := range items {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(titleStyle.Render(it.Question))
		b.WriteString("\n")
		b.WriteString(it.Answer)
	}
	return b.String()
}

func renderDocuments(items []api.Document) string {
	if len(items) == 0 {
		return mutedStyle.Render("No documents yet.")
	}

	var b strings.Builder
	for i, it := range items {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(titleStyle.Render(it.Title))
		b.WriteString("\n")
		b.WriteString(linkStyle.Render(it.URL))
	}
	return b.String()
}

func renderProjects(items []api.Project) string {
	if len(items) == 0 {
		return mutedStyle.Render("No projects yet.")
	}

	var b strings.Builder
	for i, it := range items {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(titleStyle.Render(it.Title))
		if it.Description != "" {
			b.WriteString("\n")
			b.WriteString(it.Description)
		}
		if it.Image != "" {
			b.WriteString("\n")
			b.WriteString(mutedStyle.Render("Image: " + it.Image))
		}
	}
	return b.String()
}
