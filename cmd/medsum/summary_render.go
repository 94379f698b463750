package main

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/list"
	"github.com/jedib0t/go-pretty/v6/text"

	"medsum/internal/page"
	"medsum/internal/textutil"
)

const wrapWidth = 88

// renderSession formats the result panel of doc for a terminal.
func renderSession(doc *page.Document, result summarizeResult, colorize bool) string {
	var b strings.Builder

	details := renderDetails([][2]string{
		{"File", result.File},
		{"Type", result.Type},
		{"Request", result.RequestID},
		{"Elapsed", formatElapsed(result.ElapsedMS)},
	}, colorize)
	if details != "" {
		b.WriteString(details)
		b.WriteString("\n\n")
	}

	for i, section := range doc.Sections() {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(sectionTitle(section.Label, colorize))
		b.WriteByte('\n')
		if section.List {
			b.WriteString(renderItems(section, colorize))
		} else {
			b.WriteString(indent(text.WrapSoft(textutil.PlainText(section.Text), wrapWidth), "  "))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func sectionTitle(label string, colorize bool) string {
	if !colorize {
		return label
	}
	return text.Colors{text.Bold, text.FgCyan}.Sprint(label)
}

func renderItems(section page.SectionView, colorize bool) string {
	lw := list.NewWriter()
	lw.SetStyle(list.StyleBulletCircle)
	lw.Style().LinePrefix = "  "
	for _, item := range section.Items {
		value := textutil.PlainText(item.Text)
		if item.Placeholder && colorize {
			value = text.Italic.Sprint(value)
		}
		lw.AppendItem(value)
	}
	return lw.Render()
}

func indent(value, prefix string) string {
	lines := strings.Split(value, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
