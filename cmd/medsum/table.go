package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// renderDetails renders label/value pairs as a two-column rounded table.
// Empty values are skipped.
func renderDetails(pairs [][2]string, colorize bool) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.Style().Options.SeparateRows = false

	rows := 0
	for _, pair := range pairs {
		if pair[1] == "" {
			continue
		}
		tw.AppendRow(table.Row{pair[0], pair[1]})
		rows++
	}
	if rows == 0 {
		return ""
	}

	labelCfg := table.ColumnConfig{Number: 1, Align: text.AlignRight}
	if colorize {
		labelCfg.Colors = text.Colors{text.Bold}
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		labelCfg,
		{Number: 2, Align: text.AlignLeft},
	})
	return tw.Render()
}
