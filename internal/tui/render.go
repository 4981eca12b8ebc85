package tui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fishub/lookupload/internal/lookup"
)

// RenderSummary writes one line per category with its value count.
func RenderSummary(w io.Writer, mode Mode, categories []lookup.Category) error {
	if mode == ModePlain {
		for _, c := range categories {
			if _, err := fmt.Fprintf(w, "%s\t%d\n", c.Name, len(c.Values)); err != nil {
				return err
			}
		}
		return nil
	}

	rows := make([][]string, len(categories))
	for i, c := range categories {
		rows[i] = []string{c.Name, strconv.Itoa(len(c.Values))}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(BorderStyle).
		Headers("CATEGORY", "VALUES").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return HeaderStyle
			case col == 1:
				return CountStyle
			default:
				return CellStyle
			}
		})

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

// RenderValues writes every value of each category, in stored order.
func RenderValues(w io.Writer, mode Mode, categories []lookup.Category) error {
	var b strings.Builder
	for i, c := range categories {
		if mode == ModePlain {
			for _, v := range c.Values {
				fmt.Fprintf(&b, "%s\t%s\n", c.Name, v)
			}
			continue
		}

		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s %s\n", TitleStyle.Render(c.Name), BorderStyle.Render(fmt.Sprintf("(%d)", len(c.Values))))
		for n, v := range c.Values {
			fmt.Fprintf(&b, "  %s %s\n", BorderStyle.Render(fmt.Sprintf("%2d.", n+1)), v)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
