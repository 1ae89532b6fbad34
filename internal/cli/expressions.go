package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/whisker/pkg/face"
)

// expressionsCommand creates the expressions command.
func (c *CLI) expressionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "expressions",
		Short: "List the available expressions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeExpressions(cmd.OutOrStdout(), c.Config.Expression)
		},
	}
}

// writeExpressions prints a table of expressions, marking current.
func writeExpressions(w io.Writer, current face.Expression) error {
	rows := [][]string{}
	for _, e := range face.Expressions() {
		cfg := face.ConfigFor(e)
		marker := " "
		if e == current {
			marker = "▸"
		}
		rows = append(rows, []string{marker, e.String(), cfg.Eyes.String(), cfg.Brows.String(), cfg.Mouth.String()})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Expression", "Eyes", "Brows", "Mouth").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			if col == 1 && rows[row][0] != " " {
				return StyleHighlight.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	_, err := fmt.Fprintln(w, t.Render())
	return err
}
