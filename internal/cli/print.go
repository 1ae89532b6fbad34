package cli

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/matzehuels/whisker/pkg/errors"
	"github.com/matzehuels/whisker/pkg/grid"
	"github.com/matzehuels/whisker/pkg/render/halfblock"
)

// Color modes for --color.
const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

type printOptions struct {
	cols  int
	rows  int
	color string
}

// printCommand creates the print command.
func (c *CLI) printCommand() *cobra.Command {
	opts := printOptions{cols: defaultCols, rows: defaultRows, color: colorAuto}

	cmd := &cobra.Command{
		Use:   "print",
		Short: "Print a single frame to stdout",
		Long: `Print rasterizes the face once at the given size and writes it as
half-block text, suitable for piping into files or other programs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPrint(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().IntVar(&opts.cols, "cols", opts.cols, "width in terminal cells")
	cmd.Flags().IntVar(&opts.rows, "rows", opts.rows, "height in terminal cells")
	cmd.Flags().StringVar(&opts.color, "color", opts.color, "color output: auto, always or never")
	_ = cmd.RegisterFlagCompletionFunc("color", cobra.FixedCompletions(
		[]string{colorAuto, colorAlways, colorNever}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

func (c *CLI) runPrint(w io.Writer, opts printOptions) error {
	profile, err := colorProfile(opts.color, w)
	if err != nil {
		return err
	}
	buf, err := c.composeFrame(opts.cols, opts.rows)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, buf.RenderWith(grid.NewRenderer(w, profile)))
	return err
}

// composeFrame renders the configured face into a fresh buffer of
// cols × rows cells. Unlike the interactive view, a failed render is an
// error.
func (c *CLI) composeFrame(cols, rows int) (*grid.Buffer, error) {
	if err := errors.ValidateViewport(cols, rows); err != nil {
		return nil, err
	}
	bg, err := c.background()
	if err != nil {
		return nil, err
	}
	store, err := c.newStore()
	if err != nil {
		return nil, err
	}

	area := grid.NewRect(cols, rows)
	entry, _, err := store.Fetch(c.Config.Expression, area)
	if err != nil {
		return nil, err
	}

	buf := grid.NewBuffer(area)
	if bg.IsSet() {
		buf.Fill(bg)
	}
	halfblock.Draw(entry.Pixmap, area, buf)
	return buf, nil
}

// colorProfile resolves a --color value. In auto mode the profile follows
// the writer: plain text unless it is a color terminal.
func colorProfile(mode string, w io.Writer) (termenv.Profile, error) {
	switch mode {
	case colorAlways:
		return termenv.TrueColor, nil
	case colorNever:
		return termenv.Ascii, nil
	case colorAuto, "":
		return termenv.NewOutput(w).EnvColorProfile(), nil
	}
	return termenv.Ascii, errors.New(errors.ErrCodeInvalidInput, "invalid color mode %q (want auto, always or never)", mode)
}
