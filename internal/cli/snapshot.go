package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/whisker/pkg/errors"
	"github.com/matzehuels/whisker/pkg/grid"
	"github.com/matzehuels/whisker/pkg/raster"
)

type snapshotOptions struct {
	output string
	cols   int
	rows   int
	scale  int
}

// snapshotCommand creates the snapshot command.
func (c *CLI) snapshotCommand() *cobra.Command {
	opts := snapshotOptions{output: "whisker.png", cols: defaultCols, rows: defaultRows, scale: defaultScale}

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Save the rasterized face as PNG",
		Long: `Snapshot writes the pixel buffer behind a cols × rows frame as PNG.
The image is cols pixels wide and 2·rows pixels tall before scaling; each
pixel is enlarged to a scale × scale square. Transparent pixels stay
transparent unless --background is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSnapshot(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output file")
	cmd.Flags().IntVar(&opts.cols, "cols", opts.cols, "width in terminal cells")
	cmd.Flags().IntVar(&opts.rows, "rows", opts.rows, "height in terminal cells")
	cmd.Flags().IntVar(&opts.scale, "scale", opts.scale, "pixel upscale factor (1-64)")

	return cmd
}

func (c *CLI) runSnapshot(ctx context.Context, out io.Writer, opts snapshotOptions) error {
	if err := errors.ValidateOutputPath(opts.output); err != nil {
		return err
	}
	if err := errors.ValidateViewport(opts.cols, opts.rows); err != nil {
		return err
	}
	if err := errors.ValidateScale(opts.scale); err != nil {
		return err
	}
	bg, err := c.background()
	if err != nil {
		return err
	}
	store, err := c.newStore()
	if err != nil {
		return err
	}

	logger := loggerFromContext(ctx)
	prog := newProgress(logger)
	sp := newSpinnerWithContext(ctx, c.stderr, "Rendering "+c.Config.Expression.String()+" face...")
	sp.Start()
	defer sp.Stop()

	entry, _, err := store.Fetch(c.Config.Expression, grid.NewRect(opts.cols, opts.rows))
	if err != nil {
		return err
	}

	f, err := os.Create(opts.output)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", opts.output)
	}
	defer f.Close()

	pngOpts := []raster.PNGOption{raster.WithScale(opts.scale)}
	if bg.IsSet() {
		pngOpts = append(pngOpts, raster.WithBackground(bg.NRGBA()))
	}
	if err := raster.EncodePNG(f, entry.Pixmap, pngOpts...); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", opts.output)
	}

	sp.Stop()
	printSuccess(out, "Saved %s face", c.Config.Expression)
	printFile(out, opts.output)
	prog.done("Wrote " + opts.output)
	return nil
}
