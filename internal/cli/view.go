package cli

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/whisker/pkg/cache"
	"github.com/matzehuels/whisker/pkg/face"
	"github.com/matzehuels/whisker/pkg/grid"
	"github.com/matzehuels/whisker/pkg/render/halfblock"
)

// viewCommand creates the interactive view command.
func (c *CLI) viewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Show the face full-screen until a key is pressed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runView(cmd.Context())
		},
	}
}

func (c *CLI) runView(ctx context.Context) error {
	store, err := c.newStore()
	if err != nil {
		return err
	}
	bg, err := c.background()
	if err != nil {
		return err
	}

	c.quietForTUI()
	defer c.restoreAfterTUI()

	c.Logger.Info("starting view", "expression", c.Config.Expression, "cache", store.Stats().Capacity)
	p := tea.NewProgram(
		newFaceModel(store, c.Config.Expression, bg),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return err
	}

	st := store.Stats()
	c.Logger.Info("view closed", "hits", st.Hits, "misses", st.Misses, "failures", st.Failures)
	return nil
}

// =============================================================================
// faceModel - full-screen face
// =============================================================================

// faceModel draws one expression over the whole window. Each frame asks
// the store for a pixmap at the current size; a failed render leaves the
// frame blank and the next frame tries again.
type faceModel struct {
	store      cache.Getter
	expression face.Expression
	background grid.Color
	width      int
	height     int
}

func newFaceModel(store cache.Getter, expr face.Expression, bg grid.Color) faceModel {
	return faceModel{store: store, expression: expr, background: bg}
}

func (m faceModel) Init() tea.Cmd {
	return nil
}

func (m faceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, tea.Quit
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m faceModel) View() string {
	return m.frame().Render()
}

// frame composes the current window into a cell buffer.
func (m faceModel) frame() *grid.Buffer {
	area := grid.NewRect(m.width, m.height)
	buf := grid.NewBuffer(area)
	if area.IsEmpty() {
		return buf
	}
	if m.background.IsSet() {
		buf.Fill(m.background)
	}
	if entry, ok := m.store.Get(m.expression, area); ok {
		halfblock.New(entry.Pixmap).Render(area, buf)
	}
	return buf
}
