package ui

import (
	"image"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/openplacer/placeviz/internal/cli"
	"github.com/openplacer/placeviz/internal/config"
)

// viewerModel implements the Bubbletea model for the interactive image
// viewer. The preview lives in a viewport so images taller than the
// terminal can be scrolled.
type viewerModel struct {
	img     *image.RGBA
	title   string
	summary string
	vp      viewport.Model
	ready   bool
}

// NewViewerModel creates the viewer model for a rendered image.
func NewViewerModel(img *image.RGBA, title, summary string) tea.Model {
	return &viewerModel{
		img:     img,
		title:   title,
		summary: summary,
	}
}

// ShowImage displays the image in the terminal until the user quits. Used
// by the density tool when no output path is given.
func ShowImage(img *image.RGBA, title, summary string) error {
	p := tea.NewProgram(NewViewerModel(img, title, summary), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init initializes the model
func (m *viewerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		headerHeight := lipgloss.Height(m.headerView())
		footerHeight := lipgloss.Height(m.footerView())
		bodyHeight := msg.Height - headerHeight - footerHeight
		if bodyHeight < 1 {
			bodyHeight = 1
		}

		if !m.ready {
			m.vp = viewport.New(msg.Width, bodyHeight)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = bodyHeight
		}

		// Re-fit the preview to the new width; the box border costs two
		// cells per side.
		maxCols := min(msg.Width-4, config.PreviewMaxCols)
		cfg := FitPreview(m.img, maxCols, config.PreviewMaxRows)
		m.vp.SetContent(RenderANSI(DownsampleImage(m.img, cfg)))
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

// View renders the UI
func (m *viewerModel) View() string {
	if !m.ready {
		return "Preparing preview..."
	}
	return m.headerView() + "\n" + m.vp.View() + "\n" + m.footerView()
}

func (m *viewerModel) headerView() string {
	header := cli.TitleStyle.Render(m.title)
	if m.summary != "" {
		header += "\n" + cli.SubtitleStyle.Render(m.summary)
	}
	return header
}

func (m *viewerModel) footerView() string {
	return cli.KeyStyle.Render("↑/↓ scroll • q quit")
}
