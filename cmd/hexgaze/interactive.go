package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hexgaze/hexgaze/hexfile"
	"github.com/hexgaze/hexgaze/render"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type viewerModel struct {
	err       error
	path      string
	window    hexfile.Window
	data      []byte
	enc       render.Encoding
	rowWidth  int // 0 = fit the viewport
	viewport  viewport.Model
	gotoInput textinput.Model
	entering  bool
	ready     bool
	status    string
}

func newViewerModel(path string, window hexfile.Window, enc render.Encoding, rowWidth int) *viewerModel {
	ti := textinput.New()
	ti.Prompt = "goto offset: "
	ti.Placeholder = "0x0000"
	ti.Width = 20
	return &viewerModel{
		path:      path,
		window:    window,
		enc:       enc,
		rowWidth:  rowWidth,
		gotoInput: ti,
	}
}

type loadedMsg struct {
	err  error
	data []byte
}

func (m *viewerModel) Init() tea.Cmd {
	return m.loadFile
}

func (m *viewerModel) loadFile() tea.Msg {
	data, err := hexfile.Load(m.path, m.window)
	if err != nil {
		return loadedMsg{err: err}
	}
	return loadedMsg{data: data}
}

func (m *viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.entering {
			switch msg.String() {
			case "enter":
				m.entering = false
				m.gotoOffset(m.gotoInput.Value())
				m.gotoInput.Reset()
				return m, nil
			case "esc":
				m.entering = false
				m.gotoInput.Reset()
				return m, nil
			}
			var cmd tea.Cmd
			m.gotoInput, cmd = m.gotoInput.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "a":
			m.setEncoding(render.EncodingASCII)

		case "u":
			m.setEncoding(render.EncodingUTF8)

		case "g":
			m.entering = true
			m.gotoInput.Focus()
			return m, textinput.Blink
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.data = msg.data
		m.refresh()

	case tea.WindowSizeMsg:
		headerHeight := 2
		footerHeight := 2
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}
		m.refresh()
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *viewerModel) setEncoding(enc render.Encoding) {
	if m.enc == enc {
		return
	}
	m.enc = enc
	m.refresh()
}

// rows returns the bytes per row currently in effect.
func (m *viewerModel) rows() int {
	if m.rowWidth > 0 {
		return m.rowWidth
	}
	if m.ready {
		return fitWidth(m.viewport.Width)
	}
	return render.DefaultWidth
}

func (m *viewerModel) refresh() {
	if m.data == nil || !m.ready {
		return
	}
	cfg := render.Config{
		Width:      m.rows(),
		Encoding:   m.enc,
		ShowOffset: true,
		Styles:     render.DefaultStyles(),
	}
	m.viewport.SetContent(strings.Join(cfg.LinesAt(m.window.Offset, m.data), "\n"))
	m.status = fmt.Sprintf("%d bytes · %s", len(m.data), m.enc)
}

func (m *viewerModel) gotoOffset(value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	off, err := strconv.ParseInt(value, 0, 64)
	if err != nil {
		m.status = "bad offset: " + value
		return
	}
	line := int((off - m.window.Offset) / int64(m.rows()))
	if line < 0 {
		line = 0
	}
	m.viewport.SetYOffset(line)
	m.status = fmt.Sprintf("at %#x", off)
}

func (m *viewerModel) View() string {
	if m.err != nil {
		return errorStyle.Render("Error: "+m.err.Error()) + "\n" +
			helpStyle.Render("q quit")
	}
	if !m.ready {
		return "Loading " + m.path + "..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("hexgaze · " + m.path))
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	if m.entering {
		b.WriteString(m.gotoInput.View())
	} else {
		b.WriteString(statusStyle.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ scroll · g goto · a ascii · u utf8 · q quit"))
	return b.String()
}

func runInteractive(path string, window hexfile.Window, enc render.Encoding, rowWidth int) error {
	p := tea.NewProgram(newViewerModel(path, window, enc, rowWidth), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
