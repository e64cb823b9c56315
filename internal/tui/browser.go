package tui

import (
	"math"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/wave/internal/palette"
	"github.com/san-kum/wave/internal/wave"
)

var (
	cyan    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	magenta = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))
)

const (
	stripCells   = 24
	previewCells = 64
	hueDivisor   = 200.0
)

// Browser is an interactive palette picker. Strips animate with the
// same hue drift the full-screen animation uses.
type Browser struct {
	palettes []palette.Palette
	cursor   int
	choice   string
	frame    int
	width    int
}

func NewBrowser() Browser {
	return Browser{palettes: palette.All(), width: 80}
}

// Choice reports the palette confirmed with enter, or "" when the
// browser was dismissed.
func (b Browser) Choice() string { return b.choice }

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(50*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (b Browser) Init() tea.Cmd { return tick() }

func (b Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return b, tea.Quit
		case "up", "k":
			if b.cursor > 0 {
				b.cursor--
			}
		case "down", "j":
			if b.cursor < len(b.palettes)-1 {
				b.cursor++
			}
		case "enter", " ":
			b.choice = b.palettes[b.cursor].Name
			return b, tea.Quit
		}
		return b, nil
	case tea.WindowSizeMsg:
		b.width = msg.Width
		return b, nil
	case tickMsg:
		b.frame++
		return b, tick()
	}
	return b, nil
}

func (b Browser) View() string {
	var sb strings.Builder
	sb.WriteString(cyan.Render("wave palettes") + "\n\n")

	for i, p := range b.palettes {
		marker, name := "  ", white.Render(p.Name)
		if i == b.cursor {
			marker, name = magenta.Render("> "), magenta.Render(p.Name)
		}
		pad := strings.Repeat(" ", 9-len(p.Name))
		sb.WriteString(marker + name + pad + b.strip(p.Fn, stripCells, "█") + "\n")
	}

	selected := b.palettes[b.cursor]
	cells := previewCells
	if b.width-4 < cells {
		cells = b.width - 4
	}
	if cells < stripCells {
		cells = stripCells
	}
	sb.WriteString("\n" + b.strip(selected.Fn, cells, "█") + "\n")
	sb.WriteString(b.glyphRow(selected.Fn) + "\n")
	sb.WriteString(dim.Render(sampleIDs(selected.Fn)) + "\n\n")
	sb.WriteString(dim.Render("up/down move · enter select · q quit") + "\n")
	return sb.String()
}

// sampleIDs lists the 256-color ids a palette hits across one cycle.
func sampleIDs(fn palette.Func) string {
	var sb strings.Builder
	sb.WriteString("ids")
	for s := 0; s <= 4; s++ {
		sb.WriteString(" " + strconv.Itoa(int(fn(float64(s)/4.0))))
	}
	return sb.String()
}

// strip renders n cells of a palette under the run's hue drift.
func (b Browser) strip(fn palette.Func, n int, glyph string) string {
	var sb strings.Builder
	for x := 0; x < n; x++ {
		t := math.Mod(float64(x)/float64(n)+float64(b.frame)/hueDivisor, 1.0)
		id := strconv.Itoa(int(fn(t)))
		sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(id)).Render(glyph))
	}
	return sb.String()
}

// glyphRow previews the default glyph cycle in the selected palette.
func (b Browser) glyphRow(fn palette.Func) string {
	var sb strings.Builder
	for i, g := range wave.DefaultGlyphs {
		t := math.Mod(float64(i)/float64(len(wave.DefaultGlyphs))+float64(b.frame)/hueDivisor, 1.0)
		id := strconv.Itoa(int(fn(t)))
		sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(id)).Render(g))
		if i < len(wave.DefaultGlyphs)-1 {
			sb.WriteString(" ")
		}
	}
	return sb.String()
}
