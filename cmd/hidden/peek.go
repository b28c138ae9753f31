package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lox/hidden/dispenser"
)

var (
	peekTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true)

	peekHiddenStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	peekRevealedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#96CEB4")).
				Bold(true)

	peekHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

// PeekCmd opens a small interactive view that reveals a minted hand one
// choice at a time, and can mint fresh hands from the same dispenser.
type PeekCmd struct {
	File string `kong:"arg,optional,help='Deck file, one element per line (stdin when omitted)'"`
	Seed *int64 `kong:"help='Deterministic RNG seed (optional)'"`
}

func (c *PeekCmd) Run() error {
	logger := setupLogger(false)

	deck, err := readDeck(c.File)
	if err != nil {
		return err
	}
	if len(deck) == 0 {
		return fmt.Errorf("deck is empty, nothing to peek at")
	}

	d := dispenser.New[string](len(deck), newRNG(c.Seed, logger))
	hand, err := d.Mint(deck)
	if err != nil {
		return fmt.Errorf("minting hand: %w", err)
	}

	m := &peekModel{
		deck: deck,
		disp: d,
		hand: hand,
		vp:   viewport.New(40, 10),
	}
	m.refresh()

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running peek view: %w", err)
	}
	return nil
}

// peekModel is the Bubble Tea model for the peek command.
type peekModel struct {
	deck []string
	disp *dispenser.Dispenser[string]
	hand *dispenser.Hand[string]

	revealed int
	minted   int
	vp       viewport.Model

	width       int
	height      int
	initialized bool
}

// Init implements tea.Model.
func (m *peekModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *peekModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.vp.Width = msg.Width
		m.vp.Height = msg.Height - 4
		m.initialized = true
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ", "enter":
			if m.revealed < m.hand.Len() {
				m.revealed++
				m.refresh()
			}
			return m, nil
		case "m":
			hand, err := m.disp.Mint(m.deck)
			if err != nil {
				// The deck never changes length here, so a mismatch
				// cannot happen; quit rather than render garbage.
				return m, tea.Quit
			}
			m.hand = hand
			m.minted++
			m.revealed = 0
			m.refresh()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

// refresh rebuilds the viewport content from the current reveal state.
func (m *peekModel) refresh() {
	var b strings.Builder
	for i := 0; i < m.hand.Len(); i++ {
		if i < m.revealed {
			element, ok := m.hand.Choose(i)
			if !ok {
				fmt.Fprintf(&b, "%3d  %s\n", i, peekHiddenStyle.Render("(absent)"))
				continue
			}
			fmt.Fprintf(&b, "%3d  %s\n", i, peekRevealedStyle.Render(*element))
		} else {
			fmt.Fprintf(&b, "%3d  %s\n", i, peekHiddenStyle.Render("▒▒▒▒▒"))
		}
	}
	m.vp.SetContent(b.String())
}

// View implements tea.Model.
func (m *peekModel) View() string {
	if !m.initialized {
		return "loading..."
	}

	title := peekTitleStyle.Render(fmt.Sprintf(" hand %d · revealed %d/%d ",
		m.minted+1, m.revealed, m.hand.Len()))
	help := peekHelpStyle.Render("space/enter: reveal · m: mint fresh hand · q: quit")

	return lipgloss.JoinVertical(lipgloss.Left, title, m.vp.View(), help)
}
