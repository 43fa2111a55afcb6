package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/layout"
)

// SetupSelection holds the user's choices before a game starts.
type SetupSelection struct {
	Difficulty config.DifficultyPreset // Empty keeps the configured move limit
	Layout     *layout.Layout          // nil means a random board
}

type setupStage int

const (
	stageDifficulty setupStage = iota
	stageLayout
)

var difficultyChoices = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
}

// SetupModel lets users pick a difficulty (moves mode) and a starting layout.
type SetupModel struct {
	stage     setupStage
	cursor    int
	askMoves  bool
	layouts   []layout.Layout
	width     int
	height    int
	keyMapper *KeyMapper
	selection SetupSelection
	done      bool
	quitting  bool
	back      bool
}

// NewSetupModel creates a setup model. askMoves enables the difficulty stage;
// the layout stage is shown only when layouts is non-empty.
func NewSetupModel(askMoves bool, layouts []layout.Layout, width, height int) SetupModel {
	m := SetupModel{
		askMoves:  askMoves,
		layouts:   layouts,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
	switch {
	case askMoves:
		m.stage = stageDifficulty
		m.cursor = 1 // normal
	case len(layouts) > 0:
		m.stage = stageLayout
	default:
		m.done = true
	}
	return m
}

// Init initializes the model.
func (m SetupModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// options returns the number of entries on the current stage.
func (m SetupModel) options() int {
	if m.stage == stageDifficulty {
		return len(difficultyChoices)
	}
	return len(m.layouts) + 1 // random board first
}

func (m SetupModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < m.options()-1 {
			m.cursor++
		}
	case MenuActionSelect:
		return m.choose()
	case MenuActionBack:
		if m.stage == stageLayout && m.askMoves {
			m.stage = stageDifficulty
			m.cursor = 1
			return m, nil
		}
		m.back = true
		return m, tea.Quit
	}
	return m, nil
}

func (m SetupModel) choose() (tea.Model, tea.Cmd) {
	if m.stage == stageDifficulty {
		m.selection.Difficulty = difficultyChoices[m.cursor]
		if len(m.layouts) > 0 {
			m.stage = stageLayout
			m.cursor = 0
			return m, nil
		}
	} else if m.cursor > 0 {
		l := m.layouts[m.cursor-1]
		m.selection.Layout = &l
	}
	m.done = true
	return m, tea.Quit
}

// View renders the current stage.
func (m SetupModel) View() string {
	if m.quitting || m.back || m.done {
		return ""
	}

	var b strings.Builder
	var lines []string

	b.WriteString("\n")
	if m.stage == stageDifficulty {
		b.WriteString(centerText("DIFFICULTY", m.width))
		for _, d := range difficultyChoices {
			lines = append(lines, fmt.Sprintf("%-8s %2d moves", strings.ToUpper(string(d[:1]))+string(d[1:]), config.MoveLimitForPreset(d)))
		}
	} else {
		b.WriteString(centerText("STARTING BOARD", m.width))
		lines = append(lines, "Random board")
		for _, l := range m.layouts {
			lines = append(lines, l.Name)
		}
	}
	b.WriteString("\n\n")

	for i, line := range lines {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if the user left without choosing.
func (m SetupModel) Selected() *SetupSelection {
	if !m.done {
		return nil
	}
	return &m.selection
}

// RunSetup asks for difficulty and layout. It returns nil if the user backed
// out or quit, and skips the screen entirely when there is nothing to ask.
func RunSetup(askMoves bool, layouts []layout.Layout, cfg core.RuntimeConfig) (*SetupSelection, error) {
	model := NewSetupModel(askMoves, layouts, cfg.ScreenW, cfg.ScreenH)
	if model.done {
		return model.Selected(), nil
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(SetupModel)
	if !ok {
		return nil, nil
	}
	return m.Selected(), nil
}
