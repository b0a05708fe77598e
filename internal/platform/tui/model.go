package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-deluxe/internal/core"
	"github.com/vovakirdan/snake-deluxe/internal/games/snake"
)

// Model is the Bubble Tea model running one snake session.
type Model struct {
	session  *snake.Session
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	loop     loop
	logger   *log.Logger
	width    int
	height   int
	quitting bool
}

// NewModel creates a model for session sized to cfg.
func NewModel(session *snake.Session, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		session: session,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:    DefaultKeyMap(),
		help:    h,
		logger:  logger,
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
	}
}

// Init shows the ready overlay; the loop is armed by the first start.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action == core.ActionNone {
		return m, nil
	}

	return m, m.loop.apply(m.session.HandleAction(action))
}

func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.loop.accept(msg) {
		return m, nil
	}

	res := m.session.Tick()
	if res.Collision != snake.CollisionNone {
		m.logger.Info("game over", "cause", res.Collision, "score", m.session.Score())
	}
	if cmd := m.loop.apply(res.Effects); cmd != nil {
		return m, cmd
	}
	return m, m.loop.next(m.session.Interval())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpView := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(m.help.View(m.keys))
	snap := m.session.Snapshot()

	// Help goes below the board only when both fit.
	_, reqH := snake.RequiredSize(snap.Grid)
	gameH := m.height - lipgloss.Height(helpView)
	if gameH < reqH {
		m.screen.Resize(m.width, m.height)
		snake.Render(snap, m.screen)
		return RenderScreen(m.screen)
	}

	m.screen.Resize(m.width, gameH)
	snake.Render(snap, m.screen)
	return RenderScreen(m.screen) + "\n" + helpView
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() {
	snake.Render(m.session.Snapshot(), m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".snake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	path := filepath.Join(dir, fmt.Sprintf("snake_%s.txt", time.Now().Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// Run starts the Bubble Tea program for session.
func Run(session *snake.Session, cfg core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(session, cfg, logger),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
