package tui

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"golang.org/x/image/draw"

	"github.com/vovakirdan/pixel-arcade/internal/core"
	"github.com/vovakirdan/pixel-arcade/internal/registry"
	"github.com/vovakirdan/pixel-arcade/internal/storage"
)

// screenshotScale is the nearest-neighbor upscale applied to saved screenshots.
const screenshotScale = 4

// Model is the Bubble Tea model for running one arcade game.
// It owns the pixel buffer and re-wraps a core.Screen around it every frame.
type Model struct {
	game       registry.Game
	store      *storage.Store
	config     core.RuntimeConfig
	pix        []byte
	keys       KeyMap
	help       help.Model
	renderer   *lipgloss.Renderer
	logger     *log.Logger
	player     string
	inputFrame core.InputFrame
	gameState  core.GameState
	status     string // Last screenshot result, shown in the footer
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
// cfg.ScreenW and cfg.ScreenH are the framebuffer size in pixels.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		store:      store,
		config:     cfg,
		pix:        make([]byte, cfg.BufferSize()),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		renderer:   lipgloss.DefaultRenderer(),
		logger:     log.Default(),
		player:     defaultPlayer(),
		inputFrame: core.NewInputFrame(),
	}
}

// WithPlayer sets the name scores are saved under.
func (m Model) WithPlayer(name string) Model {
	if name != "" {
		m.player = name
	}
	return m
}

// WithRenderer sets the lipgloss renderer used for output.
func (m Model) WithRenderer(r *lipgloss.Renderer) Model {
	if r != nil {
		m.renderer = r
	}
	return m
}

// WithLogger sets the logger used for storage and screenshot failures.
func (m Model) WithLogger(l *log.Logger) Model {
	if l != nil {
		m.logger = l
	}
	return m
}

func defaultPlayer() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records the action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	if key.Matches(msg, m.keys.Screenshot) {
		m.status = m.saveScreenshot()
	}
	return m, nil
}

// handleResize reallocates the buffer for the new terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	w, h := PixelSize(msg.Width, msg.Height)
	if w == m.config.ScreenW && h == m.config.ScreenH {
		return m, nil
	}

	m.config.ScreenW = w
	m.config.ScreenH = h
	m.pix = make([]byte, m.config.BufferSize())
	m.help.Width = msg.Width

	// Resizing restarts a running game; a finished one keeps its final frame
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m = m.step()
	return m, tickCmd(m.config.TickRate)
}

// step runs one simulation tick with the input gathered since the last one.
func (m Model) step() Model {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		return m
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved && m.gameState.Score > 0 {
		if m.store != nil {
			if _, err := m.store.SaveScore(m.game.ID(), m.player, m.gameState.Score); err != nil {
				m.logger.Warn("could not save score", "game", m.game.ID(), "error", err)
			}
		}
		m.scoreSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()
	return m
}

// screen wraps the model's buffer for one frame.
func (m Model) screen() *core.Screen {
	return core.Wrap(m.pix, m.config.ScreenW, m.config.ScreenH, core.Depth)
}

// saveScreenshot renders the current frame and writes it to
// ~/.arcade/screenshots. It returns a status line for the footer.
func (m Model) saveScreenshot() string {
	m.game.Render(m.screen())

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return "screenshot failed"
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	name := fmt.Sprintf("%s_%s.png", m.game.ID(), time.Now().Format("20060102_150405"))

	path, err := SaveScreenshot(dir, name, m.screen(), screenshotScale)
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return "screenshot failed"
	}
	return "saved " + path
}

// SaveScreenshot writes the screen as a PNG upscaled by scale to dir/name
// and returns the file path.
func SaveScreenshot(dir, name string, s *core.Screen, scale int) (string, error) {
	if scale < 1 {
		scale = 1
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	src := s.Image()
	dst := image.NewNRGBA(image.Rect(0, 0, s.Width()*scale, s.Height()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, dst); err != nil {
		return "", fmt.Errorf("tui: cannot encode screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen())
	frame := RenderFrameWith(m.renderer, m.pix, m.config.ScreenW, m.config.ScreenH)

	footer := m.help.View(m.keys)
	if m.status != "" {
		footer = m.status
	}
	return frame + "\n" + footer
}

// Run starts the Bubble Tea program for game on the local terminal.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg).WithLogger(logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
