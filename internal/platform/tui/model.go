package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/breakbricks/breakbricks/internal/breakout"
	"github.com/breakbricks/breakbricks/internal/core"
	"github.com/breakbricks/breakbricks/internal/scores"
)

// noticeTicks is how long a submission notice stays visible (3s at 60).
const noticeTicks = 180

// Model is the Bubble Tea model driving the game. It owns the tick
// cadence, key mapping, and score submission; the game itself stays pure.
type Model struct {
	game       *breakout.Game
	screen     *core.Screen
	submitter  *scores.Async
	config     core.RuntimeConfig
	keys       *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	fps        *core.FPSMeter
	notice     string
	noticeLeft int
	quitting   bool
}

// NewModel creates a model for the given game. submitter may be nil for
// play without score submission.
func NewModel(game *breakout.Game, submitter *scores.Async, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		submitter:  submitter,
		config:     cfg,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		fps:        core.NewFPSMeter(),
	}
}

// Init initializes the model and starts the tick loop.
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
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input. During name entry printable keys
// are text; everywhere else they map to actions.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var quit bool
	if m.gameState.Phase == breakout.PhaseNameEntry {
		quit = m.keys.MapTextKey(msg, &m.inputFrame)
	} else {
		quit = m.keys.MapKeyToFrame(msg, &m.inputFrame)
	}

	if quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. The game re-derives its
// field from the new size; the unlocked set survives the reset.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Reset(m.config)
	return m, nil
}

// handleTick runs one simulation tick.
func (m Model) handleTick(at time.Time) (tea.Model, tea.Cmd) {
	m.fps.Tick(at)

	// Pick up finished submissions without blocking
	if m.submitter != nil {
	drain:
		for {
			select {
			case res := <-m.submitter.Results():
				if res.Err != nil {
					m.setNotice("score submit failed")
				} else {
					m.setNotice(fmt.Sprintf("score %d saved for %s", res.Score, res.Username))
				}
			default:
				break drain
			}
		}
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	for _, ev := range result.Events {
		if submit, ok := ev.(core.EventSubmitScore); ok && m.submitter != nil {
			m.submitter.Submit(submit.Username, submit.Score)
			m.setNotice("submitting score...")
		}
	}

	if m.noticeLeft > 0 {
		m.noticeLeft--
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// setNotice shows a transient message at the bottom of the screen.
func (m *Model) setNotice(text string) {
	m.notice = text
	m.noticeLeft = noticeTicks
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	// Platform overlays: submission notice and the measured frame rate.
	// Both are display-only and never feed back into the simulation.
	if m.noticeLeft > 0 {
		m.screen.DrawTextColored(1, m.screen.Height()-1, m.notice, core.ColorGray)
	}
	if fps := m.fps.FPS(); fps > 0 {
		text := fmt.Sprintf("%3.0f fps", fps)
		m.screen.DrawTextColored(m.screen.Width()-len(text)-1, m.screen.Height()-1, text, core.ColorGray)
	}

	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game *breakout.Game, submitter *scores.Async, cfg core.RuntimeConfig) error {
	model := NewModel(game, submitter, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
