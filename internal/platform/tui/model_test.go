package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/skyraid/internal/audio"
	"github.com/vovakirdan/skyraid/internal/backdrop"
	"github.com/vovakirdan/skyraid/internal/core"
	"github.com/vovakirdan/skyraid/internal/storage"
)

// scriptedGame replays a fixed list of step results.
type scriptedGame struct {
	resets int
	inputs []core.InputFrame
	script []core.StepResult
	state  core.GameState
}

func (g *scriptedGame) ID() string    { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(core.RuntimeConfig) { g.resets++ }

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in.Clone())
	if len(g.script) == 0 {
		return core.StepResult{State: g.state}
	}
	r := g.script[0]
	g.script = g.script[1:]
	g.state = r.State
	return r
}

func (g *scriptedGame) Render(dst *core.Screen) { dst.Set(0, 0, '@') }

func (g *scriptedGame) State() core.GameState { return g.state }

type recordingSink struct {
	played  []audio.Sound
	music   int
	stopped int
}

func (s *recordingSink) Play(snd audio.Sound) { s.played = append(s.played, snd) }
func (s *recordingSink) StartMusic()          { s.music++ }
func (s *recordingSink) StopMusic()           { s.stopped++ }
func (s *recordingSink) Close()               {}

type recordingResizer struct{ w, h int }

func (r *recordingResizer) Resize(w, h int) { r.w, r.h = w, h }

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 4, ScreenH: 3, TickRate: 60, Seed: 1}
}

func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model
}

func over(score int) core.StepResult {
	return core.StepResult{
		State:  core.GameState{Score: score, GameOver: true},
		Events: []core.Event{{Kind: core.EventGameOver}},
	}
}

func TestModelSavesRunOncePerGameOver(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()

	game := &scriptedGame{script: []core.StepResult{
		{State: core.GameState{Score: 100}},
		over(250),
		over(250),
		{State: core.GameState{}, Events: []core.Event{{Kind: core.EventRestart}}},
		over(75),
	}}
	m := NewModel(game, testConfig(), Options{Store: store, Player: "ace", RunID: "r1"})
	m.Init()
	assert.Equal(t, 1, game.resets)

	for range 5 {
		m = step(t, m, TickMsg{})
	}

	scores, err := store.TopScores("scripted", 10)
	require.NoError(t, err)
	require.Len(t, scores, 2)
	assert.Equal(t, 250, scores[0].Score)
	assert.Equal(t, 2, scores[0].Ticks)
	assert.Equal(t, "ace", scores[0].Player)
	assert.Equal(t, "r1", scores[0].RunID)
	assert.Equal(t, 75, scores[1].Score)
	assert.Equal(t, 1, scores[1].Ticks, "tick count restarts with the round")
}

func TestModelSkipsZeroScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()

	game := &scriptedGame{script: []core.StepResult{over(0)}}
	m := NewModel(game, testConfig(), Options{Store: store})
	m = step(t, m, TickMsg{})

	scores, _ := store.AllScores("scripted")
	assert.Empty(t, scores)
	assert.True(t, m.State().GameOver)
}

func TestModelHeldKeysReachTheGame(t *testing.T) {
	game := &scriptedGame{}
	m := NewModel(game, testConfig(), Options{HoldMs: 60_000})

	m = step(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = step(t, m, runeKey("r"))
	m = step(t, m, TickMsg{})
	m = step(t, m, TickMsg{})

	require.Len(t, game.inputs, 2)
	assert.True(t, game.inputs[0].Has(core.ActionLeft))
	assert.True(t, game.inputs[0].Has(core.ActionRestart))
	assert.True(t, game.inputs[1].Has(core.ActionLeft))
	assert.False(t, game.inputs[1].Has(core.ActionRestart))
}

func TestModelEventsPlaySounds(t *testing.T) {
	sink := &recordingSink{}
	game := &scriptedGame{script: []core.StepResult{
		{Events: []core.Event{{Kind: core.EventShot}, {Kind: core.EventEnemyDestroyed, Value: 10}}},
	}}
	m := NewModel(game, testConfig(), Options{Audio: sink})
	m.Init()
	step(t, m, TickMsg{})

	assert.Equal(t, 1, sink.music)
	assert.Equal(t, []audio.Sound{audio.SoundLaser, audio.SoundExplosion}, sink.played)
}

func TestModelResizeKeepsRound(t *testing.T) {
	game := &scriptedGame{}
	resizer := &recordingResizer{}
	m := NewModel(game, testConfig(), Options{Resizer: resizer})
	m.Init()

	m = step(t, m, tea.WindowSizeMsg{Width: 20, Height: 10})

	assert.Equal(t, 1, game.resets)
	assert.Equal(t, 20, resizer.w)
	assert.Equal(t, 10, resizer.h)
	assert.Equal(t, 20, m.screen.Width())
}

func TestModelDrawsBackdropBehindGame(t *testing.T) {
	red := core.RGB{R: 200}
	cells := make([]core.RGB, 4*3)
	for i := range cells {
		cells[i] = red
	}
	frames := make(chan backdrop.Frame, 1)
	frames <- backdrop.Frame{ID: "a", W: 4, H: 3, Cells: cells}

	game := &scriptedGame{}
	m := NewModel(game, testConfig(), Options{Frames: frames})
	m = step(t, m, TickMsg{})
	m.View()

	cell := m.screen.GetCell(0, 0)
	assert.Equal(t, '@', cell.Rune)
	assert.True(t, cell.HasBg)
	assert.Equal(t, red, cell.Bg)
	assert.Equal(t, red, m.screen.GetCell(3, 2).Bg)
}

func TestModelEmbeddedBackAfterGameOver(t *testing.T) {
	game := &scriptedGame{script: []core.StepResult{over(5)}}
	m := NewModel(game, testConfig(), Options{Embedded: true})

	m = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.BackToMenu(), "back is ignored while flying")

	m = step(t, m, TickMsg{})
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, m.BackToMenu())
	assert.Empty(t, m.View())
}

func TestModelQuit(t *testing.T) {
	sink := &recordingSink{}
	m := NewModel(&scriptedGame{}, testConfig(), Options{Audio: sink})

	next, cmd := m.Update(runeKey("q"))
	require.NotNil(t, cmd)
	assert.True(t, next.(Model).IsQuitting())
	assert.Equal(t, 1, sink.stopped)
}
