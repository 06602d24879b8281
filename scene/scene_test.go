package scene

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpticalFlyer/hud/ui"
)

type nopRenderer struct{}

func (nopRenderer) DrawRoundedRect(ui.Rectangle, float64, color.Color)                 {}
func (nopRenderer) DrawText(ui.Font, string, ui.Vector2, float64, float64, color.Color) {}
func (nopRenderer) DrawTexture(ui.Texture, ui.Rectangle, color.Color)                  {}
func (nopRenderer) DefaultFont() ui.Font                                               { return "default" }
func (nopRenderer) MeasureText(_ ui.Font, text string, size, _ float64) ui.Vector2 {
	return ui.Vector2{X: float64(len(text)) * size / 2, Y: size}
}

var errMissing = errors.New("missing")

type mapAssets map[string]ui.Texture

func (mapAssets) Font(id string) (ui.Font, error) { return nil, errMissing }
func (m mapAssets) Texture(id string) (ui.Texture, error) {
	if t, ok := m[id]; ok {
		return t, nil
	}
	return nil, errMissing
}

type recordingPlayer struct {
	played []string
	err    error
}

func (p *recordingPlayer) Play(id string) error {
	p.played = append(p.played, id)
	return p.err
}

func newEnv() Env {
	return Env{
		Registry: ui.NewRegistry(),
		Renderer: nopRenderer{},
		Assets:   mapAssets{"Textures/logo": "logo"},
	}
}

// click presses and releases the pointer over w.
func click(reg *ui.Registry, w ui.Widget) {
	b := w.Bounds()
	p := ui.Vector2{X: b.X + b.Width/2, Y: b.Y + b.Height/2}
	reg.UpdateAll(ui.PointerState{Position: p})
	reg.UpdateAll(ui.PointerState{Position: p, Down: true})
	reg.UpdateAll(ui.PointerState{Position: p})
}

func build(t *testing.T, env Env, doc string) *Built {
	t.Helper()
	sc, err := Parse([]byte(doc))
	require.NoError(t, err)
	b, err := Build(sc, env)
	require.NoError(t, err)
	return b
}

func widget(t *testing.T, b *Built, id string) ui.Widget {
	t.Helper()
	w, ok := b.Widget(id)
	require.True(t, ok, "widget %q", id)
	return w
}

func TestParse(t *testing.T) {
	sc, err := Parse([]byte(`
widgets:
  - id: ok
    kind: button
    text: OK
    position: [1, 2]
    size: [30, 40]
    layer: 7
    actions:
      - do: log
        message: hi
`))
	require.NoError(t, err)
	require.Len(t, sc.Widgets, 1)
	w := sc.Widgets[0]
	assert.Equal(t, "ok", w.ID)
	assert.Equal(t, [2]float64{1, 2}, w.Position)
	assert.Equal(t, [2]float64{30, 40}, w.Size)
	require.NotNil(t, w.Layer)
	assert.Equal(t, 7, *w.Layer)
	assert.Equal(t, []Action{{Do: "log", Message: "hi"}}, w.Actions)
}

func TestParseEmptyAndUnknownFields(t *testing.T) {
	sc, err := Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, sc.Widgets)

	_, err = Parse([]byte("widgets:\n  - kind: button\n    colour: red\n"))
	require.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte("widgets:\n  - kind: panel\n"), 0o644))

	sc, err := Load(path)
	require.NoError(t, err)
	require.Len(t, sc.Widgets, 1)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestDefaultSceneBuilds(t *testing.T) {
	sc, err := Load("")
	require.NoError(t, err)

	env := newEnv()
	b, err := Build(sc, env)
	require.NoError(t, err)

	spawned := widget(t, b, "spawned")
	assert.False(t, env.Registry.Contains(spawned), "detached widget registered")
	assert.Equal(t, len(sc.Widgets)-1, env.Registry.Len())
}

func TestBuildGeneratesIDs(t *testing.T) {
	b := build(t, newEnv(), `
widgets:
  - kind: panel
  - kind: panel
`)
	ids := b.IDs()
	require.Len(t, ids, 2)
	assert.NotEqual(t, ids[0], ids[1])
	for _, id := range ids {
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
	}
}

func TestBuildKinds(t *testing.T) {
	env := newEnv()
	b := build(t, env, `
widgets:
  - {id: b, kind: button, text: Go, size: [100, 20], disabled: true}
  - {id: t, kind: toggle, text: Sound, size: [20, 20]}
  - {id: i, kind: image, texture: Textures/logo, size: [10, 10], layer: 3}
  - {id: p, kind: panel, text: Title, size: [50, 50], hidden: true}
`)
	btn, ok := widget(t, b, "b").(*ui.Button)
	require.True(t, ok)
	assert.Equal(t, "Go", btn.Text())
	assert.Equal(t, ui.StateDisabled, btn.State())
	assert.Equal(t, ui.ButtonDrawLayer, btn.DrawLayer())

	_, ok = widget(t, b, "t").(*ui.Toggle)
	assert.True(t, ok)

	img, ok := widget(t, b, "i").(*ui.ImageWidget)
	require.True(t, ok)
	assert.Equal(t, 3, img.DrawLayer())

	p, ok := widget(t, b, "p").(*ui.Panel)
	require.True(t, ok)
	assert.False(t, p.Visible())
	assert.Equal(t, "Title", p.Title)

	assert.Equal(t, 4, env.Registry.Len())
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"unknown kind", "widgets:\n  - {kind: slider}\n", ErrUnknownKind},
		{"duplicate id", "widgets:\n  - {id: a, kind: panel}\n  - {id: a, kind: panel}\n", ErrDuplicateID},
		{"unknown action", "widgets:\n  - {kind: button, actions: [{do: explode}]}\n", ErrUnknownAction},
		{"unknown target", "widgets:\n  - {kind: button, actions: [{do: hide, target: ghost}]}\n", ErrUnknownTarget},
		{"actions on panel", "widgets:\n  - {kind: panel, actions: [{do: log}]}\n", ErrNotClickable},
		{"disable a panel", "widgets:\n  - {id: p, kind: panel}\n  - {kind: button, actions: [{do: disable, target: p}]}\n", ErrBadTarget},
		{"missing texture", "widgets:\n  - {kind: image, texture: nope}\n", errMissing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc, err := Parse([]byte(tt.doc))
			require.NoError(t, err)

			env := newEnv()
			_, err = Build(sc, env)
			require.ErrorIs(t, err, tt.want)
			assert.Zero(t, env.Registry.Len(), "registered widgets after failed build")
		})
	}
}

func TestToggleVisibleAction(t *testing.T) {
	env := newEnv()
	b := build(t, env, `
widgets:
  - {id: panel, kind: panel, size: [100, 100], position: [0, 100]}
  - id: btn
    kind: button
    size: [100, 50]
    actions:
      - {do: toggle_visible, target: panel}
`)
	panel := widget(t, b, "panel")
	btn := widget(t, b, "btn")

	click(env.Registry, btn)
	assert.False(t, panel.Visible())
	click(env.Registry, btn)
	assert.True(t, panel.Visible())
}

func TestShowHideEnableDisable(t *testing.T) {
	env := newEnv()
	b := build(t, env, `
widgets:
  - {id: target, kind: button, position: [0, 200], size: [50, 50]}
  - id: off
    kind: button
    size: [50, 50]
    actions: [{do: hide, target: target}, {do: disable, target: target}]
  - id: on
    kind: button
    position: [100, 0]
    size: [50, 50]
    actions: [{do: show, target: target}, {do: enable, target: target}]
`)
	target := widget(t, b, "target").(*ui.Button)

	click(env.Registry, widget(t, b, "off"))
	assert.False(t, target.Visible())
	assert.True(t, target.Disabled())

	click(env.Registry, widget(t, b, "on"))
	assert.True(t, target.Visible())
	assert.False(t, target.Disabled())
	assert.Equal(t, ui.StateNormal, target.State())
}

func TestToggleEnabledAction(t *testing.T) {
	env := newEnv()
	b := build(t, env, `
widgets:
  - {id: target, kind: button, position: [0, 200], size: [50, 50]}
  - id: lock
    kind: toggle
    size: [20, 20]
    actions: [{do: toggle_enabled, target: target}]
`)
	target := widget(t, b, "target").(*ui.Button)
	lock := widget(t, b, "lock").(*ui.Toggle)

	click(env.Registry, lock)
	assert.True(t, lock.On())
	assert.True(t, target.Disabled())

	click(env.Registry, lock)
	assert.False(t, lock.On())
	assert.False(t, target.Disabled())
}

func TestAddRemoveActions(t *testing.T) {
	env := newEnv()
	b := build(t, env, `
widgets:
  - id: spawn
    kind: button
    size: [50, 50]
    actions: [{do: add, target: child}]
  - id: child
    kind: button
    position: [0, 100]
    size: [50, 50]
    detached: true
    actions: [{do: remove, target: child}]
`)
	child := widget(t, b, "child")
	require.False(t, env.Registry.Contains(child))

	click(env.Registry, widget(t, b, "spawn"))
	require.True(t, env.Registry.Contains(child))

	// the child removes itself from inside its own dispatch
	click(env.Registry, child)
	assert.False(t, env.Registry.Contains(child))
	assert.Equal(t, 1, env.Registry.Len())
}

func TestPlayAction(t *testing.T) {
	doc := `
widgets:
  - id: beep
    kind: button
    size: [50, 50]
    actions: [{do: play, sound: Sounds/click}, {do: log, message: beeped}]
`
	t.Run("with player", func(t *testing.T) {
		player := &recordingPlayer{err: errMissing}
		env := newEnv()
		env.Sounds = player
		b := build(t, env, doc)

		click(env.Registry, widget(t, b, "beep"))
		assert.Equal(t, []string{"Sounds/click"}, player.played)
	})

	t.Run("without player", func(t *testing.T) {
		env := newEnv()
		b := build(t, env, doc)
		assert.NotPanics(t, func() { click(env.Registry, widget(t, b, "beep")) })
	})
}
