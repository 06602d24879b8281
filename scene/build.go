package scene

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/OpticalFlyer/hud/config"
	"github.com/OpticalFlyer/hud/ui"
)

var (
	ErrUnknownKind   = errors.New("unknown widget kind")
	ErrUnknownAction = errors.New("unknown action")
	ErrUnknownTarget = errors.New("unknown action target")
	ErrDuplicateID   = errors.New("duplicate widget id")
	ErrNotClickable  = errors.New("widget cannot carry actions")
	ErrBadTarget     = errors.New("target does not support action")
)

// SoundPlayer plays a sound by asset id.
type SoundPlayer interface {
	Play(id string) error
}

// Env holds what Build needs to construct and register widgets.
type Env struct {
	Registry *ui.Registry
	Renderer ui.Renderer
	Assets   ui.Assets
	// Theme supplies button styles. Nil means config.DefaultTheme.
	Theme *config.Theme
	// Sounds is optional. Play actions are skipped without it.
	Sounds SoundPlayer
}

// Built is the result of Build.
type Built struct {
	widgets map[string]ui.Widget
	ids     []string
}

// Widget returns the widget built for id.
func (b *Built) Widget(id string) (ui.Widget, bool) {
	w, ok := b.widgets[id]
	return w, ok
}

// IDs returns widget ids in scene order.
func (b *Built) IDs() []string {
	return append([]string(nil), b.ids...)
}

type clickable interface {
	AddListener(fn ui.Listener) ui.ListenerHandle
}

type disableable interface {
	Disabled() bool
	SetDisabled(disabled bool)
}

// Build constructs every widget in sc, wires actions and registers the
// widgets that are not detached. Nothing is registered on error.
func Build(sc *Scene, env Env) (*Built, error) {
	if env.Theme == nil {
		env.Theme = config.DefaultTheme()
	}
	b := &Built{widgets: make(map[string]ui.Widget, len(sc.Widgets))}
	specs := make([]WidgetSpec, len(sc.Widgets))
	for i, spec := range sc.Widgets {
		if spec.ID == "" {
			spec.ID = uuid.NewString()
		}
		if _, dup := b.widgets[spec.ID]; dup {
			return nil, fmt.Errorf("%w %q", ErrDuplicateID, spec.ID)
		}
		w, err := buildWidget(spec, env)
		if err != nil {
			return nil, fmt.Errorf("widget %q: %w", spec.ID, err)
		}
		b.widgets[spec.ID] = w
		b.ids = append(b.ids, spec.ID)
		specs[i] = spec
	}

	for _, spec := range specs {
		if len(spec.Actions) == 0 {
			continue
		}
		c, ok := b.widgets[spec.ID].(clickable)
		if !ok {
			return nil, fmt.Errorf("widget %q (%s): %w", spec.ID, spec.Kind, ErrNotClickable)
		}
		for _, a := range spec.Actions {
			fn, err := b.action(spec.ID, a, env)
			if err != nil {
				return nil, fmt.Errorf("widget %q: %w", spec.ID, err)
			}
			c.AddListener(fn)
		}
	}

	for _, spec := range specs {
		if !spec.Detached {
			env.Registry.Add(b.widgets[spec.ID])
		}
	}
	slog.Debug("scene built", "widgets", len(specs))
	return b, nil
}

func buildWidget(spec WidgetSpec, env Env) (ui.Widget, error) {
	pos := ui.Vector2{X: spec.Position[0], Y: spec.Position[1]}
	size := ui.Vector2{X: spec.Size[0], Y: spec.Size[1]}

	var w interface {
		ui.Widget
		SetVisible(bool)
		SetDrawLayer(int)
	}
	switch spec.Kind {
	case "button":
		settings, err := env.Theme.ButtonSettings(spec.Style, spec.Text)
		if err != nil {
			return nil, err
		}
		btn, err := ui.NewButton(pos, size, settings, env.Renderer, env.Assets)
		if err != nil {
			return nil, err
		}
		btn.SetDisabled(spec.Disabled)
		w = btn
	case "toggle":
		settings, err := env.Theme.ButtonSettings(spec.Style, "")
		if err != nil {
			return nil, err
		}
		tg, err := ui.NewToggle(pos, size, spec.Text, settings, env.Renderer, env.Assets)
		if err != nil {
			return nil, err
		}
		tg.SetDisabled(spec.Disabled)
		w = tg
	case "image":
		img, err := ui.NewImageWidget(pos, size, spec.Texture, env.Assets)
		if err != nil {
			return nil, err
		}
		w = img
	case "panel":
		w = ui.NewPanel(pos, size, spec.Text)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownKind, spec.Kind)
	}
	if spec.Layer != nil {
		w.SetDrawLayer(*spec.Layer)
	}
	w.SetVisible(!spec.Hidden)
	return w, nil
}

var knownActions = map[string]bool{
	"log": true, "play": true, "add": true, "remove": true,
	"toggle_visible": true, "show": true, "hide": true,
	"enable": true, "disable": true, "toggle_enabled": true,
}

func (b *Built) action(owner string, a Action, env Env) (ui.Listener, error) {
	if !knownActions[a.Do] {
		return nil, fmt.Errorf("%w %q", ErrUnknownAction, a.Do)
	}
	switch a.Do {
	case "log":
		msg := a.Message
		return func() { slog.Info(msg, "widget", owner) }, nil
	case "play":
		sound := a.Sound
		return func() {
			if env.Sounds == nil {
				slog.Debug("no sound player", "sound", sound)
				return
			}
			if err := env.Sounds.Play(sound); err != nil {
				slog.Warn("failed to play sound", "sound", sound, "err", err)
			}
		}, nil
	}

	target, ok := b.widgets[a.Target]
	if !ok {
		return nil, fmt.Errorf("%s: %w %q", a.Do, ErrUnknownTarget, a.Target)
	}
	reg := env.Registry
	switch a.Do {
	case "add":
		return func() { reg.Add(target) }, nil
	case "remove":
		return func() { reg.Remove(target) }, nil
	case "toggle_visible", "show", "hide":
		v, ok := target.(interface{ SetVisible(bool) })
		if !ok {
			return nil, fmt.Errorf("%s %q: %w", a.Do, a.Target, ErrBadTarget)
		}
		switch a.Do {
		case "show":
			return func() { v.SetVisible(true) }, nil
		case "hide":
			return func() { v.SetVisible(false) }, nil
		}
		return func() { v.SetVisible(!target.Visible()) }, nil
	case "enable", "disable", "toggle_enabled":
		d, ok := target.(disableable)
		if !ok {
			return nil, fmt.Errorf("%s %q: %w", a.Do, a.Target, ErrBadTarget)
		}
		switch a.Do {
		case "enable":
			return func() { d.SetDisabled(false) }, nil
		case "disable":
			return func() { d.SetDisabled(true) }, nil
		}
		return func() { d.SetDisabled(!d.Disabled()) }, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownAction, a.Do)
}
