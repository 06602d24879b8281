// Command hudterm runs the widget scene in a terminal.
package main

import (
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/OpticalFlyer/hud/assets"
	"github.com/OpticalFlyer/hud/audio"
	"github.com/OpticalFlyer/hud/config"
	"github.com/OpticalFlyer/hud/scene"
	"github.com/OpticalFlyer/hud/term"
	"github.com/OpticalFlyer/hud/ui"
)

type app struct {
	screen   tcell.Screen
	registry *ui.Registry
	renderer *term.Renderer
	pointer  *term.Pointer
	sounds   *audio.Player
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// the terminal owns the screen, so logs go to a file when one is set
	logOut := os.Stderr
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		logOut = f
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: cfg.Log.SlogLevel()})))

	lib := assets.NewLibrary()
	if err := lib.Load(cfg.Assets.Dir); err != nil {
		log.Fatal(err)
	}
	defer lib.Unload()

	theme, err := config.LoadTheme(cfg.Theme.Path)
	if err != nil {
		log.Fatal(err)
	}
	sc, err := scene.Load(cfg.Scene.Path)
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	screen.EnableMouse()

	a := &app{
		screen:   screen,
		registry: ui.NewRegistry(),
		renderer: term.NewRenderer(screen, term.DefaultCellSize),
	}
	a.pointer = term.NewPointer(a.renderer)

	env := scene.Env{
		Registry: a.registry,
		Renderer: a.renderer,
		Assets:   term.Assets{Library: lib},
		Theme:    theme,
	}
	if cfg.Audio.Enabled {
		a.sounds = audio.NewPlayer(lib)
		if err := a.sounds.Initialize(); err != nil {
			// Non-fatal, the scene runs without sound
			slog.Warn("audio disabled", "err", err)
		}
		env.Sounds = a.sounds
	}
	if _, err := scene.Build(sc, env); err != nil {
		screen.Fini()
		log.Fatal(err)
	}

	a.run()
	a.cleanup()
}

func (a *app) run() {
	ticker := time.NewTicker(16 * time.Millisecond) // ~60 FPS
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- a.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !a.handleInput(ev) {
				return
			}
		case <-ticker.C:
			a.registry.UpdateAll(a.pointer.State())
			a.draw()
		}
	}
}

func (a *app) handleInput(ev tcell.Event) bool {
	if a.pointer.Handle(ev) {
		return true
	}
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
			return false
		}
	case *tcell.EventResize:
		a.screen.Sync()
	case nil:
		// screen finalized
		return false
	}
	return true
}

func (a *app) draw() {
	a.renderer.Clear()
	a.registry.RenderAll(a.renderer)
	a.screen.Show()
}

func (a *app) cleanup() {
	if a.sounds != nil {
		a.sounds.Cleanup()
	}
	a.screen.Fini()
}
