package main

import (
	"fmt"
	"image/color"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/OpticalFlyer/hud/assets"
	"github.com/OpticalFlyer/hud/audio"
	"github.com/OpticalFlyer/hud/config"
	"github.com/OpticalFlyer/hud/gfx"
	"github.com/OpticalFlyer/hud/input"
	"github.com/OpticalFlyer/hud/scene"
	"github.com/OpticalFlyer/hud/ui"
)

// HUD implements ebiten.Game interface.
type HUD struct {
	registry  *ui.Registry
	renderer  *gfx.Renderer
	pointer   *input.Pointer
	debugMode bool

	lastPointer ui.PointerState
}

func (h *HUD) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		h.debugMode = !h.debugMode
	}

	h.lastPointer = h.pointer.Read()
	h.registry.UpdateAll(h.lastPointer)
	return nil
}

func (h *HUD) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{30, 30, 30, 255})

	h.renderer.SetTarget(screen)
	h.registry.RenderAll(h.renderer)

	// Draw debug overlay if enabled
	if h.debugMode {
		redColor := color.RGBA{R: 255, A: 255}
		strokeWidth := float32(1.0)

		// Draw crosshair at the pointer
		px := float32(h.lastPointer.Position.X)
		py := float32(h.lastPointer.Position.Y)
		crosshairSize := float32(10.0)

		vector.StrokeLine(screen,
			px-crosshairSize, py,
			px+crosshairSize, py,
			strokeWidth, redColor, false)
		vector.StrokeLine(screen,
			px, py-crosshairSize,
			px, py+crosshairSize,
			strokeWidth, redColor, false)

		front := "none"
		if w := h.registry.FrontMost(h.lastPointer.Position); w != nil {
			front = fmt.Sprintf("%T %v", w, w.Bounds())
		}
		debugText := fmt.Sprintf("FPS: %.1f\nWidgets: %d\nPointer: %.0f,%.0f down=%t\nFront: %s",
			ebiten.ActualFPS(), h.registry.Len(),
			h.lastPointer.Position.X, h.lastPointer.Position.Y, h.lastPointer.Down, front)
		ebitenutil.DebugPrint(screen, debugText)
	}
}

func (h *HUD) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Log.SlogLevel()})))

	lib := assets.NewLibrary()
	if err := lib.Load(cfg.Assets.Dir); err != nil {
		log.Fatal(err)
	}
	defer lib.Unload()
	slog.Info("assets loaded", "dir", cfg.Assets.Dir, "count", lib.Len())

	theme, err := config.LoadTheme(cfg.Theme.Path)
	if err != nil {
		log.Fatal(err)
	}
	sc, err := scene.Load(cfg.Scene.Path)
	if err != nil {
		log.Fatal(err)
	}

	renderer, err := gfx.NewRenderer()
	if err != nil {
		log.Fatal(err)
	}
	app := &HUD{
		registry: ui.NewRegistry(),
		renderer: renderer,
		pointer:  input.NewPointer(),
	}

	env := scene.Env{
		Registry: app.registry,
		Renderer: renderer,
		Assets:   gfx.Assets{Library: lib},
		Theme:    theme,
	}
	if cfg.Audio.Enabled {
		player := audio.NewPlayer(lib)
		if err := player.Initialize(); err != nil {
			// Non-fatal, the scene runs without sound
			slog.Warn("audio disabled", "err", err)
		}
		defer player.Cleanup()
		env.Sounds = player
	}
	if _, err := scene.Build(sc, env); err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TPS)
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
