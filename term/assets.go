package term

import (
	"github.com/OpticalFlyer/hud/assets"
	"github.com/OpticalFlyer/hud/ui"
)

var _ ui.Assets = Assets{}

// Assets exposes an asset library to widgets drawn by Renderer. Textures
// are served from Images when loaded there, since GPU textures cannot be
// sampled from a terminal.
type Assets struct {
	Library *assets.Library
}

// Font checks that id names a font. The terminal font is always used.
func (a Assets) Font(id string) (ui.Font, error) {
	if _, err := a.Library.Font(id); err != nil {
		return nil, err
	}
	return nil, nil
}

func (a Assets) Texture(id string) (ui.Texture, error) {
	if img, err := a.Library.Image(id); err == nil {
		return img, nil
	}
	if _, err := a.Library.Texture(id); err != nil {
		return nil, err
	}
	return id, nil
}
