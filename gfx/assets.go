package gfx

import (
	"github.com/OpticalFlyer/hud/assets"
	"github.com/OpticalFlyer/hud/ui"
)

var _ ui.Assets = Assets{}

// Assets exposes an asset library to widgets.
type Assets struct {
	Library *assets.Library
}

func (a Assets) Font(id string) (ui.Font, error) {
	src, err := a.Library.Font(id)
	if err != nil {
		return nil, err
	}
	return src, nil
}

func (a Assets) Texture(id string) (ui.Texture, error) {
	img, err := a.Library.Texture(id)
	if err != nil {
		return nil, err
	}
	return img, nil
}
