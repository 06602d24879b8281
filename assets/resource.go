package assets

import (
	"image"

	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Kind tags the variant held by a Resource.
type Kind int

const (
	KindTexture Kind = iota
	KindImage
	KindSound
	KindFont
)

func (k Kind) String() string {
	switch k {
	case KindTexture:
		return "texture"
	case KindImage:
		return "image"
	case KindSound:
		return "sound"
	case KindFont:
		return "font"
	default:
		return "unknown"
	}
}

// Folder is the directory under the asset root holding resources of this kind.
// It is also the id prefix.
func (k Kind) Folder() string {
	switch k {
	case KindTexture:
		return "Textures"
	case KindImage:
		return "Images"
	case KindSound:
		return "Sounds"
	case KindFont:
		return "Fonts"
	default:
		return ""
	}
}

// Resource is one loaded asset. Build it with the Kind-specific constructors.
type Resource struct {
	kind  Kind
	value any
}

func TextureResource(img *ebiten.Image) Resource {
	return Resource{kind: KindTexture, value: img}
}

func ImageResource(img image.Image) Resource {
	return Resource{kind: KindImage, value: img}
}

func SoundResource(buf *beep.Buffer) Resource {
	return Resource{kind: KindSound, value: buf}
}

func FontResource(src *text.GoTextFaceSource) Resource {
	return Resource{kind: KindFont, value: src}
}

// Kind returns the variant tag.
func (r Resource) Kind() Kind {
	return r.kind
}

// Value returns the wrapped handle.
func (r Resource) Value() any {
	return r.value
}
