package assets

import (
	"fmt"
	"image"
	_ "image/png" // png decoder for Images
	"os"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// DefaultLoaders returns the file loaders used by NewLibrary.
func DefaultLoaders() map[Kind]Loader {
	return map[Kind]Loader{
		KindTexture: {Ext: ".png", Load: LoadTexture},
		KindImage:   {Ext: ".png", Load: LoadImage},
		KindSound:   {Ext: ".wav", Load: LoadSound},
		KindFont:    {Ext: ".ttf", Load: LoadFont},
	}
}

// LoadTexture uploads an image file as an ebiten texture.
func LoadTexture(path string) (Resource, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return Resource{}, err
	}
	return TextureResource(img), nil
}

// LoadImage decodes an image file into memory without uploading it.
func LoadImage(path string) (Resource, error) {
	f, err := os.Open(path)
	if err != nil {
		return Resource{}, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return Resource{}, fmt.Errorf("decoding image: %w", err)
	}
	return ImageResource(img), nil
}

// LoadSound decodes a WAV file fully into a buffer.
func LoadSound(path string) (Resource, error) {
	f, err := os.Open(path)
	if err != nil {
		return Resource{}, err
	}
	// wav.Decode takes ownership of f; closing the streamer closes it.
	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return Resource{}, fmt.Errorf("decoding wav: %w", err)
	}
	defer streamer.Close()

	buf := beep.NewBuffer(format)
	buf.Append(streamer)
	if err := streamer.Err(); err != nil {
		return Resource{}, fmt.Errorf("reading wav: %w", err)
	}
	return SoundResource(buf), nil
}

// LoadFont parses a TrueType/OpenType font file.
func LoadFont(path string) (Resource, error) {
	f, err := os.Open(path)
	if err != nil {
		return Resource{}, err
	}
	defer f.Close()

	src, err := text.NewGoTextFaceSource(f)
	if err != nil {
		return Resource{}, fmt.Errorf("parsing font: %w", err)
	}
	return FontResource(src), nil
}
