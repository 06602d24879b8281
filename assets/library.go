// Package assets loads textures, images, sounds and fonts from an asset
// folder and hands them out by id.
//
// Ids are the kind folder followed by the file path relative to it, without
// extension and with forward slashes: Assets/Fonts/ui/mono.ttf is "Fonts/ui/mono".
package assets

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strings"

	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// LoadFunc decodes the file at path into a resource.
type LoadFunc func(path string) (Resource, error)

// Loader is how files of one kind are recognised and decoded.
type Loader struct {
	Ext  string
	Load LoadFunc
}

// Library holds loaded resources keyed by id.
type Library struct {
	resources map[string]Resource
	loaders   map[Kind]Loader
}

// Option configures a Library.
type Option func(*Library)

// WithLoader replaces the loader used for kind.
func WithLoader(kind Kind, l Loader) Option {
	return func(lib *Library) {
		lib.loaders[kind] = l
	}
}

// NewLibrary creates an empty library using the default file loaders.
func NewLibrary(opts ...Option) *Library {
	lib := &Library{
		resources: make(map[string]Resource),
		loaders:   DefaultLoaders(),
	}
	for _, opt := range opts {
		opt(lib)
	}
	return lib
}

var loadOrder = []Kind{KindTexture, KindImage, KindSound, KindFont}

// Load reads every recognised file under root/<Folder> for each kind.
// Missing kind folders are skipped. Resources already present under the
// same id are replaced.
func (l *Library) Load(root string) error {
	for _, kind := range loadOrder {
		loader, ok := l.loaders[kind]
		if !ok {
			continue
		}
		if err := l.loadKind(root, kind, loader); err != nil {
			return err
		}
	}
	return nil
}

func (l *Library) loadKind(root string, kind Kind, loader Loader) error {
	dir := filepath.Join(root, kind.Folder())
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), loader.Ext) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		id := kind.Folder() + "/" + filepath.ToSlash(strings.TrimSuffix(rel, filepath.Ext(rel)))

		res, err := loader.Load(path)
		if err != nil {
			return &LoadError{Path: path, Kind: kind, Err: err}
		}
		if res.kind != kind {
			return &LoadError{Path: path, Kind: kind, Err: fmt.Errorf("loader produced a %s", res.kind)}
		}
		l.Put(id, res)
		slog.Debug("assets: loaded", "id", id, "kind", kind)
		return nil
	})
}

// Put stores res under id, replacing any previous resource.
func (l *Library) Put(id string, res Resource) {
	l.resources[id] = res
}

// Get returns the resource stored under id.
func (l *Library) Get(id string) (Resource, error) {
	res, ok := l.resources[id]
	if !ok {
		return Resource{}, &NotFoundError{ID: id}
	}
	return res, nil
}

// Len returns the number of loaded resources.
func (l *Library) Len() int {
	return len(l.resources)
}

// IDs returns every loaded id, sorted.
func (l *Library) IDs() []string {
	ids := make([]string, 0, len(l.resources))
	for id := range l.resources {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (l *Library) lookup(id string, want Kind) (any, error) {
	res, err := l.Get(id)
	if err != nil {
		return nil, err
	}
	if res.kind != want {
		return nil, &TypeMismatchError{ID: id, Want: want, Got: res.kind}
	}
	return res.value, nil
}

// Texture returns the GPU texture stored under id.
func (l *Library) Texture(id string) (*ebiten.Image, error) {
	v, err := l.lookup(id, KindTexture)
	if err != nil {
		return nil, err
	}
	res, _ := v.(*ebiten.Image)
	return res, nil
}

// Image returns the CPU-side image stored under id.
func (l *Library) Image(id string) (image.Image, error) {
	v, err := l.lookup(id, KindImage)
	if err != nil {
		return nil, err
	}
	res, _ := v.(image.Image)
	return res, nil
}

// Sound returns the decoded sound stored under id.
func (l *Library) Sound(id string) (*beep.Buffer, error) {
	v, err := l.lookup(id, KindSound)
	if err != nil {
		return nil, err
	}
	res, _ := v.(*beep.Buffer)
	return res, nil
}

// Font returns the font source stored under id.
func (l *Library) Font(id string) (*text.GoTextFaceSource, error) {
	v, err := l.lookup(id, KindFont)
	if err != nil {
		return nil, err
	}
	res, _ := v.(*text.GoTextFaceSource)
	return res, nil
}

// Resolve returns the value under id as a T, whatever its kind.
func Resolve[T any](l *Library, id string) (T, error) {
	var zero T
	res, err := l.Get(id)
	if err != nil {
		return zero, err
	}
	v, ok := res.value.(T)
	if !ok {
		return zero, fmt.Errorf("asset %q holds a %s, not a %v: %w", id, res.kind, reflect.TypeFor[T](), ErrTypeMismatch)
	}
	return v, nil
}

// Unload releases GPU textures and forgets every resource.
func (l *Library) Unload() {
	for id, res := range l.resources {
		if img, ok := res.value.(*ebiten.Image); ok && img != nil {
			img.Deallocate()
		}
		delete(l.resources, id)
	}
}
