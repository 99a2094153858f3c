// Package assets provides the texture registry: symbolic texture ids
// resolved to drawable images. The registry is an explicit object
// constructed at startup and passed into scene construction, never a
// global.
package assets

import (
	"bytes"
	"image"
	_ "image/png"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// Registry maps symbolic texture ids to loaded images.
type Registry struct {
	images map[string]*ebiten.Image
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{images: make(map[string]*ebiten.Image)}
}

// LoadAll loads every id -> path entry from the filesystem. A missing
// or undecodable file is logged and skipped; the dependent animation
// clips simply become unusable rather than fatal.
func (r *Registry) LoadAll(fsys fs.FS, textures map[string]string) {
	for id, path := range textures {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			log.Printf("[assets] texture %q (%s): %v", id, path, err)
			continue
		}
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			log.Printf("[assets] texture %q (%s): decode: %v", id, path, err)
			continue
		}
		r.images[id] = ebiten.NewImageFromImage(img)
	}
}

// Has reports whether a texture id is loaded. Satisfies anim.Images.
func (r *Registry) Has(id string) bool {
	_, ok := r.images[id]
	return ok
}

// Image returns the image for an id.
func (r *Registry) Image(id string) (*ebiten.Image, bool) {
	img, ok := r.images[id]
	return img, ok
}
