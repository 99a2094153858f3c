// Package anim provides per-actor animation tracks: a mapping from
// named clips to sprite-sheet frame sequences, advanced by elapsed time.
package anim

import (
	"image"
	"log"
	"math"
)

// Images reports whether a texture id has a backing image.
// Satisfied by the assets registry; tests use a stub.
type Images interface {
	Has(id string) bool
}

// Clip describes one animation: a horizontal strip of frames in a
// single texture.
type Clip struct {
	TextureID     string
	FrameCount    int
	FrameDuration float64 // seconds per frame
	FrameW        int
	FrameH        int
	Loops         bool
}

// Track plays one clip at a time for an actor.
// Mutated only by the owning actor.
type Track struct {
	images  Images
	clips   map[string]Clip
	current string
	frame   int
	elapsed float64
	done    bool
}

// NewTrack creates an empty track backed by the given image provider.
func NewTrack(images Images) *Track {
	return &Track{
		images: images,
		clips:  make(map[string]Clip),
	}
}

// Define registers a clip. A clip whose texture is missing is logged
// and skipped so the track never presents a state with no visual.
func (t *Track) Define(name string, c Clip) {
	if c.FrameCount <= 0 || c.FrameDuration <= 0 {
		log.Printf("[anim] clip %q has invalid frame count/duration, skipped", name)
		return
	}
	if t.images != nil && !t.images.Has(c.TextureID) {
		log.Printf("[anim] texture %q for clip %q not found, skipped", c.TextureID, name)
		return
	}
	t.clips[name] = c
}

// Play switches to the named clip. Playing the current clip is a no-op
// if it loops; a non-looping clip always restarts, since action replays
// must reset. Unknown clips are ignored.
func (t *Track) Play(name string) {
	c, ok := t.clips[name]
	if !ok {
		return
	}
	if name == t.current && c.Loops {
		return
	}
	t.current = name
	t.frame = 0
	t.elapsed = 0
	t.done = false
}

// Advance accumulates dt and steps frames. Large dt advances several
// frames at once via integer division rather than one frame per call,
// so animation keeps pace when the frame rate drops below it.
// A finished one-shot clip stays frozen on its last frame.
func (t *Track) Advance(dt float64) {
	c, ok := t.clips[t.current]
	if !ok {
		return
	}
	if !c.Loops && t.done {
		return
	}

	t.elapsed += dt
	if t.elapsed < c.FrameDuration {
		return
	}

	steps := int(t.elapsed / c.FrameDuration)
	t.elapsed = math.Mod(t.elapsed, c.FrameDuration)
	t.frame += steps

	if t.frame >= c.FrameCount {
		if c.Loops {
			t.frame %= c.FrameCount
		} else {
			t.frame = c.FrameCount - 1
			t.done = true
		}
	}
}

// Done reports whether a non-looping clip has finished.
// It is also true when no clip is active.
func (t *Track) Done() bool {
	c, ok := t.clips[t.current]
	if !ok {
		return true
	}
	return !c.Loops && t.done
}

// Current returns the name of the active clip ("" when none).
func (t *Track) Current() string {
	return t.current
}

// FrameIndex returns the current frame index within the active clip.
// Exposed for attack-window timing.
func (t *Track) FrameIndex() int {
	return t.frame
}

// TextureID returns the texture id of the active clip.
func (t *Track) TextureID() string {
	return t.clips[t.current].TextureID
}

// FrameRect returns the source rectangle of the current frame within
// the clip's texture strip.
func (t *Track) FrameRect() image.Rectangle {
	c, ok := t.clips[t.current]
	if !ok {
		return image.Rectangle{}
	}
	x := c.FrameW * t.frame
	return image.Rect(x, 0, x+c.FrameW, c.FrameH)
}

// FrameSize returns the frame dimensions of the active clip.
func (t *Track) FrameSize() (w, h int) {
	c := t.clips[t.current]
	return c.FrameW, c.FrameH
}

// Defined reports whether a clip with the given name was registered.
func (t *Track) Defined(name string) bool {
	_, ok := t.clips[name]
	return ok
}
