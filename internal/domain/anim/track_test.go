package anim

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubImages pretends every texture except the listed ones exists.
type stubImages struct {
	missing map[string]bool
}

func (s stubImages) Has(id string) bool { return !s.missing[id] }

func newTestTrack() *Track {
	t := NewTrack(stubImages{})
	t.Define("idle", Clip{TextureID: "idle", FrameCount: 4, FrameDuration: 0.1, FrameW: 32, FrameH: 32, Loops: true})
	t.Define("attack", Clip{TextureID: "attack", FrameCount: 6, FrameDuration: 0.1, FrameW: 32, FrameH: 32, Loops: false})
	return t
}

func TestTrack_DefineMissingTexture(t *testing.T) {
	tr := NewTrack(stubImages{missing: map[string]bool{"ghost": true}})
	tr.Define("haunt", Clip{TextureID: "ghost", FrameCount: 4, FrameDuration: 0.1, FrameW: 8, FrameH: 8, Loops: true})

	assert.False(t, tr.Defined("haunt"))

	// Playing the skipped clip is a no-op.
	tr.Play("haunt")
	assert.Equal(t, "", tr.Current())
	assert.True(t, tr.Done())
}

func TestTrack_AdvanceCatchUp(t *testing.T) {
	tr := newTestTrack()
	tr.Play("idle")

	// dt of 0.5s against 0.1s frames advances a 4-frame loop by
	// exactly 5 frames: one full loop plus one.
	tr.Advance(0.5)
	assert.Equal(t, 1, tr.FrameIndex())
}

func TestTrack_LoopWraps(t *testing.T) {
	tr := newTestTrack()
	tr.Play("idle")

	for i := 0; i < 100; i++ {
		tr.Advance(0.1)
		assert.Less(t, tr.FrameIndex(), 4)
	}
	assert.False(t, tr.Done())
}

func TestTrack_OneShotClampsAndFreezes(t *testing.T) {
	tr := newTestTrack()
	tr.Play("attack")

	tr.Advance(10) // way past the end
	assert.Equal(t, 5, tr.FrameIndex())
	require.True(t, tr.Done())

	// Frozen: further advances never change the frame.
	tr.Advance(0.3)
	assert.Equal(t, 5, tr.FrameIndex())
	assert.True(t, tr.Done())
}

func TestTrack_PlaySemantics(t *testing.T) {
	t.Run("looping replay is idempotent", func(t *testing.T) {
		tr := newTestTrack()
		tr.Play("idle")
		tr.Advance(0.25)
		frame := tr.FrameIndex()

		tr.Play("idle")
		assert.Equal(t, frame, tr.FrameIndex())
	})

	t.Run("one-shot replay restarts", func(t *testing.T) {
		tr := newTestTrack()
		tr.Play("attack")
		tr.Advance(10)
		require.True(t, tr.Done())

		tr.Play("attack")
		assert.Equal(t, 0, tr.FrameIndex())
		assert.False(t, tr.Done())
	})

	t.Run("unknown clip keeps current", func(t *testing.T) {
		tr := newTestTrack()
		tr.Play("idle")
		tr.Play("nope")
		assert.Equal(t, "idle", tr.Current())
	})
}

func TestTrack_FrameRect(t *testing.T) {
	tr := newTestTrack()
	tr.Play("idle")
	tr.Advance(0.2)

	assert.Equal(t, image.Rect(64, 0, 96, 32), tr.FrameRect())

	w, h := tr.FrameSize()
	assert.Equal(t, 32, w)
	assert.Equal(t, 32, h)
}
