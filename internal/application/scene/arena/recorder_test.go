package arena

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krefel/bossfight/internal/application/replay"
	"github.com/krefel/bossfight/internal/application/system"
)

func TestRecorder_RecordFrames(t *testing.T) {
	r := NewRecorder(42)

	r.RecordFrame(system.InputState{Left: true})
	r.RecordFrame(system.InputState{Right: true, Attack: true})
	r.RecordFrame(system.InputState{})

	assert.Equal(t, 3, r.FrameCount())
	assert.True(t, r.IsRecording())

	r.Stop()
	r.RecordFrame(system.InputState{Jump: true})
	assert.Equal(t, 3, r.FrameCount())
}

func TestRecorder_SaveRoundTrip(t *testing.T) {
	r := NewRecorder(42)
	r.RecordFrame(system.InputState{Left: true, Jump: true})
	r.RecordFrame(system.InputState{Right: true, Parry: true, Dash: true})

	path := filepath.Join(t.TempDir(), "replay.json")
	require.NoError(t, r.Save(path))

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)

	assert.Equal(t, "1.0", data.Version)
	assert.Equal(t, int64(42), data.Seed)
	require.Len(t, data.Frames, 2)

	assert.True(t, data.Frames[0].L)
	assert.True(t, data.Frames[0].J)
	assert.True(t, data.Frames[1].R)
	assert.True(t, data.Frames[1].P)
	assert.True(t, data.Frames[1].Ds)

	// The loaded data feeds straight into a replayer.
	replayer := replay.NewReplayer(*data)
	input, ok := replayer.GetInput()
	require.True(t, ok)
	assert.True(t, input.Left)
	assert.True(t, input.Jump)
}

func TestRecorder_SaveEmptyFails(t *testing.T) {
	r := NewRecorder(42)

	err := r.Save(filepath.Join(t.TempDir(), "empty.json"))
	assert.Error(t, err)
}

func TestGenerateFilename(t *testing.T) {
	name := GenerateFilename()
	assert.Contains(t, name, "replay_")
	assert.Contains(t, name, ".json")
}
