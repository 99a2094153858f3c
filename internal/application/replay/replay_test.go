package replay

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplayData_JSONMarshal(t *testing.T) {
	data := ReplayData{
		Version:   "1.0",
		Seed:      12345,
		StartTime: "2026-01-01T00:00:00Z",
		Frames: []FrameInput{
			{F: 0},
			{F: 1, R: true, A: true},
		},
	}

	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	var decoded ReplayData
	err = json.Unmarshal(jsonData, &decoded)
	require.NoError(t, err)

	assert.Equal(t, data.Version, decoded.Version)
	assert.Equal(t, data.Seed, decoded.Seed)
	assert.Equal(t, len(data.Frames), len(decoded.Frames))
	assert.True(t, decoded.Frames[1].R)
	assert.True(t, decoded.Frames[1].A)
}

func TestReplayer_GetInput(t *testing.T) {
	data := ReplayData{
		Version: "1.0",
		Seed:    42,
		Frames: []FrameInput{
			{F: 0, L: true},
			{F: 1, R: true, J: true},
			{F: 2},
		},
	}

	replayer := NewReplayer(data)

	// Frame 0
	input, ok := replayer.GetInput()
	require.True(t, ok)
	assert.True(t, input.Left)
	assert.False(t, input.Right)

	// Frame 1
	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.False(t, input.Left)
	assert.True(t, input.Right)
	assert.True(t, input.Jump)

	// Frame 2
	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.False(t, input.Left)
	assert.False(t, input.Right)

	// End of frames
	_, ok = replayer.GetInput()
	assert.False(t, ok)
}

func TestReplayer_CurrentFrame(t *testing.T) {
	data := CreateTestReplayData(5)
	replayer := NewReplayer(data)

	assert.Equal(t, 0, replayer.CurrentFrame())

	replayer.GetInput()
	assert.Equal(t, 1, replayer.CurrentFrame())

	replayer.GetInput()
	replayer.GetInput()
	assert.Equal(t, 3, replayer.CurrentFrame())
}

func TestReplayer_TotalFrames(t *testing.T) {
	data := CreateTestReplayData(10)
	replayer := NewReplayer(data)

	assert.Equal(t, 10, replayer.TotalFrames())
}

func TestReplayer_Seed(t *testing.T) {
	data := ReplayData{
		Seed:   99999,
		Frames: []FrameInput{},
	}
	replayer := NewReplayer(data)

	assert.Equal(t, int64(99999), replayer.Seed())
}

func TestReplayer_Reset(t *testing.T) {
	data := CreateTestReplayData(3)
	replayer := NewReplayer(data)

	// Advance to end
	replayer.GetInput()
	replayer.GetInput()
	replayer.GetInput()
	_, ok := replayer.GetInput()
	assert.False(t, ok)

	// Reset
	replayer.Reset()
	assert.Equal(t, 0, replayer.CurrentFrame())

	// Should be able to read again
	_, ok = replayer.GetInput()
	assert.True(t, ok)
}

func TestReplayer_ReturnsCorrectInputState(t *testing.T) {
	// Test that all fields are correctly mapped
	data := ReplayData{
		Frames: []FrameInput{
			{
				F:  0,
				L:  true,
				R:  true,
				J:  true,
				A:  true,
				P:  true,
				Ds: true,
			},
		},
	}

	replayer := NewReplayer(data)
	input, ok := replayer.GetInput()

	require.True(t, ok)
	assert.True(t, input.Left)
	assert.True(t, input.Right)
	assert.True(t, input.Jump)
	assert.True(t, input.Attack)
	assert.True(t, input.Parry)
	assert.True(t, input.Dash)
}

func TestCreateTestReplayData(t *testing.T) {
	data := CreateTestReplayData(60)

	assert.Equal(t, "1.0", data.Version)
	assert.Equal(t, int64(12345), data.Seed)
	assert.Equal(t, 60, len(data.Frames))

	for i, frame := range data.Frames {
		assert.Equal(t, i, frame.F, "Frame number mismatch at index %d", i)
	}
}
