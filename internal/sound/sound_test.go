package sound

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errDeviceGone = errors.New("device gone")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errDeviceGone
}

type recordingPlayer struct {
	cues []Cue
}

func (that *recordingPlayer) Play(cue Cue) error {
	that.cues = append(that.cues, cue)
	return nil
}

func TestCueFor(t *testing.T) {
	cases := map[event.Kind]Cue{
		event.KindMoveAccepted: CuePlace,
		event.KindRoundWon:     CueWin,
		event.KindRoundDrawn:   CueDraw,
	}

	for kind, expected := range cases {
		cue, ok := CueFor(kind)

		require.True(t, ok, kind.String())
		assert.Equal(t, expected, cue, kind.String())
	}

	for _, kind := range []event.Kind{event.KindScoreChanged, event.KindBoardCleared} {
		_, ok := CueFor(kind)
		assert.False(t, ok, kind.String())
	}
}

func TestBell_Play(t *testing.T) {
	t.Run("Rings a cue specific number of times", func(t *testing.T) {
		for cue, expected := range map[Cue]string{CuePlace: "\a", CueDraw: "\a\a", CueWin: "\a\a\a"} {
			// Given: a bell writing into a buffer
			var out bytes.Buffer
			bell := NewBell(&out)

			// When: a cue is played
			require.NoError(t, bell.Play(cue))

			// Then: the buffer holds the expected bell characters
			assert.Equal(t, expected, out.String(), cue.String())
		}
	})

	t.Run("Returns the writer error", func(t *testing.T) {
		bell := NewBell(failingWriter{})

		err := bell.Play(CueWin)

		require.ErrorIs(t, err, errDeviceGone)
	})
}

func TestListener_OnEvent(t *testing.T) {
	t.Run("Plays cues for move and round events only", func(t *testing.T) {
		// Given: a listener backed by a recording player
		player := &recordingPlayer{}
		listener := NewListener(slog.New(slog.NewJSONHandler(io.Discard, nil)), player)

		// When: a winning move sequence of events arrives
		for _, kind := range []event.Kind{
			event.KindMoveAccepted,
			event.KindRoundWon,
			event.KindScoreChanged,
			event.KindBoardCleared,
		} {
			listener.OnEvent(event.Event{Kind: kind})
		}

		// Then: only place and win are played
		assert.Equal(t, []Cue{CuePlace, CueWin}, player.cues)
	})

	t.Run("Logs playback failures without panicking", func(t *testing.T) {
		// Given: a listener whose bell cannot write
		var logs bytes.Buffer
		listener := NewListener(slog.New(slog.NewJSONHandler(&logs, nil)), NewBell(failingWriter{}))

		// When: a draw arrives
		assert.NotPanics(t, func() { listener.OnEvent(event.Event{Kind: event.KindRoundDrawn}) })

		// Then: the failure is logged as a warning
		assert.Contains(t, logs.String(), `"level":"WARN"`)
		assert.Contains(t, logs.String(), "device gone")
	})
}
