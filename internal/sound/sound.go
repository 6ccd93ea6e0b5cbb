package sound

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/event"
)

// Cue is a short audio signal played in reaction to a session event.
type Cue uint8

const (
	CuePlace Cue = iota + 1
	CueWin
	CueDraw
)

func (that Cue) String() string {
	switch that {
	case CuePlace:
		return "place"
	case CueWin:
		return "win"
	case CueDraw:
		return "draw"
	default:
		return "unknown"
	}
}

// CueFor returns the cue for an event kind; ok is false for silent events.
func CueFor(kind event.Kind) (Cue, bool) {
	switch kind {
	case event.KindMoveAccepted:
		return CuePlace, true
	case event.KindRoundWon:
		return CueWin, true
	case event.KindRoundDrawn:
		return CueDraw, true
	default:
		return 0, false
	}
}

type Player interface {
	Play(cue Cue) error
}

const bel = '\a'

// Bell plays cues as bursts of the terminal bell.
type Bell struct {
	out io.Writer
}

func NewBell(out io.Writer) *Bell {
	return &Bell{out: out}
}

func (that *Bell) Play(cue Cue) error {
	n := rings(cue)
	if n == 0 {
		return nil
	}

	if _, err := that.out.Write(bytes.Repeat([]byte{bel}, n)); err != nil {
		return fmt.Errorf("failed to ring bell for %s: %w", cue, err)
	}

	return nil
}

func rings(cue Cue) int {
	switch cue {
	case CuePlace:
		return 1
	case CueDraw:
		return 2
	case CueWin:
		return 3
	default:
		return 0
	}
}

// Listener plays the cue matching each event it receives.
type Listener struct {
	logger *slog.Logger
	player Player
}

func NewListener(logger *slog.Logger, player Player) *Listener {
	return &Listener{
		logger: logger.With("component", "sound"),
		player: player,
	}
}

func (that *Listener) OnEvent(evt event.Event) {
	cue, ok := CueFor(evt.Kind)
	if !ok {
		return
	}

	if err := that.player.Play(cue); err != nil {
		that.logger.Warn("failed to play cue", "cue", cue.String(), "error", err)
	}
}
