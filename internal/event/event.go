package event

import "github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"

// Kind identifies what happened in a session.
type Kind uint8

const (
	KindMoveAccepted Kind = iota + 1
	KindRoundWon
	KindRoundDrawn
	KindScoreChanged
	KindBoardCleared
)

func (that Kind) String() string {
	switch that {
	case KindMoveAccepted:
		return "move:accepted"
	case KindRoundWon:
		return "round:won"
	case KindRoundDrawn:
		return "round:drawn"
	case KindScoreChanged:
		return "score:changed"
	case KindBoardCleared:
		return "board:cleared"
	default:
		return "unknown"
	}
}

func (that Kind) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

// Move is the placement that caused an event.
type Move struct {
	Mark entity.Mark `json:"mark"`
	Row  int         `json:"row"`
	Col  int         `json:"col"`
}

// Event is emitted by a session after its state changed.
// Move and Player are unset for restart events; the embedded Move is flattened into the JSON form.
type Event struct {
	SessionID string `json:"session_id"`
	Kind      Kind   `json:"kind"`
	*Move
	Player string          `json:"player,omitempty"`
	Scores [2]entity.Score `json:"scores"`
	Round  int             `json:"round"`
}

type Listener interface {
	OnEvent(evt Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(evt Event)

func (that ListenerFunc) OnEvent(evt Event) {
	that(evt)
}

// Dispatcher fans events out to its listeners in subscription order.
type Dispatcher struct {
	listeners []Listener
}

func (that *Dispatcher) Subscribe(listeners ...Listener) {
	for _, listener := range listeners {
		if listener != nil {
			that.listeners = append(that.listeners, listener)
		}
	}
}

func (that *Dispatcher) Emit(evt Event) {
	for _, listener := range that.listeners {
		listener.OnEvent(evt)
	}
}
