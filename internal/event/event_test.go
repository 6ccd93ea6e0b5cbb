package event

import (
	"encoding/json"
	"testing"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcher_Emit(t *testing.T) {
	t.Run("Delivers events to listeners in subscription order", func(t *testing.T) {
		// Given: a dispatcher with two listeners recording into one log
		var got []string
		dispatcher := &Dispatcher{}
		dispatcher.Subscribe(
			ListenerFunc(func(evt Event) { got = append(got, "first:"+evt.Kind.String()) }),
			ListenerFunc(func(evt Event) { got = append(got, "second:"+evt.Kind.String()) }),
		)

		// When: two events are emitted
		dispatcher.Emit(Event{Kind: KindMoveAccepted})
		dispatcher.Emit(Event{Kind: KindBoardCleared})

		// Then: every listener sees every event, in order
		assert.Equal(t, []string{
			"first:move:accepted",
			"second:move:accepted",
			"first:board:cleared",
			"second:board:cleared",
		}, got)
	})

	t.Run("Ignores nil listeners", func(t *testing.T) {
		// Given: a dispatcher subscribed with a nil listener
		dispatcher := &Dispatcher{}
		dispatcher.Subscribe(nil)

		// Then: emitting does not panic
		assert.NotPanics(t, func() { dispatcher.Emit(Event{Kind: KindRoundDrawn}) })
	})
}

func TestEvent_JSON(t *testing.T) {
	// Given: a round won event
	evt := Event{
		SessionID: "abc",
		Kind:      KindRoundWon,
		Move:      &Move{Mark: entity.PlayerO, Row: 2, Col: 1},
		Player:    "Bob",
		Scores: [2]entity.Score{
			{Player: entity.Player{Name: "Alice", Mark: entity.PlayerX}, Wins: 0},
			{Player: entity.Player{Name: "Bob", Mark: entity.PlayerO}, Wins: 1},
		},
		Round: 1,
	}

	// When: encoding it
	data, err := json.Marshal(evt)
	require.NoError(t, err)

	// Then: enumerations are written by name
	assert.JSONEq(t, `{
		"session_id": "abc",
		"kind": "round:won",
		"mark": "O",
		"row": 2,
		"col": 1,
		"player": "Bob",
		"scores": [
			{"player": {"name": "Alice", "mark": "X"}, "wins": 0},
			{"player": {"name": "Bob", "mark": "O"}, "wins": 1}
		],
		"round": 1
	}`, string(data))
}

func TestEvent_JSONWithoutMove(t *testing.T) {
	// Given: a board cleared event from a restart
	evt := Event{
		SessionID: "abc",
		Kind:      KindBoardCleared,
		Scores: [2]entity.Score{
			{Player: entity.Player{Name: "Alice", Mark: entity.PlayerX}},
			{Player: entity.Player{Name: "Bob", Mark: entity.PlayerO}},
		},
	}

	// When: encoding it
	data, err := json.Marshal(evt)
	require.NoError(t, err)

	// Then: no mark, row, col or player is written
	assert.JSONEq(t, `{
		"session_id": "abc",
		"kind": "board:cleared",
		"scores": [
			{"player": {"name": "Alice", "mark": "X"}, "wins": 0},
			{"player": {"name": "Bob", "mark": "O"}, "wins": 0}
		],
		"round": 0
	}`, string(data))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "score:changed", KindScoreChanged.String())
	assert.Equal(t, "round:drawn", KindRoundDrawn.String())
	assert.Equal(t, "unknown", Kind(0).String())
}
