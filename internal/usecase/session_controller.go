package usecase

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/event"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/tictactoe"
)

// MoveResult describes an accepted move. Mover is who placed the mark,
// Outcome is the round state right after the move and before any reset.
type MoveResult struct {
	Outcome entity.Outcome
	Mover   entity.Player
}

// SessionController runs consecutive rounds between two named players and keeps their scores.
// It is not safe for concurrent use.
type SessionController struct {
	logger *slog.Logger

	id      string
	players [2]entity.Player
	scores  [2]int
	rounds  int

	game   *tictactoe.GameState
	events event.Dispatcher
}

// NewSessionController binds name1 to X and name2 to O.
func NewSessionController(logger *slog.Logger, name1, name2 string) (*SessionController, error) {
	first, err := validateName(name1)
	if err != nil {
		return nil, fmt.Errorf("player 1: %w", err)
	}

	second, err := validateName(name2)
	if err != nil {
		return nil, fmt.Errorf("player 2: %w", err)
	}

	id := uuid.NewString()

	return &SessionController{
		logger: logger.With("component", "session", "sessionID", id),

		id: id,
		players: [2]entity.Player{
			{Name: first, Mark: entity.PlayerX},
			{Name: second, Mark: entity.PlayerO},
		},

		game: tictactoe.NewGameState(),
	}, nil
}

func validateName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", apperror.ErrInvalidPlayerName
	}

	return trimmed, nil
}

// Subscribe registers listeners for every event emitted from now on.
func (that *SessionController) Subscribe(listeners ...event.Listener) {
	that.events.Subscribe(listeners...)
}

// SubmitMove plays the current player's mark at row, col.
// A finished round is scored and the board cleared before SubmitMove returns.
func (that *SessionController) SubmitMove(row, col int) (MoveResult, error) {
	log := that.logger.With("method", "SubmitMove")

	mover := that.playerFor(that.game.Turn())

	outcome, err := that.game.ApplyMove(row, col)
	if err != nil {
		log.Debug("move rejected", "row", row, "col", col, "error", err)
		return MoveResult{}, fmt.Errorf("failed to submit move: %w", err)
	}

	move := &event.Move{Mark: mover.Mark, Row: row, Col: col}
	that.emit(event.KindMoveAccepted, mover.Name, move)

	switch outcome.Status {
	case entity.StatusWon:
		that.scores[playerIndex(outcome.Winner)]++
		that.rounds++
		log.Info("round won", "player", mover.Name, "mark", mover.Mark.String(), "round", that.rounds)

		that.emit(event.KindRoundWon, mover.Name, move)
		that.emit(event.KindScoreChanged, mover.Name, move)
		that.clearBoard(mover.Name, move)
	case entity.StatusDrawn:
		that.rounds++
		log.Info("round drawn", "round", that.rounds)

		that.emit(event.KindRoundDrawn, mover.Name, move)
		that.clearBoard(mover.Name, move)
	}

	return MoveResult{Outcome: outcome, Mover: mover}, nil
}

// Restart zeroes both scores and starts a fresh round.
func (that *SessionController) Restart() {
	that.scores = [2]int{}
	that.rounds = 0
	that.game.Reset()

	that.logger.Info("session restarted")

	that.emit(event.KindScoreChanged, "", nil)
	that.emit(event.KindBoardCleared, "", nil)
}

// CurrentScores returns player 1 (X) first and player 2 (O) second.
func (that *SessionController) CurrentScores() [2]entity.Score {
	return [2]entity.Score{
		{Player: that.players[0], Wins: that.scores[0]},
		{Player: that.players[1], Wins: that.scores[1]},
	}
}

func (that *SessionController) ID() string {
	return that.id
}

func (that *SessionController) Players() [2]entity.Player {
	return that.players
}

// Rounds returns how many rounds finished since the session started or was restarted.
func (that *SessionController) Rounds() int {
	return that.rounds
}

func (that *SessionController) Board() entity.Board {
	return that.game.Board()
}

// Turn returns the player expected to move next.
func (that *SessionController) Turn() entity.Player {
	return that.playerFor(that.game.Turn())
}

func (that *SessionController) clearBoard(player string, move *event.Move) {
	that.game.Reset()
	that.emit(event.KindBoardCleared, player, move)
}

// Each event gets its own copy of move.
func (that *SessionController) emit(kind event.Kind, player string, move *event.Move) {
	evt := event.Event{
		SessionID: that.id,
		Kind:      kind,
		Player:    player,
		Scores:    that.CurrentScores(),
		Round:     that.rounds,
	}
	if move != nil {
		moveCopy := *move
		evt.Move = &moveCopy
	}

	that.events.Emit(evt)
}

func (that *SessionController) playerFor(mark entity.Mark) entity.Player {
	return that.players[playerIndex(mark)]
}

func playerIndex(mark entity.Mark) int {
	if mark == entity.PlayerO {
		return 1
	}
	return 0
}
