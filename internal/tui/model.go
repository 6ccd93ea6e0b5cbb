package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/event"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/usecase"
)

// SessionFactory starts a session for two players with the application's listeners attached.
type SessionFactory func(name1, name2 string) (*usecase.SessionController, error)

type phase uint8

const (
	phaseNames phase = iota
	phasePlay
)

// Model is the terminal front end of a session.
type Model struct {
	logger     *slog.Logger
	newSession SessionFactory

	session *usecase.SessionController
	inbox   *inbox

	phase       phase
	names       [2]string
	nameIdx     int
	input       []rune
	inputCursor int
	nameErr     string

	cursorRow int
	cursorCol int
	status    string
}

// New returns a model that asks for player names unless presets are both usable.
func New(logger *slog.Logger, newSession SessionFactory, presets [2]string) *Model {
	model := &Model{
		logger:     logger.With("component", "tui"),
		newSession: newSession,
		inbox:      &inbox{},
		cursorRow:  1,
		cursorCol:  1,
	}

	if strings.TrimSpace(presets[0]) != "" && strings.TrimSpace(presets[1]) != "" {
		if err := model.startSession(presets[0], presets[1]); err != nil {
			model.logger.Warn("configured player names rejected", "error", err)
		}
	}

	return model
}

func (that *Model) Init() tea.Cmd {
	return tea.SetWindowTitle("Tic-Tac-Toe")
}

func (that *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return that, nil
	}

	if key.Type == tea.KeyCtrlC || key.Type == tea.KeyEsc {
		return that, tea.Quit
	}

	if that.phase == phaseNames {
		return that.handleNameKey(key)
	}

	return that.handlePlayKey(key)
}

func (that *Model) handleNameKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyEnter:
		that.confirmName()
	case tea.KeyBackspace, tea.KeyCtrlH:
		if that.inputCursor > 0 {
			that.input = slices.Delete(that.input, that.inputCursor-1, that.inputCursor)
			that.inputCursor--
		}
	case tea.KeyDelete:
		if that.inputCursor < len(that.input) {
			that.input = slices.Delete(that.input, that.inputCursor, that.inputCursor+1)
		}
	case tea.KeyLeft:
		that.inputCursor = max(that.inputCursor-1, 0)
	case tea.KeyRight:
		that.inputCursor = min(that.inputCursor+1, len(that.input))
	case tea.KeyHome, tea.KeyCtrlA:
		that.inputCursor = 0
	case tea.KeyEnd, tea.KeyCtrlE:
		that.inputCursor = len(that.input)
	case tea.KeySpace:
		that.insertRunes(' ')
	case tea.KeyRunes:
		that.insertRunes(key.Runes...)
	}

	return that, nil
}

func (that *Model) insertRunes(runes ...rune) {
	that.input = slices.Insert(that.input, that.inputCursor, runes...)
	that.inputCursor += len(runes)
}

func (that *Model) confirmName() {
	name := strings.TrimSpace(string(that.input))
	if name == "" {
		that.nameErr = fmt.Sprintf("Player %d's name cannot be blank", that.nameIdx+1)
		return
	}

	that.names[that.nameIdx] = name
	that.input = nil
	that.inputCursor = 0
	that.nameErr = ""

	if that.nameIdx == 0 {
		that.nameIdx = 1
		return
	}

	if err := that.startSession(that.names[0], that.names[1]); err != nil {
		that.logger.Error("failed to start session", "error", err)
		that.nameErr = "Invalid input! " + err.Error()
		that.names = [2]string{}
		that.nameIdx = 0
	}
}

func (that *Model) startSession(name1, name2 string) error {
	session, err := that.newSession(name1, name2)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	session.Subscribe(that.inbox)

	that.session = session
	that.phase = phasePlay
	that.status = ""

	return nil
}

func (that *Model) handlePlayKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Type == tea.KeyEnter || key.Type == tea.KeySpace {
		that.submit()
		return that, nil
	}

	switch keyName := key.String(); keyName {
	case "q":
		return that, tea.Quit
	case "up", "k":
		that.cursorRow = max(that.cursorRow-1, 0)
	case "down", "j":
		that.cursorRow = min(that.cursorRow+1, entity.BoardSize-1)
	case "left", "h":
		that.cursorCol = max(that.cursorCol-1, 0)
	case "right", "l":
		that.cursorCol = min(that.cursorCol+1, entity.BoardSize-1)
	case "r":
		that.session.Restart()
		that.consumeEvents()
		that.status = "Scores reset"
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		idx := int(keyName[0] - '1')
		that.cursorRow = idx / entity.BoardSize
		that.cursorCol = idx % entity.BoardSize
		that.submit()
	}

	return that, nil
}

func (that *Model) submit() {
	_, err := that.session.SubmitMove(that.cursorRow, that.cursorCol)
	if errors.Is(err, apperror.ErrInvalidMove) {
		that.status = "That cell is taken"
		return
	}

	if err != nil {
		that.logger.Error("failed to submit move", "error", err)
		that.status = "Move failed"
		return
	}

	that.consumeEvents()
}

// consumeEvents turns the events of the last action into the status line.
func (that *Model) consumeEvents() {
	for _, evt := range that.inbox.drain() {
		switch evt.Kind {
		case event.KindMoveAccepted:
			that.status = ""
		case event.KindRoundWon:
			that.status = evt.Player + " wins!"
		case event.KindRoundDrawn:
			that.status = "It's a draw!"
		case event.KindScoreChanged, event.KindBoardCleared:
		}
	}
}

// inbox buffers session events until the model handles them.
type inbox struct {
	events []event.Event
}

func (that *inbox) OnEvent(evt event.Event) {
	that.events = append(that.events, evt)
}

func (that *inbox) drain() []event.Event {
	events := that.events
	that.events = nil
	return events
}
