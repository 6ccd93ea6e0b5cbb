package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/config"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/event"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/sound"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/transport/redis"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/tui"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/usecase"
)

var ErrAddrNotFound = errors.New("redis host is empty")

// RunApp - runs the application until the players quit or a signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	var listeners []event.Listener
	if !conf.Sound.Muted {
		listeners = append(listeners, sound.NewListener(logger, sound.NewBell(os.Stderr)))
	}

	attach := func(*usecase.SessionController) {}

	if conf.Redis.Enabled {
		redisClient, err := connectRedis(ctx, &conf.Redis)
		if err != nil {
			return err
		}

		mirror := newRedisMirror(ctx, logger, redisClient, conf.Redis)
		defer func() {
			if err = mirror.Close(); err != nil {
				log.Error("could not close redis client", "error", err)
			}
		}()

		attach = mirror.Attach
	}

	model := tui.New(logger, NewSessionFactory(logger, listeners, attach), [2]string{conf.Players.One, conf.Players.Two})
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	log.Info("Starting game")

	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			log.Info("Application context canceled, shutting down")
			return nil
		}

		return fmt.Errorf("terminal UI error: %w", err)
	}

	log.Info("Game closed")

	return nil
}

func connectRedis(ctx context.Context, conf *config.Redis) (*goredis.Client, error) {
	if conf.Host == "" {
		return nil, ErrAddrNotFound
	}

	client, err := storage.NewRedis(ctx, conf.GetRedisAddr())
	if err != nil {
		return nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	return client, nil
}

// redisMirror runs one event publisher per session on a shared client.
type redisMirror struct {
	logger *slog.Logger
	client *goredis.Client
	conf   config.Redis

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func newRedisMirror(ctx context.Context, logger *slog.Logger, client *goredis.Client, conf config.Redis) *redisMirror {
	ctx, cancel := context.WithCancel(ctx)

	return &redisMirror{
		logger: logger.With("component", "redisMirror"),
		client: client,
		conf:   conf,

		ctx:    ctx,
		cancel: cancel,
	}
}

func (that *redisMirror) Attach(session *usecase.SessionController) {
	channel := redis.Channel(that.conf.ChannelPrefix, session.ID())
	publisher := redis.NewPublisher(that.logger, that.client, channel, that.conf.BufferSize)
	session.Subscribe(publisher)

	that.wg.Add(1)
	go func() {
		defer that.wg.Done()

		if err := publisher.Run(that.ctx); err != nil {
			that.logger.Error("event publisher stopped", "error", err)
		}
	}()

	that.logger.Info("mirroring events to redis", "channel", channel)
}

// Close stops every publisher and waits for them before closing the client.
func (that *redisMirror) Close() error {
	that.cancel()
	that.wg.Wait()

	return that.client.Close()
}

// NewSessionFactory builds sessions subscribed to listeners; attach runs on every new session.
func NewSessionFactory(logger *slog.Logger, listeners []event.Listener, attach func(*usecase.SessionController)) tui.SessionFactory {
	return func(name1, name2 string) (*usecase.SessionController, error) {
		session, err := usecase.NewSessionController(logger, name1, name2)
		if err != nil {
			return nil, fmt.Errorf("could not start session: %w", err)
		}

		session.Subscribe(listeners...)

		if attach != nil {
			attach(session)
		}

		logger.Info("session started", "sessionID", session.ID(), "player1", name1, "player2", name2)

		return session, nil
	}
}
