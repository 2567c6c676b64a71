// Package server assembles the credential service: storage backend, password
// hasher, login throttle, event publisher, and the gRPC and HTTP endpoints.
package server

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/careerhub/internal/logging"
	"github.com/dmitrijs2005/careerhub/internal/server/config"
	"github.com/dmitrijs2005/careerhub/internal/server/events"
	"github.com/dmitrijs2005/careerhub/internal/server/httpapi"
	"github.com/dmitrijs2005/careerhub/internal/server/passwords"
	"github.com/dmitrijs2005/careerhub/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/careerhub/internal/server/services"
	"github.com/dmitrijs2005/careerhub/internal/server/throttle"
	"github.com/redis/go-redis/v9"

	gs "github.com/dmitrijs2005/careerhub/internal/server/grpc"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	manager     repomanager.RepositoryManager
	publisher   events.Publisher
	redis       *redis.Client
	userService *services.UserService
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, logging.ParseLevel(c.LogLevel))

	m, err := openStorage(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := m.RunMigrations(ctx); err != nil {
		_ = m.Close(ctx)
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	publisher, err := newPublisher(c)
	if err != nil {
		_ = m.Close(ctx)
		return nil, fmt.Errorf("events init error: %w", err)
	}

	var rdb *redis.Client
	if c.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: c.RedisAddr, Password: c.RedisPassword})
	}

	app, err := newApp(c, logger, m, rdb, publisher)
	if err != nil {
		_ = publisher.Close()
		_ = m.Close(ctx)
		return nil, err
	}
	return app, nil
}

func newApp(c *config.Config, logger logging.Logger, m repomanager.RepositoryManager, rdb *redis.Client, p events.Publisher) (*App, error) {
	hasher, err := passwords.New(c.PasswordHasher, c.BcryptCost)
	if err != nil {
		return nil, err
	}

	var limiter throttle.Limiter = throttle.Noop{}
	if rdb != nil {
		limiter = throttle.NewRedisLimiter(rdb, c.LoginMaxAttempts, c.LoginAttemptWindow)
	}

	us, err := services.NewUserService(m, c, services.Deps{
		Hasher:    hasher,
		Limiter:   limiter,
		Publisher: p,
		Logger:    logger,
	})
	if err != nil {
		return nil, err
	}

	return &App{
		config:      c,
		logger:      logger,
		manager:     m,
		publisher:   p,
		redis:       rdb,
		userService: us,
	}, nil
}

func openStorage(ctx context.Context, c *config.Config) (repomanager.RepositoryManager, error) {
	switch c.StorageDriver {
	case config.StorageMongo:
		db, err := repomanager.ConnectMongo(ctx, c.MongoURI, c.MongoDatabase)
		if err != nil {
			return nil, err
		}
		return repomanager.NewMongoRepositoryManager(db), nil
	case config.StorageMemory:
		return repomanager.NewMemoryRepositoryManager(), nil
	default:
		db, err := repomanager.OpenPostgres(ctx, c.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		return repomanager.NewPostgresRepositoryManager(db), nil
	}
}

func newPublisher(c *config.Config) (events.Publisher, error) {
	switch c.EventsBroker {
	case config.BrokerKafka:
		return events.NewKafkaPublisher(c.KafkaBrokers, c.KafkaTopic)
	case config.BrokerNATS:
		return events.NewNATSPublisher(c.NATSURL, c.NATSSubject)
	default:
		return events.Noop{}, nil
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.userService)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := httpapi.NewServer(app.config.EndpointAddrHTTP, app.logger, app.userService, app.config.HTTPRateLimit)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves both endpoints until ctx is cancelled, a termination signal
// arrives or one of the servers fails, then releases every backend.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	return app.close()
}

func (app *App) close() error {
	ctx := context.Background()
	var errs []error
	if err := app.publisher.Close(); err != nil {
		errs = append(errs, fmt.Errorf("events: %w", err))
	}
	if app.redis != nil {
		if err := app.redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("redis: %w", err))
		}
	}
	if err := app.manager.Close(ctx); err != nil {
		errs = append(errs, fmt.Errorf("storage: %w", err))
	}
	app.logger.Info(ctx, "App stopped")
	return errors.Join(errs...)
}
