package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/anonymity12/habitplanet/internal/api"
	"github.com/anonymity12/habitplanet/internal/content"
	"github.com/anonymity12/habitplanet/internal/repository"
	"github.com/anonymity12/habitplanet/internal/repository/sqlitestore"
	"github.com/anonymity12/habitplanet/internal/service"
	"github.com/anonymity12/habitplanet/internal/websocket"
	"github.com/anonymity12/habitplanet/pkg/cleanup"
	"github.com/anonymity12/habitplanet/pkg/config"
	"github.com/anonymity12/habitplanet/pkg/dateutil"
	jwtservice "github.com/anonymity12/habitplanet/pkg/jwt_service"
	"github.com/anonymity12/habitplanet/pkg/logging"
)

func init() {
	service.InitValidator()
}

func openStorage(ctx context.Context, cfg *config.Config) (repository.StorageI, error) {
	if cfg.StorageDriver == "sqlite" {
		st, err := sqlitestore.Open(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		cleanup.Register(&cleanup.Job{Name: "closing sqlite", F: st.Close})
		return st, nil
	}
	return repository.NewStorage(ctx, &cfg.Postgres)
}

func artStore(cfg *config.Config) content.ArtStore {
	if cfg.S3.Bucket == "" {
		return content.DataURLStore{}
	}
	return content.NewS3Store(cfg.S3)
}

func main() {
	cfg := config.New()
	logger, logCloser, err := logging.Setup(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
		Tee:    true,
	})
	if err != nil {
		log.Fatal("setting up logger error: ", err)
	}
	cleanup.Register(&cleanup.Job{Name: "closing log file", F: logCloser.Close})
	defer cleanup.CleanUp()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.JWTSecret == "" {
		logger.Error("HABITPLANET_JWT_SECRET is not set")
		return
	}
	storage, err := openStorage(ctx, cfg)
	if err != nil {
		logger.Error("opening storage error", slog.String("driver", cfg.StorageDriver), slog.String("error", err.Error()))
		return
	}
	generator, err := content.NewGenerator(ctx, cfg.Content, artStore(cfg))
	if err != nil {
		logger.Error("content generator error", slog.String("error", err.Error()))
		return
	}
	if cfg.Content.GeminiAPIKey == "" {
		logger.Warn("gemini api key is not set, advice and card art are disabled")
	}

	hub := websocket.NewHub(logger)
	sessions := service.NewSessions(storage)
	calendar := dateutil.NewCalendar(dateutil.System(), cfg.Location())
	policy := service.DefaultRewardPolicy()

	serv := api.New(&api.ServicesList{
		UserService:    service.NewUserService(sessions),
		HabitsService:  service.NewHabitsService(sessions, calendar),
		CheckInService: service.NewCheckInService(sessions, calendar, policy, hub),
		GachaService: service.NewGachaService(sessions, service.GachaOptions{
			Artist:     generator,
			Policy:     policy,
			Notifier:   hub,
			ArtTimeout: cfg.Content.Timeout,
		}),
		AdviceService: service.NewAdviceService(sessions, calendar, generator, cfg.Content.Timeout),
		JwtService:    jwtservice.New(cfg.JWTSecret),
		Events:        hub,
	})
	if err = serv.Run(ctx, cfg.APIAddress); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
	}
}
