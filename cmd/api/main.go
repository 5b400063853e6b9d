package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/limbo/accountability/internal/api"
	"github.com/limbo/accountability/internal/cooldown"
	"github.com/limbo/accountability/internal/repository"
	"github.com/limbo/accountability/internal/service"
	"github.com/limbo/accountability/internal/tracker"
	"github.com/limbo/accountability/pkg/cleanup"
	"github.com/limbo/accountability/pkg/config"
	jwtservice "github.com/limbo/accountability/pkg/jwt_service"
	"github.com/limbo/accountability/pkg/logger"
	"github.com/limbo/accountability/pkg/mq"
	"go.uber.org/zap"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	log := logger.New(logger.Options{
		Level: cfg.GetString("LOG_LEVEL"),
		File:  cfg.GetString("LOG_FILE"),
	})
	zap.ReplaceGlobals(log)
	cleanup.Register(&cleanup.Job{
		Name: "logger sync",
		F: func() error {
			_ = log.Sync()
			return nil
		},
	})
	defer cleanup.CleanUp(log)

	loc, err := time.LoadLocation(cfg.GetStringOr("TIMEZONE", "UTC"))
	if err != nil {
		log.Fatal("loading timezone error", zap.Error(err))
	}

	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	pool := repository.NewPool(&dbCfg)
	usersRepo := repository.NewUsersRepoWithConn(pool)
	goalsRepo := repository.NewGoalsRepoWithConn(pool)
	streaksRepo := repository.NewStreaksRepoWithConn(pool)
	progressRepo := repository.NewProgressRepoWithConn(pool)
	nudgesRepo := repository.NewNudgesRepoWithConn(pool)

	var cooldowns repository.CooldownStoreI
	switch store := cfg.GetStringOr("COOLDOWN_STORE", "postgres"); store {
	case "redis":
		rdb := cooldown.NewRedisClient(cfg.GetString("REDIS_ADDR"), cfg.GetString("REDIS_PASSWORD"), cfg.GetInt("REDIS_DB", 0))
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = rdb.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			log.Fatal("redis ping error", zap.Error(err))
		}
		cleanup.Register(&cleanup.Job{Name: "redis client", F: rdb.Close})
		cooldowns = cooldown.NewRedisStore(rdb)
	case "postgres":
		cooldowns = repository.NewCooldownsRepoWithConn(pool)
	default:
		log.Fatal("unknown cooldown store", zap.String("store", store))
	}
	log.Info("cooldown store selected", zap.String("store", cfg.GetStringOr("COOLDOWN_STORE", "postgres")))

	var push service.PushSenderI
	if url := cfg.GetString("MQ_URL"); url != "" {
		publisher, err := mq.NewPublisher(url)
		if err != nil {
			// Pushes are best effort, the API works without them.
			log.Warn("push publisher disabled", zap.Error(err))
		} else {
			cleanup.Register(&cleanup.Job{
				Name: "mq publisher",
				F: func() error {
					publisher.Close()
					return nil
				},
			})
			push = mq.NewPushPublisher(publisher)
		}
	}

	clock := tracker.LocalClock(loc)
	serv := api.New(&api.ServicesList{
		UserService: service.NewUsersService(usersRepo),
		GoalsService: service.NewGoalsService(goalsRepo, streaksRepo, progressRepo, service.GoalsServiceOptions{
			Clock:       clock,
			GraceWindow: cfg.GetDuration("STATUS_GRACE_WINDOW", tracker.DefaultGraceWindow),
			Location:    loc,
			Logger:      log.Named("goals"),
		}),
		ScoresService: service.NewScoresService(goalsRepo, streaksRepo, progressRepo),
		NudgeService: service.NewNudgeService(nudgesRepo, usersRepo, cooldowns, service.NudgeServiceOptions{
			Clock:  clock,
			Logger: log.Named("nudges"),
			Push:   push,
		}),
		JwtService: jwtservice.New(cfg.GetString("JWT_SECRET"), cfg.GetDuration("JWT_TOKEN_TTL", time.Hour)),
		Logger:     log,
		RateLimit: api.RateLimitOpts{
			RPS:   cfg.GetFloat("RATE_LIMIT_RPS", 5),
			Burst: cfg.GetInt("RATE_LIMIT_BURST", 10),
		},
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err = serv.Run(ctx, cfg.GetStringOr("API_ADDRESS", ":8080")); err != nil {
		log.Error("server error", zap.Error(err))
	}
}
