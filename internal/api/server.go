package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/accountability/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Server struct {
	mx            *chi.Mux
	userService   service.UsersServiceI
	goalsService  service.GoalsServiceI
	scoresService service.ScoresServiceI
	nudgeService  service.NudgeServiceI
	jwtService    JWTServiceI
	logger        *zap.Logger
	limiter       *ipRateLimiter
}

type RateLimitOpts struct {
	// Requests per second per client address. Zero disables limiting
	RPS   float64
	Burst int
}

type ServicesList struct {
	UserService   service.UsersServiceI
	GoalsService  service.GoalsServiceI
	ScoresService service.ScoresServiceI
	NudgeService  service.NudgeServiceI
	JwtService    JWTServiceI
	Logger        *zap.Logger
	RateLimit     RateLimitOpts
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:            chi.NewMux(),
		userService:   servicesOptions.UserService,
		goalsService:  servicesOptions.GoalsService,
		scoresService: servicesOptions.ScoresService,
		nudgeService:  servicesOptions.NudgeService,
		jwtService:    servicesOptions.JwtService,
		logger:        servicesOptions.Logger,
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if servicesOptions.RateLimit.RPS > 0 {
		s.limiter = newIPRateLimiter(servicesOptions.RateLimit.RPS, servicesOptions.RateLimit.Burst)
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware, s.MetricsMiddleware, s.RateLimitMiddleware)
	s.mx.Handle("/metrics", promhttp.Handler())
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Get("/difficulty/{difficulty}/encouragement", s.GetEncouragement)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)

			r.Post("/goals", s.CreateGoal)
			r.Get("/goals", s.GetGoals)
			r.Get("/goals/{id}", s.GetGoal)
			r.Delete("/goals/{id}", s.DeleteGoal)
			r.Post("/goals/{id}/complete", s.CompleteGoal)
			r.Post("/goals/{id}/evaluate", s.EvaluateGoal)
			r.Get("/goals/{id}/streak", s.GetStreak)
			r.Get("/goals/{id}/completions", s.GetCompletions)

			r.Get("/scores", s.GetScores)

			r.Post("/nudges", s.SendNudge)
			r.Get("/nudges", s.GetNudges)
			r.Get("/nudges/cooldowns", s.GetNudgeCooldowns)
			r.Get("/nudges/cooldowns/{goalId}", s.GetNudgeCooldown)

			r.Put("/users/me/push-token", s.UpdatePushToken)
		})
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, address string) error {
	srv := &http.Server{
		Addr:              address,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("api server started", zap.String("address", address))
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s.logger.Info("api server shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}
