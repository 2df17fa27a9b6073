package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/anonymity12/habitplanet/internal/service"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	mx             *chi.Mux
	userService    service.UserServiceI
	habitService   service.HabitsServiceI
	checkInService service.CheckInServiceI
	gachaService   service.GachaServiceI
	adviceService  service.AdviceServiceI
	jwtService     JWTServiceI
	events         EventStreamI
}

type ServicesList struct {
	UserService    service.UserServiceI
	HabitsService  service.HabitsServiceI
	CheckInService service.CheckInServiceI
	GachaService   service.GachaServiceI
	AdviceService  service.AdviceServiceI
	JwtService     JWTServiceI
	Events         EventStreamI
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:             chi.NewMux(),
		userService:    servicesOptions.UserService,
		habitService:   servicesOptions.HabitsService,
		checkInService: servicesOptions.CheckInService,
		gachaService:   servicesOptions.GachaService,
		adviceService:  servicesOptions.AdviceService,
		jwtService:     servicesOptions.JwtService,
		events:         servicesOptions.Events,
	}
	s.mountRoutes()
	return s
}

func (s *Server) mountRoutes() {
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)

		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
			r.Get("/habits", s.ListHabits)
			r.Post("/habits", s.CreateHabit)
			r.Delete("/habits/{id}", s.DeleteHabit)
			r.Post("/habits/{id}/subtasks/{subtaskID}/toggle", s.ToggleSubtask)
			r.Post("/habits/{id}/check-ins", s.CheckIn)
			r.Post("/gacha/draw", s.Draw)
			r.Get("/me", s.GetProfile)
			r.Get("/me/stats", s.GetStats)
			r.Get("/me/advice", s.GetAdvice)
			r.Get("/ws", s.Events)
		})
	})
}

// Handler is the traced router.
func (s *Server) Handler() http.Handler {
	return otelhttp.NewHandler(s.mx, "habitplanet")
}

// Run serves on addr until ctx is done, then drains in-flight requests.
func (s *Server) Run(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("server started", slog.String("address", addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return errors.New("server shutdown error: " + err.Error())
	}
	return <-errCh
}
