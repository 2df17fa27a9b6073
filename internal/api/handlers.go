package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	errorvalues "github.com/anonymity12/habitplanet/internal/error_values"
	"github.com/anonymity12/habitplanet/internal/service"
	"github.com/anonymity12/habitplanet/pkg/entity"
	"github.com/anonymity12/habitplanet/pkg/httputil"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type CreateHabitRequest struct {
	Title       string           `json:"title"`
	Description string           `json:"desc"`
	Type        entity.HabitType `json:"type"`
	Frequency   entity.Frequency `json:"frequency"`
	TargetCount int              `json:"target_count"`
	SubTasks    []string         `json:"subtasks"`
}

type CheckInRequest struct {
	Note *string  `json:"note"`
	Lat  *float64 `json:"lat"`
	Lng  *float64 `json:"lng"`
}

type GetHabitsResponse struct {
	UserID string          `json:"uid"`
	Habits []*entity.Habit `json:"habits"`
}

type GetStatsResponse struct {
	UserID   string                  `json:"uid"`
	CheckIns []*entity.CheckInRecord `json:"check_ins"`
}

type AdviceResponse struct {
	Advice string `json:"advice"`
}

// ContextWithUID marks the request as authenticated for uid.
func ContextWithUID(ctx context.Context, uid uuid.UUID) context.Context {
	return context.WithValue(ctx, uidContextKey, uid)
}

// writeServiceError maps engine errors onto status codes. fallback is the
// message for anything unexpected.
func writeServiceError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, errorvalues.ErrHabitNotFound):
		httputil.WriteErrorResponse(w, http.StatusNotFound, "habit doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrSubtaskNotFound):
		httputil.WriteErrorResponse(w, http.StatusNotFound, "subtask doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrUserNotFound):
		httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrAlreadyCompleted):
		httputil.WriteErrorResponse(w, http.StatusConflict, "habit already completed today", nil)
	case errors.Is(err, errorvalues.ErrUserExists):
		httputil.WriteErrorResponse(w, http.StatusConflict, "user with such name already exists", nil)
	case errors.Is(err, errorvalues.ErrInsufficientFunds):
		httputil.WriteErrorResponse(w, http.StatusPaymentRequired, "not enough coins", nil)
	case errors.Is(err, errorvalues.ErrValidation):
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request", err)
	case errors.Is(err, errorvalues.ErrWrongCredentials):
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "invalid username or password", nil)
	case errors.Is(err, errorvalues.ErrInvalidToken):
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "authorization failed: invalid token", nil)
	case errors.Is(err, errorvalues.ErrStorageFailure):
		httputil.WriteErrorResponse(w, http.StatusServiceUnavailable, "storage is unavailable, try again later", nil)
	default:
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, fallback, nil)
	}
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RegisterRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("registering error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	user, err := s.userService.Register(ctx, &service.RegisterRequest{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		logger.Error("registering error", slog.String("error", err.Error()))
		writeServiceError(w, err, "internal error during registration")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{
		"uid": user.ID.String(),
	})
	logger.Info("successful registration")
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("login error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	user, err := s.userService.Login(ctx, req.Name, req.Password)
	if err != nil {
		logger.Error("login error", slog.String("error", err.Error()))
		writeServiceError(w, err, "internal error during login")
		return
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("login error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"uid":   user.ID.String(),
		"token": token,
		"user":  user,
	})
	logger.Info("successful login")
}

func (s *Server) ListHabits(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("list habits error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	habits, err := s.habitService.ListHabits(ctx, uid)
	if err != nil {
		logger.Error("listing habits error", slog.String("error", err.Error()))
		writeServiceError(w, err, "error while getting habits list")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetHabitsResponse{
		UserID: uid.String(),
		Habits: habits,
	})
	logger.Info("habits provided")
}

func (s *Server) CreateHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create habit error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CreateHabitRequest
	if err = httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("create habit error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	habit, err := s.habitService.CreateHabit(ctx, uid, &service.CreateHabitRequest{
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Frequency:   req.Frequency,
		TargetCount: req.TargetCount,
		SubTasks:    req.SubTasks,
	})
	if err != nil {
		logger.Error("create habit error", slog.String("error", err.Error()))
		writeServiceError(w, err, "internal error while creating habit")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, habit)
	logger.Info("habit created", slog.String("habit_id", habit.ID.String()))
}

func (s *Server) DeleteHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("habit deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("habit deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habit id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	if err = s.habitService.DeleteHabit(ctx, uid, id); err != nil {
		logger.Error("habit deletion error", slog.String("error", err.Error()))
		writeServiceError(w, err, "internal error while deleting habit")
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("habit deleted", slog.String("habit_id", id.String()))
}

func (s *Server) ToggleSubtask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("toggle subtask error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	habitID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habit id in path value", nil)
		return
	}
	subtaskID, err := uuid.Parse(r.PathValue("subtaskID"))
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid subtask id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	habit, err := s.habitService.ToggleSubtask(ctx, uid, habitID, subtaskID)
	if err != nil {
		logger.Error("toggle subtask error", slog.String("error", err.Error()))
		writeServiceError(w, err, "internal error while toggling subtask")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, habit)
}

func (s *Server) CheckIn(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("check-in error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	habitID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("check-in error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habit id in path value", nil)
		return
	}
	var req CheckInRequest
	if err = httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("check-in error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	result, err := s.checkInService.CheckIn(ctx, uid, habitID, &service.CheckInRequest{
		Note: req.Note,
		Lat:  req.Lat,
		Lng:  req.Lng,
	})
	if err != nil {
		logger.Error("check-in error", slog.String("error", err.Error()))
		writeServiceError(w, err, "internal error while checking in")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, result)
}

func (s *Server) Draw(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("draw error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	// Card art generation may take a while
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*60)
	defer cancel()
	result, err := s.gachaService.Draw(ctx, uid)
	if err != nil {
		logger.Error("draw error", slog.String("error", err.Error()))
		writeServiceError(w, err, "internal error while drawing a card")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, result)
}

func (s *Server) GetProfile(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	user, err := s.userService.GetProfile(ctx, uid)
	if err != nil {
		logger.Error("get profile error", slog.String("error", err.Error()))
		writeServiceError(w, err, "internal error while getting profile")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, user)
}

func (s *Server) GetStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	records, err := s.userService.GetStats(ctx, uid)
	if err != nil {
		logger.Error("get stats error", slog.String("error", err.Error()))
		writeServiceError(w, err, "internal error while getting stats")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetStatsResponse{
		UserID:   uid.String(),
		CheckIns: records,
	})
}

func (s *Server) GetAdvice(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*60)
	defer cancel()
	advice, err := s.adviceService.GetAdvice(ctx, uid)
	if err != nil {
		logger.Error("get advice error", slog.String("error", err.Error()))
		writeServiceError(w, err, "internal error while getting advice")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, AdviceResponse{Advice: advice})
}

func (s *Server) Events(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	if s.events == nil {
		httputil.WriteErrorResponse(w, http.StatusNotImplemented, "live events are disabled", nil)
		return
	}
	logger.Info("event stream opened")
	s.events.Serve(w, r, uid)
	logger.Info("event stream closed")
}
