package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/accountability/internal/error_values"
	"github.com/limbo/accountability/internal/scoring"
	"github.com/limbo/accountability/internal/service"
	"github.com/limbo/accountability/internal/tracker"
	"github.com/limbo/accountability/pkg/entity"
	"github.com/limbo/accountability/pkg/httputil"
	"go.uber.org/zap"
)

type CreateGoalRequest struct {
	Description string   `json:"description"`
	Frequency   string   `json:"frequency"`
	TargetDays  []string `json:"target_days"`
	Difficulty  string   `json:"difficulty"`
	Type        string   `json:"type"`
	TargetTime  string   `json:"target_time"`
	IsShared    bool     `json:"is_shared"`
}

type CompleteGoalRequest struct {
	// Defaults to the moment of the request
	CompletedAt *time.Time `json:"completed_at"`
}

type GetGoalsResponse struct {
	UserID string         `json:"uid"`
	Page   int            `json:"page"`
	Limit  int            `json:"limit"`
	Goals  []*entity.Goal `json:"goals"`
}

type CompleteGoalResponse struct {
	Kind          entity.CompletionKind `json:"kind"`
	Goal          *entity.Goal          `json:"goal"`
	Streak        *entity.HabitStreak   `json:"streak"`
	Encouragement scoring.Encouragement `json:"encouragement"`
}

type EvaluateGoalResponse struct {
	Goal   *entity.Goal        `json:"goal"`
	Streak *entity.HabitStreak `json:"streak"`
	Miss   tracker.MissOutcome `json:"miss"`
}

type GetCompletionsResponse struct {
	GoalID      string              `json:"goal_id"`
	Page        int                 `json:"page"`
	Limit       int                 `json:"limit"`
	Completions []entity.Completion `json:"completions"`
}

type HabitScoreResponse struct {
	Score       entity.HabitScore        `json:"score"`
	Normalized  entity.NormalizedScore   `json:"normalized"`
	Recognition scoring.RecognitionLevel `json:"recognition"`
}

type GetScoresResponse struct {
	Habits  []HabitScoreResponse `json:"habits"`
	Overall scoring.UserScore    `json:"overall"`
}

type UpdatePushTokenRequest struct {
	Token string `json:"token"`
}

func (s *Server) CreateGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create goal error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CreateGoalRequest
	if err = httputil.DecodeJSON(r.Body, &req); err != nil {
		logger.Error("create goal error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	days, err := tracker.ParseWeekdays(req.TargetDays)
	if err != nil {
		logger.Error("create goal error: invalid target days")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid target days", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	goal, err := s.goalsService.CreateGoal(ctx, uid, service.CreateGoalRequest{
		Description: req.Description,
		Frequency:   entity.Frequency(req.Frequency),
		TargetDays:  days,
		Difficulty:  entity.Difficulty(req.Difficulty),
		Type:        entity.GoalType(req.Type),
		TargetTime:  req.TargetTime,
		IsShared:    req.IsShared,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation), errors.Is(err, errorvalues.ErrInvalidSchedule):
			logger.Error("create goal error: invalid goal", zap.Error(err))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid goal", err)
		case errors.Is(err, errorvalues.ErrGoalExists):
			logger.Error("create goal error: attempt to create existed goal")
			httputil.WriteErrorResponse(w, http.StatusConflict, "goal already exists", nil)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("create goal error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "couldn't create goal: user doesn't exists", nil)
		default:
			logger.Error("create goal error: service error", zap.Error(err))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating goal", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, goal)
	logger.Info("goal created", zap.String("goal_id", goal.ID.String()))
}

func (s *Server) GetGoals(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get goals error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	page, limit, pagination := getPagination(r)
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	goals, err := s.goalsService.GetUserGoals(ctx, uid, pagination)
	if err != nil {
		logger.Error("getting goals list error", zap.Error(err))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting goals list", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetGoalsResponse{
		UserID: uid.String(),
		Page:   page,
		Limit:  limit,
		Goals:  goals,
	})
	logger.Info("goals provided")
}

func (s *Server) GetGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, goalID, ok := s.ownerAndGoal(w, r, "get goal")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	goal, err := s.goalsService.GetGoal(ctx, goalID, uid)
	if err != nil {
		writeGoalError(w, logger, "get goal", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, goal)
}

func (s *Server) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, goalID, ok := s.ownerAndGoal(w, r, "goal deletion")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	if err := s.goalsService.DeleteGoal(ctx, goalID, uid); err != nil {
		writeGoalError(w, logger, "goal deletion", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("goal deleted", zap.String("goal_id", goalID.String()))
}

func (s *Server) CompleteGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, goalID, ok := s.ownerAndGoal(w, r, "complete goal")
	if !ok {
		return
	}
	var req CompleteGoalRequest
	if err := httputil.DecodeJSON(r.Body, &req); err != nil && !errors.Is(err, io.EOF) {
		logger.Error("complete goal error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	result, err := s.goalsService.CompleteGoal(ctx, goalID, uid, req.CompletedAt)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrCompletionDuplicate):
			logger.Info("complete goal: duplicate completion")
			httputil.WriteErrorResponse(w, http.StatusConflict, "goal already completed for current window", nil)
		case errors.Is(err, errorvalues.ErrCompletionInFuture):
			logger.Error("complete goal error: completion in future")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "completion time is in the future", nil)
		default:
			writeGoalError(w, logger, "complete goal", err)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, CompleteGoalResponse{
		Kind:          result.Kind,
		Goal:          result.Goal,
		Streak:        result.Streak,
		Encouragement: result.Encouragement,
	})
	logger.Info("goal completed", zap.String("goal_id", goalID.String()), zap.String("kind", string(result.Kind)))
}

func (s *Server) EvaluateGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, goalID, ok := s.ownerAndGoal(w, r, "evaluate goal")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	result, err := s.goalsService.EvaluateGoal(ctx, goalID, uid)
	if err != nil {
		writeGoalError(w, logger, "evaluate goal", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, EvaluateGoalResponse{
		Goal:   result.Goal,
		Streak: result.Streak,
		Miss:   result.Miss,
	})
}

func (s *Server) GetStreak(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, goalID, ok := s.ownerAndGoal(w, r, "get streak")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	streak, err := s.goalsService.GetStreak(ctx, goalID, uid)
	if err != nil {
		writeGoalError(w, logger, "get streak", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, streak)
}

func (s *Server) GetCompletions(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, goalID, ok := s.ownerAndGoal(w, r, "get completions")
	if !ok {
		return
	}
	page, limit, pagination := getPagination(r)
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	completions, err := s.goalsService.GetCompletions(ctx, goalID, uid, pagination)
	if err != nil {
		writeGoalError(w, logger, "get completions", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetCompletionsResponse{
		GoalID:      goalID.String(),
		Page:        page,
		Limit:       limit,
		Completions: completions,
	})
}

func (s *Server) GetScores(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get scores error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	report, err := s.scoresService.GetUserScores(ctx, uid)
	if err != nil {
		logger.Error("get scores error: service error", zap.Error(err))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while calculating scores", nil)
		return
	}
	resp := GetScoresResponse{
		Habits:  make([]HabitScoreResponse, 0, len(report.Habits)),
		Overall: report.Overall,
	}
	for _, h := range report.Habits {
		resp.Habits = append(resp.Habits, HabitScoreResponse{
			Score:       h.Score,
			Normalized:  h.Normalized,
			Recognition: h.Recognition,
		})
	}
	httputil.WriteJSONResponse(w, http.StatusOK, resp)
}

func (s *Server) GetEncouragement(w http.ResponseWriter, r *http.Request) {
	d := entity.Difficulty(r.PathValue("difficulty"))
	switch d {
	case entity.DifficultyEasy, entity.DifficultyMedium, entity.DifficultyHard:
	default:
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "unknown difficulty", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, scoring.GetDifficultyEncouragement(d))
}

func (s *Server) UpdatePushToken(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update push token error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req UpdatePushTokenRequest
	if err = httputil.DecodeJSON(r.Body, &req); err != nil {
		logger.Error("update push token error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*5)
	defer cancel()
	if err = s.userService.UpdatePushToken(ctx, uid, req.Token); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			logger.Error("update push token error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
			return
		}
		logger.Error("update push token error: service error", zap.Error(err))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating push token", nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("push token updated")
}

// ownerAndGoal reads the caller and the {id} path value, answering the request itself on failure.
func (s *Server) ownerAndGoal(w http.ResponseWriter, r *http.Request, op string) (uuid.UUID, uuid.UUID, bool) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error(op + " error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return uuid.UUID{}, uuid.UUID{}, false
	}
	goalID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error(op + " error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid goal id in path value", nil)
		return uuid.UUID{}, uuid.UUID{}, false
	}
	return uid, goalID, true
}

func writeGoalError(w http.ResponseWriter, logger *zap.Logger, op string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrGoalNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
		logger.Error(op + " error: unexist goal")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "goal doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrStreakNotFound):
		logger.Error(op + " error: unexist streak")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "streak doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrGoalModified):
		logger.Error(op + " error: concurrent goal update")
		httputil.WriteErrorResponse(w, http.StatusConflict, "goal was changed by another request, retry", nil)
	case errors.Is(err, errorvalues.ErrInvalidSchedule):
		logger.Error(op+" error: stored goal has invalid schedule", zap.Error(err))
		httputil.WriteErrorResponse(w, http.StatusUnprocessableEntity, "goal schedule is invalid", err)
	default:
		logger.Error(op+" error: service error", zap.Error(err))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error", nil)
	}
}

// getPagination reads page and limit query params: limit in [1, 50] (10 by default), page from 1.
func getPagination(r *http.Request) (int, int, service.PaginationOpts) {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 || limit > 50 {
		limit = 10
	}
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	return page, limit, service.PaginationOpts{
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}
