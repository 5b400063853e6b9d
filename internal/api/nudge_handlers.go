package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/accountability/internal/error_values"
	"github.com/limbo/accountability/internal/service"
	"github.com/limbo/accountability/pkg/entity"
	"github.com/limbo/accountability/pkg/httputil"
	"go.uber.org/zap"
)

type SendNudgeRequest struct {
	ReceiverID      string `json:"receiver_id"`
	GoalID          string `json:"goal_id"`
	GoalDescription string `json:"goal_description"`
	// Display name shown to the receiver, the account name when empty
	SenderName string `json:"sender_name"`
}

type GetNudgesResponse struct {
	UserID string          `json:"uid"`
	Page   int             `json:"page"`
	Limit  int             `json:"limit"`
	Nudges []*entity.Nudge `json:"nudges"`
}

type NudgeCooldownResponse struct {
	GoalID           string `json:"goal_id"`
	CanSend          bool   `json:"can_send"`
	RemainingMinutes int    `json:"remaining_minutes"`
}

func (s *Server) SendNudge(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("send nudge error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req SendNudgeRequest
	if err = httputil.DecodeJSON(r.Body, &req); err != nil {
		logger.Error("send nudge error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	// Unparseable ids stay nil and are reported by validation.
	receiverID, _ := uuid.Parse(req.ReceiverID)
	goalID, _ := uuid.Parse(req.GoalID)
	senderName := strings.TrimSpace(req.SenderName)
	if senderName == "" {
		senderName = getUserNameFromContext(r)
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	id, err := s.nudgeService.SendNudge(ctx, service.SendNudgeRequest{
		SenderID:        uid,
		SenderName:      senderName,
		ReceiverID:      receiverID,
		GoalID:          goalID,
		GoalDescription: req.GoalDescription,
	})
	if err != nil {
		var cooldownErr *errorvalues.CooldownError
		switch {
		case errors.As(err, &cooldownErr):
			logger.Info("send nudge: cooldown active", zap.Int("remaining_minutes", cooldownErr.RemainingMinutes))
			httputil.WriteTooManyRequests(w, cooldownErr.Error(), cooldownErr.RemainingMinutes)
		case errors.Is(err, errorvalues.ErrSelfNudge):
			logger.Error("send nudge error: self nudge")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, errorvalues.ErrSelfNudge.Error(), nil)
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("send nudge error: invalid nudge", zap.Error(err))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid nudge", err)
		case errors.Is(err, errorvalues.ErrGoalNotFound):
			logger.Error("send nudge error: unexist goal")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "goal doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("send nudge error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		default:
			logger.Error("send nudge error: service error", zap.Error(err))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while sending nudge", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{"nudge_id": id.String()})
	logger.Info("nudge sent", zap.String("nudge_id", id.String()))
}

func (s *Server) GetNudges(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get nudges error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	page, limit, pagination := getPagination(r)
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	nudges, err := s.nudgeService.GetReceivedNudges(ctx, uid, pagination)
	if err != nil {
		logger.Error("getting nudges list error", zap.Error(err))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting nudges list", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetNudgesResponse{
		UserID: uid.String(),
		Page:   page,
		Limit:  limit,
		Nudges: nudges,
	})
}

func (s *Server) GetNudgeCooldowns(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get cooldowns error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*5)
	defer cancel()
	cooldowns, err := s.nudgeService.GetNudgeCooldowns(ctx, uid)
	if err != nil {
		logger.Error("get cooldowns error: service error", zap.Error(err))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting cooldowns", nil)
		return
	}
	resp := make(map[string]time.Time, len(cooldowns))
	for goalID, until := range cooldowns {
		resp[goalID.String()] = until
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"cooldowns": resp})
}

func (s *Server) GetNudgeCooldown(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get cooldown error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	goalID, err := uuid.Parse(r.PathValue("goalId"))
	if err != nil {
		logger.Error("get cooldown error: invalid goal id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid goal id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*5)
	defer cancel()
	remaining, err := s.nudgeService.GetRemainingCooldownMinutes(ctx, uid, goalID)
	if err != nil {
		logger.Error("get cooldown error: service error", zap.Error(err))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting cooldown", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, NudgeCooldownResponse{
		GoalID:           goalID.String(),
		CanSend:          remaining == 0,
		RemainingMinutes: remaining,
	})
}
