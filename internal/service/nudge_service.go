package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/accountability/internal/error_values"
	"github.com/limbo/accountability/internal/repository"
	"github.com/limbo/accountability/internal/tracker"
	"github.com/limbo/accountability/pkg/entity"
	"github.com/limbo/accountability/pkg/metrics"
	"go.uber.org/zap"
)

// NudgeCooldown is how long a sender waits before nudging the same goal again.
const NudgeCooldown = 60 * time.Minute

type NudgeServiceOptions struct {
	Clock  tracker.Clock
	Logger *zap.Logger
	// Nil disables push delivery
	Push PushSenderI
}

type NudgeService struct {
	nudgesRepo repository.NudgesRepositoryI
	usersRepo  repository.UsersRepositoryI
	cooldowns  repository.CooldownStoreI
	push       PushSenderI
	clock      tracker.Clock
	logger     *zap.Logger
}

func NewNudgeService(nudgesRepo repository.NudgesRepositoryI, usersRepo repository.UsersRepositoryI, cooldowns repository.CooldownStoreI, opts NudgeServiceOptions) *NudgeService {
	if nudgesRepo == nil || usersRepo == nil || cooldowns == nil {
		log.Fatal("on nudge service provided nil repos")
	}
	ns := &NudgeService{
		nudgesRepo: nudgesRepo,
		usersRepo:  usersRepo,
		cooldowns:  cooldowns,
		push:       opts.Push,
		clock:      opts.Clock,
		logger:     opts.Logger,
	}
	if ns.clock == nil {
		ns.clock = tracker.SystemClock()
	}
	if ns.logger == nil {
		ns.logger = zap.NewNop()
	}
	return ns
}

func (ns *NudgeService) CanSendNudge(ctx context.Context, userID, goalID uuid.UUID) (bool, error) {
	until, err := ns.cooldowns.Get(ctx, userID, goalID, ns.clock())
	if err != nil {
		return false, errors.New("cooldown store error: " + err.Error())
	}
	return until == nil, nil
}

func (ns *NudgeService) GetRemainingCooldownMinutes(ctx context.Context, userID, goalID uuid.UUID) (int, error) {
	now := ns.clock()
	until, err := ns.cooldowns.Get(ctx, userID, goalID, now)
	if err != nil {
		return 0, errors.New("cooldown store error: " + err.Error())
	}
	if until == nil {
		return 0, nil
	}
	return remainingMinutes(*until, now), nil
}

func (ns *NudgeService) SendNudge(ctx context.Context, req SendNudgeRequest) (uuid.UUID, error) {
	if req.SenderID != uuid.Nil && req.SenderID == req.ReceiverID {
		metrics.RecordNudgeRejected("self")
		return uuid.UUID{}, errorvalues.ErrSelfNudge
	}
	if err := validateStruct(req); err != nil {
		metrics.RecordNudgeRejected("validation")
		return uuid.UUID{}, err
	}
	now := ns.clock()
	until := now.Add(NudgeCooldown)
	acquired, active, err := ns.cooldowns.Acquire(ctx, req.SenderID, req.GoalID, now, until)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGoalNotFound) || errors.Is(err, errorvalues.ErrUserNotFound) {
			return uuid.UUID{}, err
		}
		return uuid.UUID{}, errors.New("cooldown store error: " + err.Error())
	}
	if !acquired {
		metrics.RecordNudgeRejected("cooldown")
		return uuid.UUID{}, &errorvalues.CooldownError{RemainingMinutes: max(remainingMinutes(active, now), 1)}
	}
	nudge := entity.Nudge{
		SenderID:        req.SenderID,
		SenderName:      req.SenderName,
		ReceiverID:      req.ReceiverID,
		GoalID:          req.GoalID,
		GoalDescription: req.GoalDescription,
		Timestamp:       now,
		CooldownUntil:   until,
	}
	id, err := ns.nudgesRepo.Create(ctx, &nudge)
	if err != nil {
		if rerr := ns.cooldowns.Release(ctx, req.SenderID, req.GoalID, until); rerr != nil {
			ns.logger.Error("releasing cooldown after failed nudge", zap.Error(rerr))
		}
		if errors.Is(err, errorvalues.ErrGoalNotFound) || errors.Is(err, errorvalues.ErrUserNotFound) {
			return uuid.UUID{}, err
		}
		return uuid.UUID{}, errors.New("nudges repository error: " + err.Error())
	}
	nudge.ID = id
	metrics.NudgesSent.Inc()
	ns.deliver(ctx, &nudge)
	return id, nil
}

func (ns *NudgeService) GetNudgeCooldowns(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]time.Time, error) {
	cooldowns, err := ns.cooldowns.ListActive(ctx, userID, ns.clock())
	if err != nil {
		return nil, errors.New("cooldown store error: " + err.Error())
	}
	return cooldowns, nil
}

func (ns *NudgeService) GetReceivedNudges(ctx context.Context, userID uuid.UUID, pagination PaginationOpts) ([]*entity.Nudge, error) {
	nudges, err := ns.nudgesRepo.GetByReceiverID(ctx, userID, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, errors.New("nudges repository error: " + err.Error())
	}
	return nudges, nil
}

// deliver sends the push for a stored nudge. Failures are logged and never returned.
func (ns *NudgeService) deliver(ctx context.Context, nudge *entity.Nudge) {
	logger := ns.logger.With(
		zap.String("nudge_id", nudge.ID.String()),
		zap.String("receiver_id", nudge.ReceiverID.String()),
	)
	if ns.push == nil {
		return
	}
	receiver, err := ns.usersRepo.FindByID(ctx, nudge.ReceiverID)
	if err != nil {
		metrics.RecordPushDelivery("failed")
		logger.Warn("push skipped: receiver lookup failed", zap.Error(err))
		return
	}
	if receiver.PushToken == "" {
		metrics.RecordPushDelivery("no_token")
		logger.Warn("push skipped: receiver has no push token")
		return
	}
	err = ns.push.SendPush(ctx, entity.PushNotification{
		Token: receiver.PushToken,
		Title: fmt.Sprintf("%s nudged you", nudge.SenderName),
		Body:  fmt.Sprintf("Don't forget: %s", nudge.GoalDescription),
		Data: map[string]string{
			"type":      "nudge",
			"nudge_id":  nudge.ID.String(),
			"goal_id":   nudge.GoalID.String(),
			"sender_id": nudge.SenderID.String(),
		},
	})
	if err != nil {
		metrics.RecordPushDelivery("failed")
		logger.Warn("push delivery failed", zap.Error(err))
		return
	}
	metrics.RecordPushDelivery("sent")
}

// remainingMinutes rounds up to whole minutes within (0, 60].
func remainingMinutes(until, now time.Time) int {
	if !until.After(now) {
		return 0
	}
	m := int(math.Ceil(until.Sub(now).Minutes()))
	return min(max(m, 1), int(NudgeCooldown/time.Minute))
}
