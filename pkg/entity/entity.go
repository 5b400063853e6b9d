package entity

import (
	"time"

	"github.com/google/uuid"
)

type Frequency string

const (
	FrequencyDaily      Frequency = "daily"
	FrequencyWeekly     Frequency = "weekly"
	FrequencyThreeTimes Frequency = "3x_a_week"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

type GoalType string

const (
	GoalTypeFlexible  GoalType = "flexible"
	GoalTypeTimeBound GoalType = "time-bound"
)

type Status string

const (
	StatusGreen  Status = "Green"
	StatusYellow Status = "Yellow"
	StatusRed    Status = "Red"
)

type CompletionKind string

const (
	CompletionDuplicate CompletionKind = "duplicate"
	CompletionOnTime    CompletionKind = "on_time"
	CompletionLate      CompletionKind = "late"
)

type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	PushToken string    `json:"-"`
}

type Goal struct {
	ID                   uuid.UUID      `json:"id"`
	OwnerID              uuid.UUID      `json:"owner_id"`
	Description          string         `json:"description"`
	Frequency            Frequency      `json:"frequency"`
	TargetDays           []time.Weekday `json:"target_days"`
	Difficulty           Difficulty     `json:"difficulty"`
	Type                 GoalType       `json:"type"`
	TargetTime           string         `json:"target_time,omitempty"`
	LatestCompletionDate *time.Time     `json:"latest_completion_date,omitempty"`
	LatestCompletionKind CompletionKind `json:"latest_completion_kind,omitempty"`
	CurrentStatus        Status         `json:"current_status"`
	NextDeadline         time.Time      `json:"next_deadline"`
	RedSince             *time.Time     `json:"red_since,omitempty"`
	IsShared             bool           `json:"is_shared"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
}

type Milestone struct {
	Days       int       `json:"days"`
	AchievedAt time.Time `json:"achieved_at"`
}

type HabitStreak struct {
	HabitID            uuid.UUID   `json:"habit_id"`
	UserID             uuid.UUID   `json:"user_id"`
	CurrentStreak      int         `json:"current_streak"`
	BestStreak         int         `json:"best_streak"`
	LastCompletionDate *time.Time  `json:"last_completion_date,omitempty"`
	StreakStartDate    *time.Time  `json:"streak_start_date,omitempty"`
	FreezesAvailable   int         `json:"freezes_available"`
	FreezesUsed        int         `json:"freezes_used"`
	Milestones         []Milestone `json:"milestones"`
}

type Completion struct {
	ID          int            `json:"id"`
	GoalID      uuid.UUID      `json:"goal_id"`
	UserID      uuid.UUID      `json:"user_id"`
	CompletedAt time.Time      `json:"completed_at"`
	Kind        CompletionKind `json:"kind"`
}

type HabitScore struct {
	HabitID          uuid.UUID  `json:"habit_id"`
	RawScore         int        `json:"raw_score"`
	AdjustedScore    int        `json:"adjusted_score"`
	Difficulty       Difficulty `json:"difficulty"`
	Multiplier       float64    `json:"multiplier"`
	StreakLength     int        `json:"streak_length"`
	TotalCompletions int        `json:"total_completions"`
}

type NormalizedScore struct {
	HabitID         uuid.UUID `json:"habit_id"`
	NormalizedScore float64   `json:"normalized_score"`
	Percentile      int       `json:"percentile"`
	Rank            int       `json:"rank"`
	TotalHabits     int       `json:"total_habits"`
}

type Nudge struct {
	ID              uuid.UUID `json:"id"`
	SenderID        uuid.UUID `json:"sender_id"`
	SenderName      string    `json:"sender_name"`
	ReceiverID      uuid.UUID `json:"receiver_id"`
	GoalID          uuid.UUID `json:"goal_id"`
	GoalDescription string    `json:"goal_description"`
	Timestamp       time.Time `json:"timestamp"`
	CooldownUntil   time.Time `json:"cooldown_until"`
	CreatedAt       time.Time `json:"created_at"`
}

type PushNotification struct {
	Token string            `json:"token"`
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}
