package scoring_test

import (
	"testing"

	"github.com/limbo/accountability/internal/scoring"
	"github.com/limbo/accountability/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func TestGetRecognitionLevel(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		Desc       string
		Score      entity.HabitScore
		Percentile int
		WantLevel  string
		WantBonus  bool
	}{
		{Desc: "top percentile", Score: entity.HabitScore{AdjustedScore: 50, Difficulty: entity.DifficultyEasy}, Percentile: 95, WantLevel: "legend"},
		{Desc: "champion", Score: entity.HabitScore{AdjustedScore: 50, Difficulty: entity.DifficultyMedium}, Percentile: 75, WantLevel: "champion"},
		{Desc: "achiever", Score: entity.HabitScore{AdjustedScore: 50, Difficulty: entity.DifficultyEasy}, Percentile: 60, WantLevel: "achiever"},
		{Desc: "builder", Score: entity.HabitScore{AdjustedScore: 50, Difficulty: entity.DifficultyEasy}, Percentile: 25, WantLevel: "builder"},
		{Desc: "starter", Score: entity.HabitScore{AdjustedScore: 0, Difficulty: entity.DifficultyEasy}, Percentile: 10, WantLevel: "starter"},
		{Desc: "strong score without peers", Score: entity.HabitScore{AdjustedScore: 2500, Difficulty: entity.DifficultyEasy}, Percentile: 0, WantLevel: "legend"},
		{Desc: "hard bonus at zero", Score: entity.HabitScore{AdjustedScore: 0, Difficulty: entity.DifficultyHard}, Percentile: 0, WantLevel: "starter", WantBonus: true},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			rl := scoring.GetRecognitionLevel(tc.Score, entity.NormalizedScore{Percentile: tc.Percentile})
			assert.Equal(t, tc.WantLevel, rl.Level)
			assert.Equal(t, tc.WantBonus, rl.IsHardHabitBonus)
			assert.NotEmpty(t, rl.Title)
			assert.NotEmpty(t, rl.Description)
		})
	}
}

func TestHardHabitTitle(t *testing.T) {
	t.Parallel()
	ns := entity.NormalizedScore{Percentile: 80}
	easy := scoring.GetRecognitionLevel(entity.HabitScore{AdjustedScore: 300, Difficulty: entity.DifficultyEasy}, ns)
	hard := scoring.GetRecognitionLevel(entity.HabitScore{AdjustedScore: 300, Difficulty: entity.DifficultyHard}, ns)
	assert.Equal(t, easy.Level, hard.Level)
	assert.NotEqual(t, easy.Title, hard.Title)
	assert.Contains(t, hard.Title, "Elite")
	assert.NotContains(t, easy.Title, "Elite")
	assert.False(t, easy.IsHardHabitBonus)
	assert.True(t, hard.IsHardHabitBonus)
}

func TestGetDifficultyEncouragement(t *testing.T) {
	t.Parallel()
	for _, d := range []entity.Difficulty{entity.DifficultyEasy, entity.DifficultyMedium, entity.DifficultyHard} {
		e := scoring.GetDifficultyEncouragement(d)
		assert.NotEmpty(t, e.CompletionMessage, d)
		assert.NotEmpty(t, e.StreakMessage, d)
		assert.NotEmpty(t, e.MilestoneMessage, d)
	}
	assert.Equal(t, scoring.GetDifficultyEncouragement(entity.DifficultyEasy), scoring.GetDifficultyEncouragement("unknown"))
	assert.NotEqual(t,
		scoring.GetDifficultyEncouragement(entity.DifficultyEasy).CompletionMessage,
		scoring.GetDifficultyEncouragement(entity.DifficultyHard).CompletionMessage)
}
