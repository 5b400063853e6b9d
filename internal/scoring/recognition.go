package scoring

import "github.com/limbo/accountability/pkg/entity"

type RecognitionLevel struct {
	Level            string `json:"level"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	Threshold        int    `json:"threshold"`
	IsHardHabitBonus bool   `json:"is_hard_habit_bonus"`
}

type Encouragement struct {
	CompletionMessage string `json:"completion_message"`
	StreakMessage     string `json:"streak_message"`
	MilestoneMessage  string `json:"milestone_message"`
}

type recognitionTier struct {
	level         string
	title         string
	description   string
	minPercentile int
	// A habit this strong earns the tier even without peers to outrank.
	minScore int
}

// Descending; the last tier always matches.
var recognitionTiers = []recognitionTier{
	{level: "legend", title: "Legend", description: "Leading every habit of this difficulty", minPercentile: 90, minScore: 2000},
	{level: "champion", title: "Champion", description: "Ahead of most habits of this difficulty", minPercentile: 75, minScore: 1000},
	{level: "achiever", title: "Achiever", description: "Above the middle of the pack", minPercentile: 50, minScore: 400},
	{level: "builder", title: "Builder", description: "Building steady momentum", minPercentile: 25, minScore: 100},
	{level: "starter", title: "Starter", description: "Every streak starts somewhere", minPercentile: 0, minScore: 0},
}

const (
	hardHabitIntensifier = "Elite"
	hardHabitDescription = " while taking on a hard habit"
)

var encouragements = map[entity.Difficulty]Encouragement{
	entity.DifficultyEasy: {
		CompletionMessage: "Nice work, another one done.",
		StreakMessage:     "You're keeping it going, keep showing up.",
		MilestoneMessage:  "Milestone reached, good job!",
	},
	entity.DifficultyMedium: {
		CompletionMessage: "Great job, that one took real effort!",
		StreakMessage:     "Your streak is getting strong, impressive consistency!",
		MilestoneMessage:  "Fantastic milestone, you're really committed!",
	},
	entity.DifficultyHard: {
		CompletionMessage: "Incredible! You crushed one of the toughest habits out there!",
		StreakMessage:     "Unstoppable! Your streak on a hard habit is truly extraordinary!",
		MilestoneMessage:  "Legendary milestone! Only the most dedicated ever get here!",
	},
}

// GetRecognitionLevel picks the tier from the habit's percentile within its difficulty
// group, or from its adjusted score when that is higher. Hard habits always get the
// intensified title.
func GetRecognitionLevel(score entity.HabitScore, normalized entity.NormalizedScore) RecognitionLevel {
	tier := recognitionTiers[len(recognitionTiers)-1]
	for _, t := range recognitionTiers {
		if normalized.Percentile >= t.minPercentile || score.AdjustedScore >= t.minScore {
			tier = t
			break
		}
	}
	rl := RecognitionLevel{
		Level:       tier.level,
		Title:       tier.title,
		Description: tier.description,
		Threshold:   tier.minPercentile,
	}
	if score.Difficulty == entity.DifficultyHard {
		rl.IsHardHabitBonus = true
		rl.Title = hardHabitIntensifier + " " + tier.title
		rl.Description += hardHabitDescription
	}
	return rl
}

// GetDifficultyEncouragement falls back to the easy messages for unknown difficulties.
func GetDifficultyEncouragement(d entity.Difficulty) Encouragement {
	e, ok := encouragements[d]
	if !ok {
		return encouragements[entity.DifficultyEasy]
	}
	return e
}
