package service

import (
	"github.com/limbo/basetracker/pkg/entity"
)

const chartNameLimit = 10

// PerHabitCounts pairs each habit's display name with its completion count, in collection order.
func PerHabitCounts(habits []entity.Habit) []entity.CompletionPoint {
	points := make([]entity.CompletionPoint, 0, len(habits))
	for _, h := range habits {
		points = append(points, entity.CompletionPoint{
			Name:        chartName(h.Name),
			Completions: len(h.CompletedDates),
			Color:       h.Color,
		})
	}
	return points
}

func chartName(name string) string {
	runes := []rune(name)
	if len(runes) > chartNameLimit {
		return string(runes[:chartNameLimit]) + "..."
	}
	return name
}

func MaxStreak(habits []entity.Habit) int {
	best := 0
	for _, h := range habits {
		best = max(best, h.Streak)
	}
	return best
}

func ActiveCount(habits []entity.Habit) int {
	return len(habits)
}

func Summarize(habits []entity.Habit) entity.Summary {
	return entity.Summary{
		Points:       PerHabitCounts(habits),
		MaxStreak:    MaxStreak(habits),
		ActiveHabits: ActiveCount(habits),
	}
}
