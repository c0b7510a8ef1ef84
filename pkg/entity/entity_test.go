package entity_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/limbo/basetracker/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func TestCategoryColors(t *testing.T) {
	seen := map[string]entity.Category{}
	for _, c := range entity.Categories() {
		assert.True(t, c.Valid())
		color := c.Color()
		other, dup := seen[color]
		assert.False(t, dup, "%s shares color with %s", c, other)
		seen[color] = c
	}
	assert.Equal(t, "#f59e0b", entity.CategoryLearning.Color())
	assert.Equal(t, "Estudos", entity.CategoryLearning.Label())
	assert.False(t, entity.Category("Cooking").Valid())
	assert.Equal(t, entity.CategoryOther.Color(), entity.Category("Cooking").Color())
}

func TestHabitClone(t *testing.T) {
	h := entity.Habit{
		ID:             uuid.New(),
		Name:           "Meditar",
		Frequency:      entity.AllWeekdays(),
		CompletedDates: []string{"2024-06-01"},
	}
	c := h.Clone()
	c.CompletedDates[0] = "2024-06-02"
	c.Frequency[0] = entity.Sunday
	assert.Equal(t, "2024-06-01", h.CompletedDates[0])
	assert.Equal(t, entity.Monday, h.Frequency[0])
	assert.True(t, h.CompletedOn("2024-06-01"))
	assert.False(t, h.CompletedOn("2024-06-02"))
}

func TestStorageKey(t *testing.T) {
	u := entity.User{ID: "google-123", Email: "contato@dicasdabase.com"}
	assert.Equal(t, "contato@dicasdabase.com", u.StorageKey())
	u.Email = ""
	assert.Equal(t, "google-123", u.StorageKey())
}

func TestCategoryFromLabel(t *testing.T) {
	for _, c := range entity.Categories() {
		got, ok := entity.CategoryFromLabel(c.Label())
		assert.True(t, ok)
		assert.Equal(t, c, got)
	}
	_, ok := entity.CategoryFromLabel("Culinária")
	assert.False(t, ok)
}

func TestParseWeekday(t *testing.T) {
	testCases := []struct {
		Desc     string
		In       string
		Expected entity.Weekday
		Ok       bool
	}{
		{Desc: "english", In: "Wed", Expected: entity.Wednesday, Ok: true},
		{Desc: "pt-BR", In: "Qua", Expected: entity.Wednesday, Ok: true},
		{Desc: "pt-BR accented", In: "Sáb", Expected: entity.Saturday, Ok: true},
		{Desc: "unknown", In: "Funday"},
		{Desc: "empty", In: ""},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			got, ok := entity.ParseWeekday(tc.In)
			assert.Equal(t, tc.Ok, ok)
			assert.Equal(t, tc.Expected, got)
		})
	}
}
