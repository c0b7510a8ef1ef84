package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Photo string `json:"photo,omitempty"`
}

// StorageKey selects the habit/task collection owned by the user.
func (u *User) StorageKey() string {
	if u.Email != "" {
		return u.Email
	}
	return u.ID
}

type Category string

const (
	CategoryHealth       Category = "Health"
	CategoryProductivity Category = "Productivity"
	CategoryMindfulness  Category = "Mindfulness"
	CategoryFitness      Category = "Fitness"
	CategoryLearning     Category = "Learning"
	CategorySocial       Category = "Social"
	CategoryOther        Category = "Other"
)

var categoryColors = map[Category]string{
	CategoryHealth:       "#ef4444",
	CategoryProductivity: "#3b82f6",
	CategoryMindfulness:  "#8b5cf6",
	CategoryFitness:      "#10b981",
	CategoryLearning:     "#f59e0b",
	CategorySocial:       "#ec4899",
	CategoryOther:        "#64748b",
}

var categoryLabels = map[Category]string{
	CategoryHealth:       "Saúde",
	CategoryProductivity: "Produtividade",
	CategoryMindfulness:  "Mente",
	CategoryFitness:      "Fitness",
	CategoryLearning:     "Estudos",
	CategorySocial:       "Social",
	CategoryOther:        "Outros",
}

func Categories() []Category {
	return []Category{
		CategoryHealth,
		CategoryProductivity,
		CategoryMindfulness,
		CategoryFitness,
		CategoryLearning,
		CategorySocial,
		CategoryOther,
	}
}

func (c Category) Valid() bool {
	_, ok := categoryColors[c]
	return ok
}

// Color is fixed per category. Unknown categories get the Other color.
func (c Category) Color() string {
	if color, ok := categoryColors[c]; ok {
		return color
	}
	return categoryColors[CategoryOther]
}

// CategoryFromLabel maps a pt-BR display label, as older documents stored it,
// back to its Category.
func CategoryFromLabel(label string) (Category, bool) {
	for c, l := range categoryLabels {
		if l == label {
			return c, true
		}
	}
	return "", false
}

func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

type Weekday string

const (
	Monday    Weekday = "Mon"
	Tuesday   Weekday = "Tue"
	Wednesday Weekday = "Wed"
	Thursday  Weekday = "Thu"
	Friday    Weekday = "Fri"
	Saturday  Weekday = "Sat"
	Sunday    Weekday = "Sun"
)

var weekdayLabels = map[string]Weekday{
	"Seg": Monday,
	"Ter": Tuesday,
	"Qua": Wednesday,
	"Qui": Thursday,
	"Sex": Friday,
	"Sáb": Saturday,
	"Sab": Saturday,
	"Dom": Sunday,
}

// ParseWeekday accepts both the English short names and the pt-BR ones.
func ParseWeekday(s string) (Weekday, bool) {
	if d, ok := weekdayLabels[s]; ok {
		return d, true
	}
	d := Weekday(s)
	if slices.Contains(AllWeekdays(), d) {
		return d, true
	}
	return "", false
}

// AllWeekdays lists the week starting on Monday.
func AllWeekdays() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

type Habit struct {
	ID             uuid.UUID `json:"id" validate:"required"`
	Name           string    `json:"name" validate:"notblank"`
	Category       Category  `json:"category" validate:"category"`
	Frequency      []Weekday `json:"frequency"`
	Streak         int       `json:"streak"`
	CompletedDates []string  `json:"completedDates"`
	LastCompleted  string    `json:"lastCompleted,omitempty" validate:"omitempty,datekey"`
	ReminderTime   string    `json:"reminderTime,omitempty" validate:"omitempty,hhmm"`
	CreatedAt      time.Time `json:"createdAt"`
	Color          string    `json:"color"`
}

// Clone returns a copy that shares no slices with h.
func (h *Habit) Clone() Habit {
	c := *h
	c.Frequency = slices.Clone(h.Frequency)
	c.CompletedDates = slices.Clone(h.CompletedDates)
	return c
}

func (h *Habit) CompletedOn(date string) bool {
	return slices.Contains(h.CompletedDates, date)
}

type Task struct {
	ID          uuid.UUID `json:"id" validate:"required"`
	Title       string    `json:"title" validate:"notblank"`
	IsCompleted bool      `json:"isCompleted"`
	DueDate     string    `json:"dueDate,omitempty" validate:"omitempty,datekey"`
}

type HabitStats struct {
	ID            uuid.UUID `json:"habit_id"`
	TotalChecks   int       `json:"total_checks"`
	Streak        int       `json:"streak"`
	CurrentStreak int       `json:"current_run"`
	MaxStreak     int       `json:"longest_run"`
	LastCheck     string    `json:"last_check,omitempty"`
}

type CompletionPoint struct {
	Name        string `json:"name"`
	Completions int    `json:"completions"`
	Color       string `json:"color"`
}

type Summary struct {
	Points       []CompletionPoint `json:"points"`
	MaxStreak    int               `json:"max_streak"`
	ActiveHabits int               `json:"active_habits"`
}
