package advice_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/limbo/basetracker/internal/advice"
	"github.com/limbo/basetracker/pkg/entity"
	"github.com/stretchr/testify/assert"
)

type generatorFunc func(ctx context.Context, habits []entity.Habit, tasks []entity.Task) (string, error)

func (f generatorFunc) Generate(ctx context.Context, habits []entity.Habit, tasks []entity.Task) (string, error) {
	return f(ctx, habits, tasks)
}

func TestAdvise(t *testing.T) {
	long := strings.Repeat("ã", 320)
	testCases := []struct {
		Desc      string
		Generator advice.Generator
		Expected  string
	}{
		{
			Desc: "success",
			Generator: generatorFunc(func(context.Context, []entity.Habit, []entity.Task) (string, error) {
				return "  Beba um copo de água ao acordar.  ", nil
			}),
			Expected: "Beba um copo de água ao acordar.",
		},
		{
			Desc: "generator error",
			Generator: generatorFunc(func(context.Context, []entity.Habit, []entity.Task) (string, error) {
				return "", errors.New("quota exceeded")
			}),
			Expected: advice.FallbackText,
		},
		{
			Desc: "generator panics",
			Generator: generatorFunc(func(context.Context, []entity.Habit, []entity.Task) (string, error) {
				panic("boom")
			}),
			Expected: advice.FallbackText,
		},
		{
			Desc: "empty answer",
			Generator: generatorFunc(func(context.Context, []entity.Habit, []entity.Task) (string, error) {
				return "", nil
			}),
			Expected: advice.EmptyText,
		},
		{
			Desc: "long answer truncated",
			Generator: generatorFunc(func(context.Context, []entity.Habit, []entity.Task) (string, error) {
				return long, nil
			}),
			Expected: strings.Repeat("ã", 297) + "...",
		},
		{
			Desc:      "no api key",
			Generator: advice.StaticGenerator{},
			Expected:  advice.FallbackText,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			coach := advice.NewCoach(tc.Generator, time.Second, nil)
			var got string
			assert.NotPanics(t, func() {
				got = coach.Advise(context.Background(), []entity.Habit{{Name: "Ler"}}, nil)
			})
			assert.Equal(t, tc.Expected, got)
		})
	}
}

func TestAdviseTimeout(t *testing.T) {
	slow := generatorFunc(func(ctx context.Context, _ []entity.Habit, _ []entity.Task) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	})
	coach := advice.NewCoach(slow, 20*time.Millisecond, nil)
	start := time.Now()
	assert.Equal(t, advice.FallbackText, coach.Advise(context.Background(), nil, nil))
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestTruncate(t *testing.T) {
	exact := strings.Repeat("a", 300)
	assert.Equal(t, exact, advice.Truncate(exact))
	over := advice.Truncate(strings.Repeat("a", 301))
	assert.Equal(t, 300, utf8.RuneCountInString(over))
	assert.True(t, strings.HasSuffix(over, "..."))
}
