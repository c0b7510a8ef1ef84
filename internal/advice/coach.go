package advice

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	errorvalues "github.com/limbo/basetracker/internal/error_values"
	"github.com/limbo/basetracker/pkg/entity"
)

const (
	FallbackText = "Foque no progresso, não na perfeição. Sua base define seu topo."
	EmptyText    = "Sua disciplina é sua maior aliada."

	DefaultTimeout = 15 * time.Second

	maxRunes = 300
	cutRunes = 297
)

// Coach wraps a Generator so that callers always get displayable text.
type Coach struct {
	generator Generator
	timeout   time.Duration
	logger    *slog.Logger
}

func NewCoach(generator Generator, timeout time.Duration, logger *slog.Logger) *Coach {
	if generator == nil {
		generator = StaticGenerator{}
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Coach{
		generator: generator,
		timeout:   timeout,
		logger:    logger,
	}
}

// Advise never fails: any generator error, panic or timeout yields FallbackText.
func (c *Coach) Advise(ctx context.Context, habits []entity.Habit, tasks []entity.Task) string {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	text, err := c.generate(ctx, habits, tasks)
	if err != nil {
		c.logger.Warn("advice generation failed", slog.String("error", err.Error()))
		return FallbackText
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return EmptyText
	}
	return Truncate(text)
}

func (c *Coach) generate(ctx context.Context, habits []entity.Habit, tasks []entity.Task) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("advice generator panicked: %v", r)
		}
	}()
	return c.generator.Generate(ctx, habits, tasks)
}

// Truncate cuts text longer than 300 runes to 297 runes followed by "...".
func Truncate(text string) string {
	runes := []rune(text)
	if len(runes) <= maxRunes {
		return text
	}
	return string(runes[:cutRunes]) + "..."
}

// StaticGenerator is used when no API key is configured.
type StaticGenerator struct{}

func (StaticGenerator) Generate(context.Context, []entity.Habit, []entity.Task) (string, error) {
	return "", errorvalues.ErrAdviceUnavailable
}
