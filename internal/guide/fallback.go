package guide

import (
	"context"
	"strings"
	"time"

	"github.com/pribylovaa/go-lifelog/internal/pkg/log"
)

type fallback struct {
	primary  Generator
	fallback Generator
	budget   time.Duration
}

// WithFallback возвращает генератор, который сначала вызывает primary с бюджетом budget
// (budget <= 0 — без отдельного дедлайна), а при ошибке или пустом ответе — fallback.
// primary == nil означает, что используется только fallback.
func WithFallback(primary, secondary Generator, budget time.Duration) Generator {
	if primary == nil {
		return secondary
	}

	return &fallback{primary: primary, fallback: secondary, budget: budget}
}

func (f *fallback) Generate(ctx context.Context, in Context) (string, error) {
	const op = "guide/fallback/Generate"

	pctx := ctx
	if f.budget > 0 {
		var cancel context.CancelFunc
		pctx, cancel = context.WithTimeout(ctx, f.budget)
		defer cancel()
	}

	text, err := f.primary.Generate(pctx, in)
	if err == nil && strings.TrimSpace(text) != "" {
		return text, nil
	}

	log.From(ctx).Warn("primary guide generator failed, using fallback", "op", op, "err", err)

	return f.fallback.Generate(ctx, in)
}
