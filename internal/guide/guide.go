// guide строит ежедневный гайд: короткий текст с рекомендациями на день,
// основанный на вчерашней записи и недавней истории.
//
// guide.go — контракт Generator и входной Context;
// templates.go — детерминированный генератор по правилам;
// genai.go — генератор поверх google.golang.org/genai;
// fallback.go — композиция «основной генератор, иначе запасной».
package guide

import (
	"context"
	"errors"
	"time"

	"github.com/pribylovaa/go-lifelog/internal/models"
)

// ErrEmptyOutput — генератор вернул пустой текст.
var ErrEmptyOutput = errors.New("empty guide")

// Context — всё, что генератор знает о дне.
type Context struct {
	// Day — день, для которого строится гайд (усечён до дня).
	Day time.Time
	// Previous — последняя запись до Day, nil если записей нет.
	Previous *models.DayEntry
	// Recent — записи за последние дни до Day включительно, по возрастанию даты.
	Recent []models.DayEntry
	// Streak — текущая серия дней с записями на Day.
	Streak int
}

// Generator — источник текста гайда.
type Generator interface {
	Generate(ctx context.Context, in Context) (string, error)
}

// GeneratorFunc позволяет использовать функцию как Generator.
type GeneratorFunc func(ctx context.Context, in Context) (string, error)

func (f GeneratorFunc) Generate(ctx context.Context, in Context) (string, error) {
	return f(ctx, in)
}
