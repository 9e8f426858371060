package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/pribylovaa/go-lifelog/internal/models"
	"github.com/pribylovaa/go-lifelog/internal/storage"
)

// entryColumns — единый список колонок day_entries для SELECT/RETURNING.
const entryColumns = `
entry_date, quality_score, mood_score, energy_score, progress_score,
mood, activities, morning_plan, evening_reflection, photo_data, created_at, updated_at
`

// scanEntry сканирует строку записи (SMALLINT -> int).
func scanEntry(row pgx.Row) (*models.DayEntry, error) {
	var e models.DayEntry
	var quality, mood, energy, progress int16

	if err := row.Scan(
		&e.Date,
		&quality,
		&mood,
		&energy,
		&progress,
		&e.Mood,
		&e.Activities,
		&e.MorningPlan,
		&e.EveningReflection,
		&e.PhotoData,
		&e.CreatedAt,
		&e.UpdatedAt,
	); err != nil {
		return nil, err
	}

	e.Date = models.Day(e.Date)
	e.QualityScore = int(quality)
	e.MoodScore = int(mood)
	e.EnergyScore = int(energy)
	e.ProgressScore = int(progress)
	e.CreatedAt = e.CreatedAt.UTC()
	e.UpdatedAt = e.UpdatedAt.UTC()

	return &e, nil
}

// EntryByDay возвращает запись за день.
// Ошибки: storage.ErrNotFoundEntry, либо ошибка выполнения запроса.
func (s *Storage) EntryByDay(ctx context.Context, day time.Time) (*models.DayEntry, error) {
	const op = "storage/postgres/entries/EntryByDay"

	q := `SELECT ` + entryColumns + ` FROM day_entries WHERE entry_date = $1`

	result, err := scanEntry(s.db.QueryRow(ctx, q, models.Day(day)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFoundEntry)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// ListEntries возвращает записи в диапазоне [From, To] (границы опциональны),
// отсортированные по дате в направлении opts.Order.
func (s *Storage) ListEntries(ctx context.Context, opts models.ListOptions) ([]models.DayEntry, error) {
	const op = "storage/postgres/entries/ListEntries"

	var conds []string
	var args []any

	if opts.From != nil {
		args = append(args, models.Day(*opts.From))
		conds = append(conds, fmt.Sprintf("entry_date >= $%d", len(args)))
	}

	if opts.To != nil {
		args = append(args, models.Day(*opts.To))
		conds = append(conds, fmt.Sprintf("entry_date <= $%d", len(args)))
	}

	q := `SELECT ` + entryColumns + ` FROM day_entries`
	if len(conds) > 0 {
		q += ` WHERE ` + strings.Join(conds, " AND ")
	}

	if opts.Order == models.OrderDesc {
		q += ` ORDER BY entry_date DESC`
	} else {
		q += ` ORDER BY entry_date ASC`
	}

	rows, err := s.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	entries := make([]models.DayEntry, 0)
	for rows.Next() {
		e, scanErr := scanEntry(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, scanErr)
		}

		entries = append(entries, *e)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, rows.Err())
	}

	return entries, nil
}

// UpsertEntry обновляет запись за день на месте или создаёт её.
//
// Транзакция:
//  1. INSERT ... ON CONFLICT DO NOTHING — строка со значениями по умолчанию, если записи нет;
//  2. SELECT ... FOR UPDATE — блокировка строки;
//  3. применение update и UPDATE ... RETURNING (created_at не меняется, updated_at = now()).
//
// Любая ошибка откатывает транзакцию целиком.
func (s *Storage) UpsertEntry(ctx context.Context, day time.Time, update storage.EntryUpdate) (*models.DayEntry, error) {
	const op = "storage/postgres/entries/UpsertEntry"

	day = models.Day(day)

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: begin: %w", op, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx,
		`INSERT INTO day_entries (entry_date) VALUES ($1) ON CONFLICT (entry_date) DO NOTHING`, day,
	); err != nil {
		return nil, fmt.Errorf("%s: insert: %w", op, err)
	}

	current, err := scanEntry(tx.QueryRow(ctx,
		`SELECT `+entryColumns+` FROM day_entries WHERE entry_date = $1 FOR UPDATE`, day,
	))
	if err != nil {
		return nil, fmt.Errorf("%s: select: %w", op, err)
	}

	if err := update.Apply(current); err != nil {
		return nil, fmt.Errorf("%s: apply: %w", op, err)
	}

	result, err := scanEntry(tx.QueryRow(ctx, `
	UPDATE day_entries SET
		quality_score = $2,
		mood_score = $3,
		energy_score = $4,
		progress_score = $5,
		mood = $6,
		activities = $7,
		morning_plan = $8,
		evening_reflection = $9,
		photo_data = $10,
		updated_at = now()
	WHERE entry_date = $1
	RETURNING `+entryColumns,
		day,
		int16(current.QualityScore),
		int16(current.MoodScore),
		int16(current.EnergyScore),
		int16(current.ProgressScore),
		current.Mood,
		current.Activities,
		current.MorningPlan,
		current.EveningReflection,
		current.PhotoData,
	))
	if err != nil {
		return nil, fmt.Errorf("%s: update: %w", op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: commit: %w", op, err)
	}

	return result, nil
}

// DeleteAllEntries удаляет все записи дней.
func (s *Storage) DeleteAllEntries(ctx context.Context) (int64, error) {
	const op = "storage/postgres/entries/DeleteAllEntries"

	tag, err := s.db.Exec(ctx, `DELETE FROM day_entries`)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return tag.RowsAffected(), nil
}
