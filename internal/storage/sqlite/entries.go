package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pribylovaa/go-lifelog/internal/models"
	"github.com/pribylovaa/go-lifelog/internal/storage"
)

const entryColumns = `
entry_date, quality_score, mood_score, energy_score, progress_score,
mood, activities, morning_plan, evening_reflection, photo_data, created_at, updated_at
`

// rowScanner — общий интерфейс *sql.Row и *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*models.DayEntry, error) {
	var (
		e                    models.DayEntry
		date                 string
		createdAt, updatedAt string
	)

	if err := row.Scan(
		&date,
		&e.QualityScore,
		&e.MoodScore,
		&e.EnergyScore,
		&e.ProgressScore,
		&e.Mood,
		&e.Activities,
		&e.MorningPlan,
		&e.EveningReflection,
		&e.PhotoData,
		&createdAt,
		&updatedAt,
	); err != nil {
		return nil, err
	}

	d, err := fromDate(date)
	if err != nil {
		return nil, fmt.Errorf("entry_date %q: %w", date, err)
	}

	e.Date = d
	e.CreatedAt = fromTS(createdAt)
	e.UpdatedAt = fromTS(updatedAt)

	return &e, nil
}

// EntryByDay возвращает запись за день или storage.ErrNotFoundEntry.
func (s *Storage) EntryByDay(ctx context.Context, day time.Time) (*models.DayEntry, error) {
	const op = "storage/sqlite/entries/EntryByDay"

	result, err := scanEntry(s.db.QueryRowContext(ctx,
		`SELECT `+entryColumns+` FROM day_entries WHERE entry_date = ?`, toDate(day),
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFoundEntry)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// ListEntries возвращает записи в диапазоне [From, To], отсортированные по дате.
// Даты хранятся как YYYY-MM-DD, поэтому строковое сравнение совпадает с хронологическим.
func (s *Storage) ListEntries(ctx context.Context, opts models.ListOptions) ([]models.DayEntry, error) {
	const op = "storage/sqlite/entries/ListEntries"

	var conds []string
	var args []any

	if opts.From != nil {
		conds = append(conds, "entry_date >= ?")
		args = append(args, toDate(*opts.From))
	}

	if opts.To != nil {
		conds = append(conds, "entry_date <= ?")
		args = append(args, toDate(*opts.To))
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

	rows, err := s.db.QueryContext(ctx, q, args...)
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

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}

	return entries, nil
}

// UpsertEntry обновляет запись за день на месте или создаёт её со значениями по умолчанию.
// Вся операция выполняется в одной транзакции; при ошибке изменения откатываются.
func (s *Storage) UpsertEntry(ctx context.Context, day time.Time, update storage.EntryUpdate) (*models.DayEntry, error) {
	const op = "storage/sqlite/entries/UpsertEntry"

	date := toDate(day)
	now := toTS(s.now())

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: begin: %w", op, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT OR IGNORE INTO day_entries (entry_date, created_at, updated_at) VALUES (?, ?, ?)`,
		date, now, now,
	); err != nil {
		return nil, fmt.Errorf("%s: insert: %w", op, err)
	}

	current, err := scanEntry(tx.QueryRowContext(ctx,
		`SELECT `+entryColumns+` FROM day_entries WHERE entry_date = ?`, date,
	))
	if err != nil {
		return nil, fmt.Errorf("%s: select: %w", op, err)
	}

	if err := update.Apply(current); err != nil {
		return nil, fmt.Errorf("%s: apply: %w", op, err)
	}

	result, err := scanEntry(tx.QueryRowContext(ctx, `
		UPDATE day_entries SET
			quality_score = ?,
			mood_score = ?,
			energy_score = ?,
			progress_score = ?,
			mood = ?,
			activities = ?,
			morning_plan = ?,
			evening_reflection = ?,
			photo_data = ?,
			updated_at = ?
		WHERE entry_date = ?
		RETURNING `+entryColumns,
		current.QualityScore,
		current.MoodScore,
		current.EnergyScore,
		current.ProgressScore,
		current.Mood,
		current.Activities,
		current.MorningPlan,
		current.EveningReflection,
		current.PhotoData,
		now,
		date,
	))
	if err != nil {
		return nil, fmt.Errorf("%s: update: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%s: commit: %w", op, err)
	}

	return result, nil
}

// DeleteAllEntries удаляет все записи дней.
func (s *Storage) DeleteAllEntries(ctx context.Context) (int64, error) {
	const op = "storage/sqlite/entries/DeleteAllEntries"

	res, err := s.db.ExecContext(ctx, `DELETE FROM day_entries`)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return n, nil
}
