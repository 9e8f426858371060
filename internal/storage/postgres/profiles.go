package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pribylovaa/go-lifelog/internal/models"
	"github.com/pribylovaa/go-lifelog/internal/storage"
)

const profileColumns = `
birth_date, country, gender, is_smoker, has_chronic_condition, created_at
`

func scanProfile(row pgx.Row) (*models.Profile, error) {
	var profile models.Profile

	if err := row.Scan(
		&profile.BirthDate,
		&profile.Country,
		&profile.Gender,
		&profile.IsSmoker,
		&profile.HasChronicCondition,
		&profile.CreatedAt,
	); err != nil {
		return nil, err
	}

	profile.BirthDate = models.Day(profile.BirthDate)
	profile.CreatedAt = profile.CreatedAt.UTC()

	return &profile, nil
}

// Profile возвращает единственный профиль.
// Ошибки: storage.ErrNotFoundProfile, либо ошибка выполнения запроса.
func (s *Storage) Profile(ctx context.Context) (*models.Profile, error) {
	const op = "storage/postgres/profiles/Profile"

	q := `SELECT ` + profileColumns + ` FROM profile WHERE id = 1`

	result, err := scanProfile(s.db.QueryRow(ctx, q))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFoundProfile)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// CreateProfile вставляет профиль в строку id = 1.
// Ошибки: storage.ErrAlreadyExists, если профиль уже есть; иные — как есть.
func (s *Storage) CreateProfile(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	const op = "storage/postgres/profiles/CreateProfile"

	q := `
	INSERT INTO profile (id, birth_date, country, gender, is_smoker, has_chronic_condition)
	VALUES (1, $1, $2, $3, $4, $5)
	RETURNING
	` + profileColumns

	row := s.db.QueryRow(ctx, q,
		models.Day(profile.BirthDate),
		profile.Country,
		profile.Gender,
		profile.IsSmoker,
		profile.HasChronicCondition,
	)

	result, err := scanProfile(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}
