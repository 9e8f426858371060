package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pribylovaa/go-lifelog/internal/models"
	"github.com/pribylovaa/go-lifelog/internal/storage"
)

const profileColumns = `birth_date, country, gender, is_smoker, has_chronic_condition, created_at`

func scanProfile(row *sql.Row) (*models.Profile, error) {
	var (
		profile             models.Profile
		birthDate           string
		isSmoker, isChronic int
		createdAt           string
	)

	if err := row.Scan(
		&birthDate,
		&profile.Country,
		&profile.Gender,
		&isSmoker,
		&isChronic,
		&createdAt,
	); err != nil {
		return nil, err
	}

	bd, err := fromDate(birthDate)
	if err != nil {
		return nil, fmt.Errorf("birth_date %q: %w", birthDate, err)
	}

	profile.BirthDate = bd
	profile.IsSmoker = isSmoker != 0
	profile.HasChronicCondition = isChronic != 0
	profile.CreatedAt = fromTS(createdAt)

	return &profile, nil
}

// Profile возвращает единственный профиль.
func (s *Storage) Profile(ctx context.Context) (*models.Profile, error) {
	const op = "storage/sqlite/profiles/Profile"

	result, err := scanProfile(s.db.QueryRowContext(ctx,
		`SELECT `+profileColumns+` FROM profile WHERE id = 1`,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFoundProfile)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// CreateProfile вставляет профиль, если его ещё нет.
// Ошибки: storage.ErrAlreadyExists при повторном создании.
func (s *Storage) CreateProfile(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	const op = "storage/sqlite/profiles/CreateProfile"

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO profile (id, birth_date, country, gender, is_smoker, has_chronic_condition, created_at)
		VALUES (1, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO NOTHING`,
		toDate(profile.BirthDate),
		profile.Country,
		profile.Gender,
		boolToInt(profile.IsSmoker),
		boolToInt(profile.HasChronicCondition),
		toTS(s.now()),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if n == 0 {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
	}

	result, err := s.Profile(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}
