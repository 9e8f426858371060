package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pribylovaa/go-lifelog/internal/expectancy"
	"github.com/pribylovaa/go-lifelog/internal/models"
	"github.com/pribylovaa/go-lifelog/internal/pkg/log"
	"github.com/pribylovaa/go-lifelog/internal/storage"
)

// Входные структуры сервисного слоя.
type CreateProfileInput struct {
	BirthDate           time.Time
	Country             string
	Gender              string
	IsSmoker            bool
	HasChronicCondition bool
}

// LifeExpectancy — оценка и прогресс относительно её среднего.
type LifeExpectancy struct {
	Range    expectancy.Range
	Progress expectancy.Progress
}

// Profile возвращает единственный профиль.
//
// Поведение:
//   - профиль ещё не создан — ErrNotFound;
//   - ошибки стораджа — ErrInternal.
func (s *Service) Profile(ctx context.Context) (*models.Profile, error) {
	const op = "service/profile/Profile"

	lg := log.From(ctx).With("op", op)

	result, err := s.profilesStorage.Profile(ctx)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFoundProfile):
			lg.Warn("profile not found")

			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			return nil, fmt.Errorf("%s: %w", op, storageErr(lg, "storage error on Profile", err))
		}
	}

	return result, nil
}

// CreateProfile создаёт профиль при онбординге. Профиль может быть только один.
//
// Валидация:
//   - дата рождения задана и не в будущем;
//   - country и gender нормализуются (TrimSpace).
//
// Поведение:
//   - профиль уже есть — ErrAlreadyExists;
//   - иные ошибки стораджа — ErrInternal.
func (s *Service) CreateProfile(ctx context.Context, input CreateProfileInput) (*models.Profile, error) {
	const op = "service/profile/CreateProfile"

	lg := log.From(ctx).With("op", op)

	if input.BirthDate.IsZero() {
		lg.Warn("invalid argument: empty birth_date")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	birth := models.Day(input.BirthDate)
	if birth.After(s.today()) {
		lg.Warn("invalid argument: birth_date in the future", "birth_date", birth.Format(models.DateLayout))

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	profile := &models.Profile{
		BirthDate:           birth,
		Country:             strings.TrimSpace(input.Country),
		Gender:              strings.TrimSpace(input.Gender),
		IsSmoker:            input.IsSmoker,
		HasChronicCondition: input.HasChronicCondition,
	}

	result, err := s.profilesStorage.CreateProfile(ctx, profile)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrAlreadyExists):
			lg.Warn("profile already exists")

			return nil, fmt.Errorf("%s: %w", op, ErrAlreadyExists)
		default:
			return nil, fmt.Errorf("%s: %w", op, storageErr(lg, "storage error on CreateProfile", err))
		}
	}

	lg.Info("profile created")

	return result, nil
}

// LifeExpectancy оценивает ожидаемую продолжительность жизни по профилю
// и положение «прогресс-бара» на день today (нулевое значение — сегодня).
func (s *Service) LifeExpectancy(ctx context.Context, today time.Time) (*LifeExpectancy, error) {
	const op = "service/profile/LifeExpectancy"

	profile, err := s.Profile(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	today = s.refOrToday(today)

	r := expectancy.Estimate(expectancy.Input{
		BirthDate:           profile.BirthDate,
		Country:             profile.Country,
		Gender:              profile.Gender,
		IsSmoker:            profile.IsSmoker,
		HasChronicCondition: profile.HasChronicCondition,
	}, today)

	return &LifeExpectancy{
		Range:    r,
		Progress: expectancy.ProgressOf(profile.BirthDate, today, r),
	}, nil
}
