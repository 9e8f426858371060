package expectancy

import "time"

const daysPerYear = 365.2425

// Progress — положение «прогресс-бара жизни» относительно среднего из Range.
type Progress struct {
	AgeYears       float64
	Fraction       float64
	RemainingYears float64
	ExpectedEnd    time.Time
}

// ProgressOf считает прожитую долю относительно r.Average.
// Fraction ограничена диапазоном [0, 1].
func ProgressOf(birth, today time.Time, r Range) Progress {
	age := today.Sub(birth).Hours() / 24 / daysPerYear
	if age < 0 {
		age = 0
	}

	total := float64(r.Average)

	fraction := 0.0
	if total > 0 {
		fraction = age / total
	}
	if fraction > 1 {
		fraction = 1
	}

	remaining := total - age
	if remaining < 0 {
		remaining = 0
	}

	return Progress{
		AgeYears:       age,
		Fraction:       fraction,
		RemainingYears: remaining,
		ExpectedEnd:    birth.AddDate(r.Average, 0, 0),
	}
}
