// dto — JSON-представления REST API lifelog и их конвертация
// в доменные/сервисные типы и обратно.
package dto

// Профиль пользователя.
type Profile struct {
	BirthDate           string `json:"birth_date"` // YYYY-MM-DD
	Country             string `json:"country"`
	Gender              string `json:"gender"`
	IsSmoker            bool   `json:"is_smoker"`
	HasChronicCondition bool   `json:"has_chronic_condition"`
	CreatedAt           string `json:"created_at"` // RFC3339 UTC
}

// Запрос на создание профиля (онбординг).
type CreateProfileRequest struct {
	BirthDate           string `json:"birth_date"`
	Country             string `json:"country"`
	Gender              string `json:"gender"`
	IsSmoker            bool   `json:"is_smoker"`
	HasChronicCondition bool   `json:"has_chronic_condition"`
}

// Оценка продолжительности жизни и «прогресс-бар».
type LifeExpectancy struct {
	Average        int     `json:"average"`
	Lower          int     `json:"lower"`
	Upper          int     `json:"upper"`
	StdDev         float64 `json:"std_dev"`
	AgeYears       float64 `json:"age_years"`
	Fraction       float64 `json:"fraction"`
	RemainingYears float64 `json:"remaining_years"`
	ExpectedEnd    string  `json:"expected_end"` // YYYY-MM-DD
}
