package models

import "time"

// Profile — демографический профиль пользователя, один на установку.
// Gender — произвольная подпись; для расчётов нормализуется без учёта регистра.
type Profile struct {
	BirthDate           time.Time
	Country             string
	Gender              string
	IsSmoker            bool
	HasChronicCondition bool
	CreatedAt           time.Time
}
