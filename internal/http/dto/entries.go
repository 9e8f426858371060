package dto

// Запись дня. Фотографии отдаются отдельными эндпойнтами, здесь — только их количество.
type Entry struct {
	Date              string   `json:"date"`
	QualityScore      int      `json:"quality_score"`
	MoodScore         int      `json:"mood_score"`
	EnergyScore       int      `json:"energy_score"`
	ProgressScore     int      `json:"progress_score"`
	Mood              string   `json:"mood"`
	Activities        string   `json:"activities"`
	Tags              []string `json:"tags"`
	MorningPlan       string   `json:"morning_plan"`
	EveningReflection string   `json:"evening_reflection"`
	PhotoCount        int      `json:"photo_count"`
	ThumbnailIndex    *int     `json:"thumbnail_index,omitempty"`
	CreatedAt         string   `json:"created_at"`
	UpdatedAt         string   `json:"updated_at"`
}

type EntryList struct {
	Entries []Entry `json:"entries"`
	Count   int     `json:"count"`
}

// Частичное сохранение записи; отсутствующие поля не меняются.
type SaveEntryRequest struct {
	QualityScore      *int           `json:"quality_score,omitempty"`
	MoodScore         *int           `json:"mood_score,omitempty"`
	EnergyScore       *int           `json:"energy_score,omitempty"`
	ProgressScore     *int           `json:"progress_score,omitempty"`
	Mood              *string        `json:"mood,omitempty"`
	Activities        *string        `json:"activities,omitempty"`
	MorningPlan       *string        `json:"morning_plan,omitempty"`
	EveningReflection *string        `json:"evening_reflection,omitempty"`
	Photos            *PhotosRequest `json:"photos,omitempty"`
	AutoSave          bool           `json:"auto_save,omitempty"`
}

type ToggleTagRequest struct {
	Tag string `json:"tag"`
}

type DeleteAllResponse struct {
	Deleted int64 `json:"deleted"`
}

// Гайд на день.
type Guide struct {
	Date string `json:"date"`
	Text string `json:"text"`
}
