package dto

type Point struct {
	Date  string `json:"date"`
	Score int    `json:"score"` // 0 — записи за день нет
}

type Trend struct {
	Metric string  `json:"metric"`
	Days   int     `json:"days"`
	Points []Point `json:"points"`
}

type Bucket struct {
	Score int `json:"score"`
	Count int `json:"count"`
}

type Distribution struct {
	Buckets []Bucket `json:"buckets"`
}

type Streak struct {
	Ref  string `json:"ref"`
	Days int    `json:"days"`
}

type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

type Summary struct {
	TotalDays       int        `json:"total_days"`
	CurrentStreak   int        `json:"current_streak"`
	LongestStreak   int        `json:"longest_streak"`
	AverageQuality  float64    `json:"average_quality"`
	AverageMood     float64    `json:"average_mood"`
	AverageEnergy   float64    `json:"average_energy"`
	AverageProgress float64    `json:"average_progress"`
	TopMood         string     `json:"top_mood,omitempty"`
	TopTags         []TagCount `json:"top_tags"`
}
