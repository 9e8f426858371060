package dto

import (
	"fmt"
	"time"

	"github.com/pribylovaa/go-lifelog/internal/analytics"
	"github.com/pribylovaa/go-lifelog/internal/models"
	"github.com/pribylovaa/go-lifelog/internal/photos"
	"github.com/pribylovaa/go-lifelog/internal/service"
	"github.com/pribylovaa/go-lifelog/internal/storage"
	"github.com/pribylovaa/go-lifelog/internal/tags"
)

func formatDay(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(models.DateLayout)
}

func formatTS(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func (m CreateProfileRequest) ToInput() (service.CreateProfileInput, error) {
	birth, err := models.ParseDay(m.BirthDate)
	if err != nil {
		return service.CreateProfileInput{}, fmt.Errorf("birth_date: %w", err)
	}

	return service.CreateProfileInput{
		BirthDate:           birth,
		Country:             m.Country,
		Gender:              m.Gender,
		IsSmoker:            m.IsSmoker,
		HasChronicCondition: m.HasChronicCondition,
	}, nil
}

func ProfileFromModel(p *models.Profile) Profile {
	if p == nil {
		return Profile{}
	}

	return Profile{
		BirthDate:           formatDay(p.BirthDate),
		Country:             p.Country,
		Gender:              p.Gender,
		IsSmoker:            p.IsSmoker,
		HasChronicCondition: p.HasChronicCondition,
		CreatedAt:           formatTS(p.CreatedAt),
	}
}

func LifeExpectancyFromService(le *service.LifeExpectancy) LifeExpectancy {
	if le == nil {
		return LifeExpectancy{}
	}

	return LifeExpectancy{
		Average:        le.Range.Average,
		Lower:          le.Range.Lower,
		Upper:          le.Range.Upper,
		StdDev:         le.Range.StdDev,
		AgeYears:       le.Progress.AgeYears,
		Fraction:       le.Progress.Fraction,
		RemainingYears: le.Progress.RemainingYears,
		ExpectedEnd:    formatDay(le.Progress.ExpectedEnd),
	}
}

func EntryFromModel(e *models.DayEntry) Entry {
	if e == nil {
		return Entry{}
	}

	p := photos.Decode(e.PhotoData)

	return Entry{
		Date:              formatDay(e.Date),
		QualityScore:      e.QualityScore,
		MoodScore:         e.MoodScore,
		EnergyScore:       e.EnergyScore,
		ProgressScore:     e.ProgressScore,
		Mood:              e.Mood,
		Activities:        e.Activities,
		Tags:              tags.Parse(e.Activities),
		MorningPlan:       e.MorningPlan,
		EveningReflection: e.EveningReflection,
		PhotoCount:        p.Len(),
		ThumbnailIndex:    p.ThumbnailIndex,
		CreatedAt:         formatTS(e.CreatedAt),
		UpdatedAt:         formatTS(e.UpdatedAt),
	}
}

func EntryListFromModels(entries []models.DayEntry) EntryList {
	out := EntryList{Entries: make([]Entry, 0, len(entries)), Count: len(entries)}
	for i := range entries {
		out.Entries = append(out.Entries, EntryFromModel(&entries[i]))
	}

	return out
}

// ToInput собирает вход сервиса; день берётся из пути.
func (m SaveEntryRequest) ToInput(day time.Time) service.SaveEntryInput {
	in := service.SaveEntryInput{
		Day:               day,
		QualityScore:      m.QualityScore,
		MoodScore:         m.MoodScore,
		EnergyScore:       m.EnergyScore,
		ProgressScore:     m.ProgressScore,
		Mood:              m.Mood,
		Activities:        m.Activities,
		MorningPlan:       m.MorningPlan,
		EveningReflection: m.EveningReflection,
		AutoSave:          m.AutoSave,
	}

	if m.Photos != nil {
		in.Photos = &service.PhotosInput{Photos: m.Photos.Photos, ThumbnailIndex: m.Photos.ThumbnailIndex}
	}

	return in
}

func PhotosFromPayload(p photos.Payload) Photos {
	list := p.Photos
	if list == nil {
		list = [][]byte{}
	}

	return Photos{Photos: list, ThumbnailIndex: p.ThumbnailIndex, Count: len(list)}
}

func (m PhotoPresignRequest) ToInput(day time.Time) service.PhotoUploadURLInput {
	return service.PhotoUploadURLInput{Day: day, ContentType: m.ContentType, ContentLength: m.ContentLength}
}

func PhotoPresignFromStorage(info *storage.UploadInfo) PhotoPresignResponse {
	if info == nil {
		return PhotoPresignResponse{}
	}

	return PhotoPresignResponse{
		UploadURL:      info.UploadURL,
		PhotoKey:       info.PhotoKey,
		ExpiresSeconds: uint32(info.Expires / time.Second),
		RequiredHeader: info.RequiredHeader,
	}
}

func (m PhotoConfirmRequest) ToInput(day time.Time) service.ConfirmPhotoUploadInput {
	return service.ConfirmPhotoUploadInput{Day: day, PhotoKey: m.PhotoKey}
}

func TrendFromAnalytics(metric analytics.Metric, points []analytics.Point) Trend {
	out := Trend{Metric: metric.String(), Days: len(points), Points: make([]Point, 0, len(points))}
	for _, p := range points {
		out.Points = append(out.Points, Point{Date: formatDay(p.Date), Score: p.Score})
	}

	return out
}

func DistributionFromAnalytics(buckets []analytics.Bucket) Distribution {
	out := Distribution{Buckets: make([]Bucket, 0, len(buckets))}
	for _, b := range buckets {
		out.Buckets = append(out.Buckets, Bucket{Score: b.Score, Count: b.Count})
	}

	return out
}

func StreakFrom(ref time.Time, days int) Streak {
	return Streak{Ref: formatDay(ref), Days: days}
}

func SummaryFromAnalytics(s analytics.Summary) Summary {
	out := Summary{
		TotalDays:       s.TotalDays,
		CurrentStreak:   s.CurrentStreak,
		LongestStreak:   s.LongestStreak,
		AverageQuality:  s.AverageQuality,
		AverageMood:     s.AverageMood,
		AverageEnergy:   s.AverageEnergy,
		AverageProgress: s.AverageProgress,
		TopMood:         s.TopMood,
		TopTags:         make([]TagCount, 0, len(s.TopTags)),
	}
	for _, t := range s.TopTags {
		out.TopTags = append(out.TopTags, TagCount{Tag: t.Tag, Count: t.Count})
	}

	return out
}

func GuideFrom(day time.Time, text string) Guide {
	return Guide{Date: formatDay(day), Text: text}
}
