package handlers

import (
	"net/http"

	"github.com/pribylovaa/go-lifelog/internal/analytics"
	"github.com/pribylovaa/go-lifelog/internal/http/dto"
	apierrors "github.com/pribylovaa/go-lifelog/internal/http/errors"
	"github.com/pribylovaa/go-lifelog/internal/models"
	"github.com/pribylovaa/go-lifelog/internal/service"
)

// defaultTrendDays — окно тренда без ?days.
const defaultTrendDays = 30

// GetTrend — GET /insights/trend?days&ref&metric.
func (h *Handlers) GetTrend(w http.ResponseWriter, r *http.Request) {
	days, err := queryInt(r, "days", defaultTrendDays)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	ref, err := queryRef(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	metric, ok := analytics.ParseMetric(r.URL.Query().Get("metric"))
	if !ok {
		apierrors.WriteError(w, r, apierrors.ErrBadRequest)
		return
	}

	resp, err := h.Service.Trend(r.Context(), service.TrendInput{Metric: metric, Days: days, Ref: ref})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.TrendFromAnalytics(metric, resp))
}

func (h *Handlers) GetDistribution(w http.ResponseWriter, r *http.Request) {
	resp, err := h.Service.Distribution(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.DistributionFromAnalytics(resp))
}

func (h *Handlers) GetStreak(w http.ResponseWriter, r *http.Request) {
	ref, err := queryRef(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	days, err := h.Service.Streak(r.Context(), ref)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if ref.IsZero() {
		ref = models.Day(h.Service.Now())
	}

	writeJSON(w, http.StatusOK, dto.StreakFrom(ref, days))
}

func (h *Handlers) GetSummary(w http.ResponseWriter, r *http.Request) {
	ref, err := queryRef(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	resp, err := h.Service.Summary(r.Context(), ref)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.SummaryFromAnalytics(resp))
}
