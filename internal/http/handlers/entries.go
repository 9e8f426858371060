package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/pribylovaa/go-lifelog/internal/analytics"
	"github.com/pribylovaa/go-lifelog/internal/http/dto"
	apierrors "github.com/pribylovaa/go-lifelog/internal/http/errors"
	"github.com/pribylovaa/go-lifelog/internal/models"
	"github.com/pribylovaa/go-lifelog/internal/service"
)

// ListEntries — GET /entries?from&to&order&mood&tag&min_score&q.
func (h *Handlers) ListEntries(w http.ResponseWriter, r *http.Request) {
	var in service.ListEntriesInput
	var err error

	if in.From, err = queryDay(r, "from"); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}
	if in.To, err = queryDay(r, "to"); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	switch strings.ToLower(r.URL.Query().Get("order")) {
	case "", "asc":
		in.Order = models.OrderAsc
	case "desc":
		in.Order = models.OrderDesc
	default:
		apierrors.WriteError(w, r, apierrors.ErrBadRequest)
		return
	}

	minScore, err := queryInt(r, "min_score", 0)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	q := r.URL.Query()
	in.Criteria = analytics.Criteria{
		Mood:         q.Get("mood"),
		Tag:          q.Get("tag"),
		MinimumScore: minScore,
		SearchText:   q.Get("q"),
	}

	resp, err := h.Service.ListEntries(r.Context(), in)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.EntryListFromModels(resp))
}

func (h *Handlers) GetEntry(w http.ResponseWriter, r *http.Request) {
	day, err := dayParam(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	resp, err := h.Service.Entry(r.Context(), day)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.EntryFromModel(resp))
}

// SaveEntry — PUT /entries/{date}. Автосохранение пустой новой записи отвечает 204.
func (h *Handlers) SaveEntry(w http.ResponseWriter, r *http.Request) {
	day, err := dayParam(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var req dto.SaveEntryRequest
	if err := decodeStrict(w, r, &req); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	resp, err := h.Service.SaveEntry(r.Context(), req.ToInput(day))
	if err != nil {
		if req.AutoSave && errors.Is(err, service.ErrNothingToSave) {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.EntryFromModel(resp))
}

func (h *Handlers) ToggleTag(w http.ResponseWriter, r *http.Request) {
	day, err := dayParam(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var req dto.ToggleTagRequest
	if err := decodeStrict(w, r, &req); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	resp, err := h.Service.ToggleTag(r.Context(), day, req.Tag)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.EntryFromModel(resp))
}

// DeleteAllEntries — DELETE /entries. Требует ?confirm=true.
func (h *Handlers) DeleteAllEntries(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("confirm") != "true" {
		apierrors.WriteError(w, r, apierrors.ErrBadRequest)
		return
	}

	n, err := h.Service.DeleteAllEntries(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.DeleteAllResponse{Deleted: n})
}

func (h *Handlers) GetGuide(w http.ResponseWriter, r *http.Request) {
	day, err := dayParam(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	text, err := h.Service.DailyGuide(r.Context(), day)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.GuideFrom(day, text))
}
