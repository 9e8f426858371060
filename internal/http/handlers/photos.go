package handlers

import (
	"net/http"

	"github.com/pribylovaa/go-lifelog/internal/http/dto"
	apierrors "github.com/pribylovaa/go-lifelog/internal/http/errors"
)

func (h *Handlers) GetPhotos(w http.ResponseWriter, r *http.Request) {
	day, err := dayParam(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	resp, err := h.Service.DayPhotos(r.Context(), day)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.PhotosFromPayload(resp))
}

func (h *Handlers) SetPhotos(w http.ResponseWriter, r *http.Request) {
	day, err := dayParam(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var req dto.PhotosRequest
	if err := decodeStrict(w, r, &req); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	resp, err := h.Service.SetDayPhotos(r.Context(), day, req.Photos, req.ThumbnailIndex)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.EntryFromModel(resp))
}

func (h *Handlers) GetThumbnail(w http.ResponseWriter, r *http.Request) {
	day, err := dayParam(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	data, err := h.Service.DayThumbnail(r.Context(), day)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeImage(w, data)
}

func (h *Handlers) GetPhoto(w http.ResponseWriter, r *http.Request) {
	day, err := dayParam(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	index, err := indexParam(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	data, err := h.Service.DayPhoto(r.Context(), day, index)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeImage(w, data)
}

func (h *Handlers) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	day, err := dayParam(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	index, err := indexParam(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	resp, err := h.Service.RemoveDayPhoto(r.Context(), day, index)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.EntryFromModel(resp))
}

func (h *Handlers) PhotoPresign(w http.ResponseWriter, r *http.Request) {
	day, err := dayParam(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var req dto.PhotoPresignRequest
	if err := decodeStrict(w, r, &req); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	resp, err := h.Service.PhotoUploadURL(r.Context(), req.ToInput(day))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.PhotoPresignFromStorage(resp))
}

func (h *Handlers) PhotoConfirm(w http.ResponseWriter, r *http.Request) {
	day, err := dayParam(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var req dto.PhotoConfirmRequest
	if err := decodeStrict(w, r, &req); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	resp, err := h.Service.ConfirmPhotoUpload(r.Context(), req.ToInput(day))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.EntryFromModel(resp))
}
