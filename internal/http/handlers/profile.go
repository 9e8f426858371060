package handlers

import (
	"net/http"
	"time"

	"github.com/pribylovaa/go-lifelog/internal/http/dto"
	apierrors "github.com/pribylovaa/go-lifelog/internal/http/errors"
)

func (h *Handlers) GetProfile(w http.ResponseWriter, r *http.Request) {
	resp, err := h.Service.Profile(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ProfileFromModel(resp))
}

func (h *Handlers) CreateProfile(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProfileRequest
	if err := decodeStrict(w, r, &req); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	in, err := req.ToInput()
	if err != nil {
		apierrors.WriteError(w, r, apierrors.ErrBadRequest)
		return
	}

	resp, err := h.Service.CreateProfile(r.Context(), in)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ProfileFromModel(resp))
}

func (h *Handlers) GetLifeExpectancy(w http.ResponseWriter, r *http.Request) {
	resp, err := h.Service.LifeExpectancy(r.Context(), time.Time{})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.LifeExpectancyFromService(resp))
}
