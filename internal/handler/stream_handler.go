package handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sequemusic/backend/internal/domain"
	"github.com/sequemusic/backend/internal/middleware"
	"github.com/sequemusic/backend/internal/service"
	"github.com/sequemusic/backend/internal/utils"
)

type StreamHandler struct {
	streams service.StreamService
}

func NewStreamHandler(streams service.StreamService) *StreamHandler {
	return &StreamHandler{streams: streams}
}

func (h *StreamHandler) ListByTrack(w http.ResponseWriter, r *http.Request) {
	trackID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid id", err)
		return
	}

	records, err := h.streams.ListByTrack(r.Context(), trackID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, records)
}

type createStreamRequest struct {
	Platform  string `json:"platform"`
	PlayCount int64  `json:"play_count"`
	Link      string `json:"link"`
}

func (h *StreamHandler) Create(w http.ResponseWriter, r *http.Request) {
	trackID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid id", err)
		return
	}

	var req createStreamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	record := domain.StreamRecord{
		Platform:  req.Platform,
		PlayCount: req.PlayCount,
		Link:      req.Link,
		TrackID:   trackID,
	}

	p := middleware.PrincipalFrom(r.Context())
	if err := h.streams.CreateStreamRecord(r.Context(), p, &record); err != nil {
		writeDomainError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, record)
}

func (h *StreamHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid id", err)
		return
	}

	p := middleware.PrincipalFrom(r.Context())
	if err := h.streams.DeleteStreamRecord(r.Context(), p, id); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
