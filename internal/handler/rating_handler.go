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

type RatingHandler struct {
	ratings service.RatingService
}

func NewRatingHandler(ratings service.RatingService) *RatingHandler {
	return &RatingHandler{ratings: ratings}
}

func (h *RatingHandler) ListByTrack(w http.ResponseWriter, r *http.Request) {
	trackID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid id", err)
		return
	}

	ratings, err := h.ratings.ListByTrack(r.Context(), trackID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, ratings)
}

type createRatingRequest struct {
	Score   int    `json:"score"`
	Comment string `json:"comment"`
}

func (h *RatingHandler) Create(w http.ResponseWriter, r *http.Request) {
	trackID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid id", err)
		return
	}

	var req createRatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	rating := domain.Rating{
		Score:   req.Score,
		Comment: req.Comment,
		TrackID: trackID,
	}

	p := middleware.PrincipalFrom(r.Context())
	if err := h.ratings.CreateRating(r.Context(), p, &rating); err != nil {
		writeDomainError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, rating)
}

func (h *RatingHandler) Mine(w http.ResponseWriter, r *http.Request) {
	p := middleware.PrincipalFrom(r.Context())
	ratings, err := h.ratings.MyRatings(r.Context(), p)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, ratings)
}

func (h *RatingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid id", err)
		return
	}

	p := middleware.PrincipalFrom(r.Context())
	if err := h.ratings.DeleteRating(r.Context(), p, id); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
