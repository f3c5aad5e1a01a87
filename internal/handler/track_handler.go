package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/sequemusic/backend/internal/domain"
	"github.com/sequemusic/backend/internal/middleware"
	"github.com/sequemusic/backend/internal/service"
	"github.com/sequemusic/backend/internal/utils"
)

type TrackHandler struct {
	catalog service.CatalogService
	ranking service.RankingService
	ratings service.RatingService
	streams service.StreamService
}

func NewTrackHandler(catalog service.CatalogService, ranking service.RankingService, ratings service.RatingService, streams service.StreamService) *TrackHandler {
	return &TrackHandler{catalog: catalog, ranking: ranking, ratings: ratings, streams: streams}
}

// List serves both views of the catalog: administrators get the full,
// optionally filtered listing in curated order; everyone else gets the public
// top-10.
func (h *TrackHandler) List(w http.ResponseWriter, r *http.Request) {
	p := middleware.PrincipalFrom(r.Context())

	if p.Admin {
		filter := domain.TrackFilter{
			GenreName:  r.URL.Query().Get("genre"),
			ArtistName: r.URL.Query().Get("artist"),
		}
		if yearStr := r.URL.Query().Get("year"); yearStr != "" {
			year, err := strconv.Atoi(yearStr)
			if err != nil {
				utils.WriteError(w, http.StatusBadRequest, "invalid year filter", err)
				return
			}
			filter.ReleaseYear = year
		}

		tracks, err := h.ranking.AdminCatalog(r.Context(), p, filter)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		utils.WriteJSON(w, http.StatusOK, tracks)
		return
	}

	tracks, err := h.ranking.TopTracks(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, tracks)
}

type trackDetailResponse struct {
	domain.Track
	Ratings       []domain.Rating       `json:"ratings"`
	StreamRecords []domain.StreamRecord `json:"stream_records"`
}

func (h *TrackHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid id", err)
		return
	}

	track, err := h.catalog.GetTrack(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	ratings, err := h.ratings.ListByTrack(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	records, err := h.streams.ListByTrack(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, trackDetailResponse{
		Track:         *track,
		Ratings:       ratings,
		StreamRecords: records,
	})
}

func (h *TrackHandler) Create(w http.ResponseWriter, r *http.Request) {
	var track domain.Track
	if err := json.NewDecoder(r.Body).Decode(&track); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	p := middleware.PrincipalFrom(r.Context())
	if err := h.catalog.CreateTrack(r.Context(), p, &track); err != nil {
		writeDomainError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, track)
}

func (h *TrackHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid id", err)
		return
	}

	var track domain.Track
	if err := json.NewDecoder(r.Body).Decode(&track); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	track.ID = id

	p := middleware.PrincipalFrom(r.Context())
	if err := h.catalog.UpdateTrack(r.Context(), p, &track); err != nil {
		writeDomainError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, track)
}

func (h *TrackHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid id", err)
		return
	}

	p := middleware.PrincipalFrom(r.Context())
	if err := h.catalog.DeleteTrack(r.Context(), p, id); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type chartPositionRequest struct {
	Position int `json:"position"`
}

func (h *TrackHandler) SetChartPosition(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid id", err)
		return
	}

	var req chartPositionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	p := middleware.PrincipalFrom(r.Context())
	if err := h.catalog.SetChartPosition(r.Context(), p, id, req.Position); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type associateArtistsRequest struct {
	ArtistIDs []uuid.UUID `json:"artist_ids"`
}

func (h *TrackHandler) AssociateArtists(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid id", err)
		return
	}

	var req associateArtistsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	p := middleware.PrincipalFrom(r.Context())
	if err := h.catalog.AssociateTrackWithArtists(r.Context(), p, id, req.ArtistIDs); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
