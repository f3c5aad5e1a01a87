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

type ArtistHandler struct {
	catalog service.CatalogService
}

func NewArtistHandler(catalog service.CatalogService) *ArtistHandler {
	return &ArtistHandler{catalog: catalog}
}

func (h *ArtistHandler) List(w http.ResponseWriter, r *http.Request) {
	artists, err := h.catalog.ListArtists(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, artists)
}

func (h *ArtistHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid id", err)
		return
	}

	artist, err := h.catalog.GetArtist(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, artist)
}

func (h *ArtistHandler) Create(w http.ResponseWriter, r *http.Request) {
	var artist domain.Artist
	if err := json.NewDecoder(r.Body).Decode(&artist); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	p := middleware.PrincipalFrom(r.Context())
	if err := h.catalog.CreateArtist(r.Context(), p, &artist); err != nil {
		writeDomainError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, artist)
}

func (h *ArtistHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid id", err)
		return
	}

	var artist domain.Artist
	if err := json.NewDecoder(r.Body).Decode(&artist); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	artist.ID = id

	p := middleware.PrincipalFrom(r.Context())
	if err := h.catalog.UpdateArtist(r.Context(), p, &artist); err != nil {
		writeDomainError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, artist)
}

func (h *ArtistHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid id", err)
		return
	}

	p := middleware.PrincipalFrom(r.Context())
	if err := h.catalog.DeleteArtist(r.Context(), p, id); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
