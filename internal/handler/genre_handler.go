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

type GenreHandler struct {
	catalog service.CatalogService
}

func NewGenreHandler(catalog service.CatalogService) *GenreHandler {
	return &GenreHandler{catalog: catalog}
}

func (h *GenreHandler) List(w http.ResponseWriter, r *http.Request) {
	genres, err := h.catalog.ListGenres(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, genres)
}

func (h *GenreHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid id", err)
		return
	}

	genre, err := h.catalog.GetGenre(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, genre)
}

func (h *GenreHandler) Create(w http.ResponseWriter, r *http.Request) {
	var genre domain.Genre
	if err := json.NewDecoder(r.Body).Decode(&genre); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	p := middleware.PrincipalFrom(r.Context())
	if err := h.catalog.CreateGenre(r.Context(), p, &genre); err != nil {
		writeDomainError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, genre)
}

func (h *GenreHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid id", err)
		return
	}

	var genre domain.Genre
	if err := json.NewDecoder(r.Body).Decode(&genre); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	genre.ID = id

	p := middleware.PrincipalFrom(r.Context())
	if err := h.catalog.UpdateGenre(r.Context(), p, &genre); err != nil {
		writeDomainError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, genre)
}

func (h *GenreHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid id", err)
		return
	}

	p := middleware.PrincipalFrom(r.Context())
	if err := h.catalog.DeleteGenre(r.Context(), p, id); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
