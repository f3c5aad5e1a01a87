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

type NewsHandler struct {
	news service.NewsService
}

func NewNewsHandler(news service.NewsService) *NewsHandler {
	return &NewsHandler{news: news}
}

func (h *NewsHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.news.ListNews(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, items)
}

func (h *NewsHandler) Latest(w http.ResponseWriter, r *http.Request) {
	items, err := h.news.LatestNews(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, items)
}

func (h *NewsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid id", err)
		return
	}

	item, err := h.news.GetNews(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, item)
}

func (h *NewsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var item domain.News
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	p := middleware.PrincipalFrom(r.Context())
	if err := h.news.CreateNews(r.Context(), p, &item); err != nil {
		writeDomainError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, item)
}

func (h *NewsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid id", err)
		return
	}

	var item domain.News
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	item.ID = id

	p := middleware.PrincipalFrom(r.Context())
	if err := h.news.UpdateNews(r.Context(), p, &item); err != nil {
		writeDomainError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, item)
}

func (h *NewsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "invalid id", err)
		return
	}

	p := middleware.PrincipalFrom(r.Context())
	if err := h.news.DeleteNews(r.Context(), p, id); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
