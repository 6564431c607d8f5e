package handlers

import (
	"context"
	"net/http"

	"rankeo/internal/models"
	"rankeo/internal/services"
	"rankeo/internal/utils"
)

const (
	maxWindowDays = 90
	maxItems      = 50
)

type TrendingHandler struct {
	service services.TrendingService
}

func NewTrendingHandler(service services.TrendingService) *TrendingHandler {
	return &TrendingHandler{service: service}
}

type trendingQuery func(ctx context.Context, days, limit int) []models.TrendingItem

func (h *TrendingHandler) respond(w http.ResponseWriter, r *http.Request, query trendingQuery, defaultDays int) {
	days := utils.QueryInt(r, "days", defaultDays, 1, maxWindowDays)
	limit := utils.QueryInt(r, "limit", services.DefaultTrendingLimit, 1, maxItems)
	utils.RespondWithJSON(w, http.StatusOK, query(r.Context(), days, limit))
}

func (h *TrendingHandler) TrendingRankings(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.service.TrendingRankings, services.TrendingWindowDays)
}

func (h *TrendingHandler) TrendingCompares(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.service.TrendingCompares, services.TrendingWindowDays)
}

func (h *TrendingHandler) PopularRankings(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.service.MostViewedRankings, services.PopularWindowDays)
}

func (h *TrendingHandler) PopularCompares(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.service.MostCompared, services.PopularWindowDays)
}
