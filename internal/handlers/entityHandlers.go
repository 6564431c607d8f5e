package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"rankeo/internal/models"
	"rankeo/internal/services"
	"rankeo/internal/utils"
)

type EntityHandler struct {
	entities services.EntityService
	compare  services.CompareService
	pairs    services.PairService
}

func NewEntityHandler(entities services.EntityService, compare services.CompareService, pairs services.PairService) *EntityHandler {
	return &EntityHandler{entities: entities, compare: compare, pairs: pairs}
}

func entityKind(w http.ResponseWriter, r *http.Request) (models.EntityKind, bool) {
	kind := models.EntityKind(mux.Vars(r)["kind"])
	if !kind.Valid() {
		utils.SendJSONError(w, "Unknown entity kind", http.StatusNotFound)
		return "", false
	}
	return kind, true
}

func (h *EntityHandler) ListEntities(w http.ResponseWriter, r *http.Request) {
	kind, ok := entityKind(w, r)
	if !ok {
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.entities.Entities(kind))
}

func (h *EntityHandler) EntityMetrics(w http.ResponseWriter, r *http.Request) {
	kind, ok := entityKind(w, r)
	if !ok {
		return
	}

	detail, err := h.entities.Detail(kind, mux.Vars(r)["slug"])
	if err != nil {
		if errors.Is(err, services.ErrEntityNotFound) {
			utils.SendJSONError(w, "Entity not found", http.StatusNotFound)
			return
		}
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("Error resolving entity metrics")
		utils.SendJSONError(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, detail)
}

func (h *EntityHandler) Compare(w http.ResponseWriter, r *http.Request) {
	kind, ok := entityKind(w, r)
	if !ok {
		return
	}

	comparison, err := h.compare.Compare(kind, mux.Vars(r)["pair"])
	if err != nil {
		if errors.Is(err, services.ErrInvalidPair) || errors.Is(err, services.ErrEntityNotFound) {
			utils.SendJSONError(w, "Comparison not found", http.StatusNotFound)
			return
		}
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("Error building comparison")
		utils.SendJSONError(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, comparison)
}

// Pairs lists canonical pair ids among the most popular entities of a kind.
func (h *EntityHandler) Pairs(w http.ResponseWriter, r *http.Request) {
	kind, ok := entityKind(w, r)
	if !ok {
		return
	}

	top := utils.QueryInt(r, "top", 20, 1, 50)
	limit := utils.QueryInt(r, "limit", 190, 1, 1225)
	utils.RespondWithJSON(w, http.StatusOK, h.pairs.SuggestedPairs(kind, top, limit))
}

func (h *EntityHandler) RankingSegment(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	segment, err := h.entities.Segment(mux.Vars(r)["id"], query.Get("region"), query.Get("year"))
	if err != nil {
		if errors.Is(err, services.ErrRankingNotFound) {
			utils.SendJSONError(w, "Ranking not found", http.StatusNotFound)
			return
		}
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("Error building ranking segment")
		utils.SendJSONError(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, segment)
}
