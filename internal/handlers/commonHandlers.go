package handlers

import (
	"net/http"

	"rankeo/internal/database"
	"rankeo/internal/repositories"
	"rankeo/internal/utils"
)

type CommonHandler struct {
	db       database.Service
	counters repositories.CounterRepository
}

// NewCommonHandler accepts a nil db when no document store is configured.
func NewCommonHandler(db database.Service, counters repositories.CounterRepository) *CommonHandler {
	return &CommonHandler{db: db, counters: counters}
}

func (h *CommonHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	resp := map[string]interface{}{
		"status":        "ok",
		"counter_store": h.counters.Name(),
	}
	if h.db != nil {
		resp["mongo"] = h.db.Health()
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
