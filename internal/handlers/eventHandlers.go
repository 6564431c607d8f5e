package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"rankeo/internal/models"
	"rankeo/internal/services"
	"rankeo/internal/utils"
)

const maxEventBodyBytes = 4 << 10

type EventHandler struct {
	service services.IngestService
}

func NewEventHandler(service services.IngestService) *EventHandler {
	return &EventHandler{service: service}
}

// RecordEvent answers {"ok":true} for every well-formed event, including repeats and
// events the counter store failed to record.
func (h *EventHandler) RecordEvent(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	var event models.MetricEvent
	r.Body = http.MaxBytesReader(w, r.Body, maxEventBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		logger.Debug().Err(err).Msg("Invalid JSON input for RecordEvent")
		utils.RespondWithJSON(w, http.StatusBadRequest, map[string]bool{"ok": false})
		return
	}

	outcome, err := h.service.Record(r.Context(), event)
	if err != nil {
		if errors.Is(err, services.ErrInvalidEvent) {
			utils.RespondWithJSON(w, http.StatusBadRequest, map[string]bool{"ok": false})
			return
		}
		logger.Error().Err(err).Msg("Unexpected error recording event")
	}

	logger.Debug().Str("kind", string(event.Kind)).Str("scope", string(event.Scope)).Str("outcome", string(outcome)).Msg("Metric event handled")
	utils.RespondWithJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
