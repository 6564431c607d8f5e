package repositories

import (
	"github.com/prometheus/client_golang/prometheus"

	"rankeo/internal/utils"
)

// trackQuery starts a timer for one store round trip. The returned func records duration
// and outcome; call it with the round trip's error.
func trackQuery(repository, queryType string) func(err error) {
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	return func(err error) {
		if err != nil {
			status = "error"
			utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		}
		timer.ObserveDuration()
	}
}
