package services

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"rankeo/internal/catalog"
	"rankeo/internal/models"
)

// MaxComparableMetrics caps the metrics resolved for one entity.
const MaxComparableMetrics = 12

var numberPattern = regexp.MustCompile(`-?\d+(\.\d+)?`)

type MetricService interface {
	ComparableMetrics(kind models.EntityKind, name string) []models.ResolvedMetric
	BetterWhen(metricKey string) models.BetterWhen
}

type metricServiceImpl struct {
	catalog *catalog.Catalog
	index   *catalog.Index
}

func NewMetricService(c *catalog.Catalog, ix *catalog.Index) MetricService {
	return &metricServiceImpl{catalog: c, index: ix}
}

// ComparableMetrics resolves the numeric metrics of an entity from every list it appears
// in. When two lists share a metric key only the highest priority one is kept; an unknown
// entity yields an empty slice.
func (s *metricServiceImpl) ComparableMetrics(kind models.EntityKind, name string) []models.ResolvedMetric {
	entity, ok := s.index.LookupName(kind, name)
	if !ok {
		log.Debug().Str("kind", string(kind)).Str("name", name).Msg("No entity to resolve metrics for")
		return []models.ResolvedMetric{}
	}

	var resolved []models.ResolvedMetric
	for _, list := range entity.Lists {
		entry, found := catalog.FindEntry(list, entity.Slug)
		if !found {
			continue
		}
		value, ok := parseNumericValue(entry.RawValue)
		if !ok {
			continue
		}
		def := s.catalog.Definition(list)
		resolved = append(resolved, models.ResolvedMetric{
			MetricKey:    def.MetricKey,
			Label:        def.Label,
			Value:        value,
			SourceListID: list.ID,
			Note:         entry.Note,
			BetterWhen:   def.BetterWhen,
			Priority:     def.Priority,
		})
	}

	sort.SliceStable(resolved, func(i, j int) bool {
		return resolved[i].Priority > resolved[j].Priority
	})

	seen := make(map[string]bool, len(resolved))
	metrics := make([]models.ResolvedMetric, 0, len(resolved))
	for _, metric := range resolved {
		if seen[metric.MetricKey] {
			continue
		}
		seen[metric.MetricKey] = true
		metrics = append(metrics, metric)
		if len(metrics) == MaxComparableMetrics {
			break
		}
	}
	return metrics
}

func (s *metricServiceImpl) BetterWhen(metricKey string) models.BetterWhen {
	return s.catalog.BetterWhen(metricKey)
}

// parseNumericValue extracts the first number of an editorial value such as "Índice 78,5".
// Only the first comma is read as a decimal separator.
func parseNumericValue(raw string) (float64, bool) {
	normalized := strings.Replace(raw, ",", ".", 1)
	normalized = strings.Join(strings.Fields(normalized), " ")
	match := numberPattern.FindString(normalized)
	if match == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(match, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	return value, true
}
