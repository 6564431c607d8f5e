package services

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/rs/zerolog/log"

	"rankeo/internal/catalog"
	"rankeo/internal/models"
)

var (
	ErrEntityNotFound = errors.New("entity not found")
	ErrInvalidPair    = errors.New("invalid comparison pair")
)

// BuildRows aligns two metric sets by key. A's keys come first in A's order, then the
// keys only B has. A missing side is left nil.
func BuildRows(a, b []models.ResolvedMetric) []models.ComparisonRow {
	rows := make([]models.ComparisonRow, 0, len(a)+len(b))
	position := make(map[string]int, len(a)+len(b))

	for _, metric := range a {
		if _, exists := position[metric.MetricKey]; exists {
			continue
		}
		value := metric.Value
		position[metric.MetricKey] = len(rows)
		rows = append(rows, models.ComparisonRow{
			MetricKey:  metric.MetricKey,
			Label:      metric.Label,
			AValue:     &value,
			BetterWhen: betterWhenOrDefault(metric.BetterWhen),
		})
	}

	for _, metric := range b {
		value := metric.Value
		if i, exists := position[metric.MetricKey]; exists {
			if rows[i].BValue == nil {
				rows[i].BValue = &value
			}
			continue
		}
		position[metric.MetricKey] = len(rows)
		rows = append(rows, models.ComparisonRow{
			MetricKey:  metric.MetricKey,
			Label:      metric.Label,
			BValue:     &value,
			BetterWhen: betterWhenOrDefault(metric.BetterWhen),
		})
	}
	return rows
}

func betterWhenOrDefault(bw models.BetterWhen) models.BetterWhen {
	if bw == "" {
		return models.BetterHigher
	}
	return bw
}

// Decide picks the better side of a row. Rows missing a side have no winner.
func Decide(row models.ComparisonRow) models.RowOutcome {
	outcome := models.RowOutcome{MetricKey: row.MetricKey}
	if row.AValue == nil || row.BValue == nil {
		outcome.Winner = models.WinnerNoData
		return outcome
	}

	a, b := *row.AValue, *row.BValue
	if a == b {
		outcome.Winner = models.WinnerTie
		return outcome
	}

	outcome.Margin = math.Abs(a - b)
	aBetter := a > b
	if row.BetterWhen == models.BetterLower {
		aBetter = a < b
	}
	if aBetter {
		outcome.Winner = models.WinnerA
	} else {
		outcome.Winner = models.WinnerB
	}
	return outcome
}

// Tally counts wins over rows that have both values and differ.
func Tally(rows []models.ComparisonRow) models.Tally {
	var tally models.Tally
	for _, row := range rows {
		switch Decide(row).Winner {
		case models.WinnerA:
			tally.WinsA++
			tally.Comparable++
		case models.WinnerB:
			tally.WinsB++
			tally.Comparable++
		}
	}
	return tally
}

func Intro(nameA, nameB string, rows []models.ComparisonRow) string {
	var highlights []string
	for _, row := range rows {
		if row.Label == "" {
			continue
		}
		highlights = append(highlights, row.Label)
		if len(highlights) == 3 {
			break
		}
	}

	text := "Analizamos métricas editoriales clave"
	if len(highlights) > 0 {
		text = "Analizamos métricas como " + strings.Join(highlights, ", ")
	}
	return fmt.Sprintf("Comparativa editorial entre %s y %s. %s para ayudarte a entender diferencias generales y tendencias.", nameA, nameB, text)
}

func Summary(nameA, nameB string, tally models.Tally) string {
	if tally.Comparable == 0 {
		return "Según estos índices referenciales no hay suficientes métricas numéricas para determinar un ganador claro."
	}
	return fmt.Sprintf("Según estos índices referenciales, %s gana %d métricas y %s gana %d en un total de %d comparables.",
		nameA, tally.WinsA, nameB, tally.WinsB, tally.Comparable)
}

type CompareService interface {
	Compare(kind models.EntityKind, pairID string) (*models.Comparison, error)
}

type compareServiceImpl struct {
	index   *catalog.Index
	metrics MetricService
}

func NewCompareService(ix *catalog.Index, metrics MetricService) CompareService {
	return &compareServiceImpl{index: ix, metrics: metrics}
}

func (s *compareServiceImpl) Compare(kind models.EntityKind, pairID string) (*models.Comparison, error) {
	slugA, slugB, ok := ParsePair(pairID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPair, pairID)
	}

	entityA, okA := s.index.Lookup(kind, slugA)
	entityB, okB := s.index.Lookup(kind, slugB)
	if !okA || !okB {
		log.Debug().Str("kind", string(kind)).Str("pair", pairID).Msg("Comparison references an unknown entity")
		return nil, fmt.Errorf("%w: %s", ErrEntityNotFound, pairID)
	}

	rows := BuildRows(
		s.metrics.ComparableMetrics(kind, entityA.Name),
		s.metrics.ComparableMetrics(kind, entityB.Name),
	)
	outcomes := make([]models.RowOutcome, 0, len(rows))
	for _, row := range rows {
		outcomes = append(outcomes, Decide(row))
	}
	tally := Tally(rows)

	return &models.Comparison{
		Kind:     kind,
		A:        catalog.Summarize(entityA),
		B:        catalog.Summarize(entityB),
		Rows:     rows,
		Outcomes: outcomes,
		Tally:    tally,
		Intro:    Intro(entityA.Name, entityB.Name, rows),
		Summary:  Summary(entityA.Name, entityB.Name, tally),
	}, nil
}
