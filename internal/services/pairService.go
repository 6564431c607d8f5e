package services

import (
	"strings"

	"rankeo/internal/catalog"
	"rankeo/internal/models"
)

// BuildPairs returns the canonical pair ids of slugs, i<j in input order, stopping once
// max pairs exist. max <= 0 means no limit.
func BuildPairs(slugs []string, max int) []string {
	pairs := []string{}
	for i := 0; i < len(slugs); i++ {
		for j := i + 1; j < len(slugs); j++ {
			pairs = append(pairs, JoinPair(slugs[i], slugs[j]))
			if max > 0 && len(pairs) >= max {
				return pairs
			}
		}
	}
	return pairs
}

func JoinPair(a, b string) string {
	return a + catalog.PairSeparator + b
}

// ParsePair splits a pair id on its first separator.
func ParsePair(id string) (string, string, bool) {
	a, b, found := strings.Cut(id, catalog.PairSeparator)
	if !found || a == "" || b == "" || strings.Contains(b, catalog.PairSeparator) {
		return "", "", false
	}
	return a, b, true
}

type PairService interface {
	TopEntities(kind models.EntityKind, n int) []models.EntitySummary
	SuggestedPairs(kind models.EntityKind, top, max int) []string
}

type pairServiceImpl struct {
	index *catalog.Index
}

func NewPairService(ix *catalog.Index) PairService {
	return &pairServiceImpl{index: ix}
}

// TopEntities orders entities by the number of lists they appear in, then alphabetically.
func (s *pairServiceImpl) TopEntities(kind models.EntityKind, n int) []models.EntitySummary {
	popular := s.index.Popular(kind, n)
	summaries := make([]models.EntitySummary, 0, len(popular))
	for _, entity := range popular {
		summaries = append(summaries, catalog.Summarize(entity))
	}
	return summaries
}

// SuggestedPairs pairs the top entities of a kind, most popular first.
func (s *pairServiceImpl) SuggestedPairs(kind models.EntityKind, top, max int) []string {
	if top <= 0 {
		return []string{}
	}
	entities := s.TopEntities(kind, top)
	slugs := make([]string, 0, len(entities))
	for _, entity := range entities {
		slugs = append(slugs, entity.Slug)
	}
	return BuildPairs(slugs, max)
}
