package services

import (
	"context"
	"sort"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"rankeo/internal/catalog"
	"rankeo/internal/metrics"
	"rankeo/internal/models"
	"rankeo/internal/repositories"
)

const (
	TrendingWindowDays   = 7
	PopularWindowDays    = 30
	DefaultTrendingLimit = 10
)

var compareScopes = []models.Scope{models.ScopeComparePais, models.ScopeCompareCiudad}

var compareSubtitles = map[models.EntityKind]string{
	models.EntityCountry: "Comparación de países",
	models.EntityCity:    "Comparación de ciudades",
}

// TrendingService turns counted subject keys into displayable items. Keys that no longer
// resolve against the catalog are dropped, and a failing store reads as no activity.
type TrendingService interface {
	TrendingRankings(ctx context.Context, days, limit int) []models.TrendingItem
	MostViewedRankings(ctx context.Context, days, limit int) []models.TrendingItem
	TrendingCompares(ctx context.Context, days, limit int) []models.TrendingItem
	MostCompared(ctx context.Context, days, limit int) []models.TrendingItem
}

type trendingServiceImpl struct {
	counters repositories.CounterRepository
	catalog  *catalog.Catalog
	index    *catalog.Index
}

func NewTrendingService(counters repositories.CounterRepository, c *catalog.Catalog, ix *catalog.Index) TrendingService {
	return &trendingServiceImpl{counters: counters, catalog: c, index: ix}
}

func (s *trendingServiceImpl) TrendingRankings(ctx context.Context, days, limit int) []models.TrendingItem {
	return s.rankings(ctx, days, limit)
}

func (s *trendingServiceImpl) MostViewedRankings(ctx context.Context, days, limit int) []models.TrendingItem {
	return s.rankings(ctx, days, limit)
}

// TrendingCompares reads compare events and, when none resolve yet, falls back to views
// of comparison pages.
func (s *trendingServiceImpl) TrendingCompares(ctx context.Context, days, limit int) []models.TrendingItem {
	items := s.compares(ctx, models.KindCompare, days, limit)
	if len(items) > 0 || limit <= 0 {
		return items
	}
	metrics.TrendingFallbackTotal.Inc()
	return s.compares(ctx, models.KindView, days, limit)
}

func (s *trendingServiceImpl) MostCompared(ctx context.Context, days, limit int) []models.TrendingItem {
	return s.compares(ctx, models.KindCompare, days, limit)
}

func (s *trendingServiceImpl) rankings(ctx context.Context, days, limit int) []models.TrendingItem {
	entries, err := s.counters.TopN(ctx, models.KindView, models.ScopeRanking, days, limit)
	if err != nil {
		s.storeFailed(err, "top")
		return []models.TrendingItem{}
	}

	items := make([]models.TrendingItem, 0, len(entries))
	for _, entry := range entries {
		item, ok := s.rankingItem(entry)
		if !ok {
			metrics.TrendingDroppedKeysTotal.WithLabelValues(string(models.ScopeRanking)).Inc()
			log.Debug().Str("key", entry.SubjectKey).Msg("Dropping unresolvable ranking key")
			continue
		}
		items = append(items, item)
	}
	return items
}

func (s *trendingServiceImpl) rankingItem(entry models.TrendingEntry) (models.TrendingItem, bool) {
	key, err := models.ParseSubjectKey(entry.SubjectKey)
	if err != nil {
		return models.TrendingItem{}, false
	}
	list, ok := s.catalog.List(key.Base)
	if !ok {
		return models.TrendingItem{}, false
	}
	if key.Region != "" && !catalog.IsRegion(key.Region) {
		return models.TrendingItem{}, false
	}
	if key.Year != "" && !catalog.IsRankingYear(key.Year) {
		return models.TrendingItem{}, false
	}

	return models.TrendingItem{
		Title:    list.Title,
		Href:     catalog.SegmentPath(list.ID, key.Region, key.Year),
		Subtitle: rankingSubtitle(key),
		Scope:    models.ScopeRanking,
		Count:    entry.Count,
	}, true
}

func rankingSubtitle(key models.SubjectKey) string {
	switch {
	case key.Region != "" && key.Year != "":
		return catalog.RegionLabel(key.Region) + " · Edición " + key.Year
	case key.Region != "":
		return catalog.RegionLabel(key.Region)
	case key.Year != "":
		return "Edición " + key.Year
	}
	return ""
}

// compares queries each compare scope concurrently and merges the resolved items. Equal
// counts keep scope order, countries before cities.
func (s *trendingServiceImpl) compares(ctx context.Context, kind models.EventKind, days, limit int) []models.TrendingItem {
	if limit <= 0 {
		return []models.TrendingItem{}
	}

	perScope := make([][]models.TrendingItem, len(compareScopes))

	eg, egCtx := errgroup.WithContext(ctx)
	for i, scope := range compareScopes {
		eg.Go(func() error {
			entries, err := s.counters.TopN(egCtx, kind, scope, days, limit)
			if err != nil {
				return err
			}
			resolved := make([]models.TrendingItem, 0, len(entries))
			for _, entry := range entries {
				item, ok := s.compareItem(scope, entry)
				if !ok {
					metrics.TrendingDroppedKeysTotal.WithLabelValues(string(scope)).Inc()
					log.Debug().Str("scope", string(scope)).Str("key", entry.SubjectKey).Msg("Dropping unresolvable comparison key")
					continue
				}
				resolved = append(resolved, item)
			}
			perScope[i] = resolved
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		s.storeFailed(err, "top")
		return []models.TrendingItem{}
	}

	items := []models.TrendingItem{}
	for _, resolved := range perScope {
		items = append(items, resolved...)
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Count > items[j].Count
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items
}

func (s *trendingServiceImpl) compareItem(scope models.Scope, entry models.TrendingEntry) (models.TrendingItem, bool) {
	kind, ok := scope.CompareKind()
	if !ok {
		return models.TrendingItem{}, false
	}
	slugA, slugB, ok := ParsePair(entry.SubjectKey)
	if !ok {
		return models.TrendingItem{}, false
	}
	a, okA := s.index.Lookup(kind, slugA)
	b, okB := s.index.Lookup(kind, slugB)
	if !okA || !okB {
		return models.TrendingItem{}, false
	}

	return models.TrendingItem{
		Title:    a.Name + " vs " + b.Name,
		Href:     "/comparar/" + string(kind) + "/" + JoinPair(a.Slug, b.Slug),
		Subtitle: compareSubtitles[kind],
		Scope:    scope,
		Count:    entry.Count,
	}, true
}

func (s *trendingServiceImpl) storeFailed(err error, op string) {
	metrics.CounterStoreErrorsTotal.WithLabelValues(s.counters.Name(), op).Inc()
	log.Error().Err(err).Str("store", s.counters.Name()).Msg("Failed to read trending counters")
}
