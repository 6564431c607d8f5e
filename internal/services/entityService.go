package services

import (
	"errors"
	"fmt"

	"rankeo/internal/catalog"
	"rankeo/internal/models"
)

var ErrRankingNotFound = errors.New("ranking not found")

type EntityService interface {
	Entities(kind models.EntityKind) []models.EntitySummary
	Detail(kind models.EntityKind, slug string) (*models.EntityDetail, error)
	Segment(listID, region, year string) (*models.RankingSegment, error)
}

type entityServiceImpl struct {
	catalog *catalog.Catalog
	index   *catalog.Index
	metrics MetricService
}

func NewEntityService(c *catalog.Catalog, ix *catalog.Index, metrics MetricService) EntityService {
	return &entityServiceImpl{catalog: c, index: ix, metrics: metrics}
}

func (s *entityServiceImpl) Entities(kind models.EntityKind) []models.EntitySummary {
	entities := s.index.Entities(kind)
	summaries := make([]models.EntitySummary, 0, len(entities))
	for _, entity := range entities {
		summaries = append(summaries, catalog.Summarize(entity))
	}
	return summaries
}

func (s *entityServiceImpl) Detail(kind models.EntityKind, slug string) (*models.EntityDetail, error) {
	entity, ok := s.index.Lookup(kind, slug)
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrEntityNotFound, kind, slug)
	}

	lists := make([]string, 0, len(entity.Lists))
	for _, list := range entity.Lists {
		lists = append(lists, list.ID)
	}
	return &models.EntityDetail{
		EntitySummary: catalog.Summarize(entity),
		Kind:          kind,
		Lists:         lists,
		Metrics:       s.metrics.ComparableMetrics(kind, entity.Name),
	}, nil
}

// Segment narrows a list to a region and edition. Unknown regions or years, and regions
// that keep no entries, are reported as not found.
func (s *entityServiceImpl) Segment(listID, region, year string) (*models.RankingSegment, error) {
	list, ok := s.catalog.List(listID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrRankingNotFound, listID)
	}
	if region == "global" {
		region = ""
	}
	if region != "" && !catalog.IsRegion(region) {
		return nil, fmt.Errorf("%w: unknown region %q", ErrRankingNotFound, region)
	}
	if year != "" && !catalog.IsRankingYear(year) {
		return nil, fmt.Errorf("%w: unknown year %q", ErrRankingNotFound, year)
	}

	entries := catalog.FilterByRegion(list, region)
	if len(entries) == 0 && region != "" {
		return nil, fmt.Errorf("%w: %s has no entries in %s", ErrRankingNotFound, listID, region)
	}

	segment := &models.RankingSegment{
		ListID:      list.ID,
		Title:       catalog.SegmentTitle(list, region, year),
		Description: catalog.SegmentDescription(list, region, year),
		Category:    list.Category,
		Path:        catalog.SegmentPath(list.ID, region, year),
		Region:      region,
		Year:        year,
		Intro:       catalog.SegmentIntro(region, year),
		Methodology: catalog.MethodologyNote(list, year),
		Regions:     catalog.AvailableRegions(list),
		Entries:     entries,
	}
	if region != "" {
		segment.RegionLabel = catalog.RegionLabel(region)
	}
	if segment.Entries == nil {
		segment.Entries = []models.RankedEntry{}
	}
	return segment, nil
}
