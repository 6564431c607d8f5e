package catalog

import (
	"rankeo/internal/models"
)

// Catalog is the immutable set of ranking lists and their metric definitions. It is
// built once at startup and shared read-only.
type Catalog struct {
	lists       []*models.RankingList
	byID        map[string]*models.RankingList
	definitions map[string]models.MetricDefinition
	preferences map[string]models.BetterWhen
}

// New copies lists so later mutation by the caller cannot leak in. Definitions are keyed
// by list id; a list without one gets a category-derived default.
func New(lists []models.RankingList, definitions map[string]models.MetricDefinition) *Catalog {
	c := &Catalog{
		lists:       make([]*models.RankingList, 0, len(lists)),
		byID:        make(map[string]*models.RankingList, len(lists)),
		definitions: make(map[string]models.MetricDefinition, len(definitions)),
		preferences: make(map[string]models.BetterWhen, len(lists)),
	}

	for listID, def := range definitions {
		if def.BetterWhen == "" {
			def.BetterWhen = models.BetterHigher
		}
		if def.MetricKey == "" {
			def.MetricKey = listID
		}
		c.definitions[listID] = def
	}

	for i := range lists {
		list := lists[i]
		list.Entries = append([]models.RankedEntry(nil), list.Entries...)
		if _, exists := c.byID[list.ID]; exists {
			continue
		}
		c.lists = append(c.lists, &list)
		c.byID[list.ID] = &list

		def := c.Definition(&list)
		if _, seen := c.preferences[def.MetricKey]; !seen {
			c.preferences[def.MetricKey] = def.BetterWhen
		}
	}
	return c
}

// Default returns the built-in editorial catalog.
func Default() *Catalog {
	return New(defaultLists(), defaultDefinitions)
}

func (c *Catalog) Lists() []*models.RankingList {
	return c.lists
}

func (c *Catalog) List(id string) (*models.RankingList, bool) {
	list, ok := c.byID[id]
	return list, ok
}

func (c *Catalog) Definition(list *models.RankingList) models.MetricDefinition {
	if def, ok := c.definitions[list.ID]; ok {
		if def.Priority == 0 {
			def.Priority = CategoryPriority(list.Category)
		}
		return def
	}
	return derivedDefinition(list)
}

// BetterWhen reports the direction of a metric key, higher when unknown.
func (c *Catalog) BetterWhen(metricKey string) models.BetterWhen {
	if bw, ok := c.preferences[metricKey]; ok {
		return bw
	}
	return models.BetterHigher
}
