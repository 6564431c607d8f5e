package catalog

import (
	"fmt"

	"rankeo/internal/models"
)

var knownCategories = map[models.Category]bool{
	models.CategoryPaises:   true,
	models.CategoryCiudades: true,
	models.CategoryDinero:   true,
	models.CategoryClima:    true,
	models.CategoryVida:     true,
}

// Validate reports editorial problems in the lists. It never fails the load; the caller
// decides whether to log or abort.
func Validate(lists []models.RankingList) []string {
	var warnings []string
	seen := make(map[string]bool, len(lists))

	for _, list := range lists {
		switch {
		case list.ID == "":
			warnings = append(warnings, "ranking list without id")
		case seen[list.ID]:
			warnings = append(warnings, fmt.Sprintf("duplicate list id: %s", list.ID))
		default:
			seen[list.ID] = true
		}

		if !knownCategories[list.Category] {
			warnings = append(warnings, fmt.Sprintf("unknown category in %s: %s", list.ID, list.Category))
		}
		if list.Year != "" && !IsRankingYear(list.Year) {
			warnings = append(warnings, fmt.Sprintf("unknown year in %s: %s", list.ID, list.Year))
		}
		if len(list.Entries) == 0 {
			warnings = append(warnings, fmt.Sprintf("list %s has no entries", list.ID))
		}

		for i, entry := range list.Entries {
			if entry.EntityName == "" {
				warnings = append(warnings, fmt.Sprintf("entry without name in %s (position %d)", list.ID, i+1))
			}
			if entry.Rank != i+1 {
				warnings = append(warnings, fmt.Sprintf("rank out of order in %s: %s should be %d", list.ID, entry.EntityName, i+1))
			}
		}
	}
	return warnings
}

// Validate checks the catalog's own lists.
func (c *Catalog) Validate() []string {
	lists := make([]models.RankingList, 0, len(c.lists))
	for _, list := range c.lists {
		lists = append(lists, *list)
	}
	return Validate(lists)
}
