package catalog

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"rankeo/internal/models"
)

var homeCategory = map[models.EntityKind]models.Category{
	models.EntityCountry: models.CategoryPaises,
	models.EntityCity:    models.CategoryCiudades,
}

type kindIndex struct {
	bySlug  map[string]*models.Entity
	byName  []*models.Entity
	popular []*models.Entity
}

// Index derives country and city identities from the catalog. Lists in an entity kind's
// home category establish the entities; lists in other categories are attached to every
// entity they mention.
type Index struct {
	kinds map[models.EntityKind]*kindIndex
}

func NewIndex(c *Catalog) *Index {
	ix := &Index{kinds: make(map[models.EntityKind]*kindIndex, len(homeCategory))}
	for kind := range homeCategory {
		ix.kinds[kind] = buildKindIndex(c, kind)
	}
	return ix
}

func buildKindIndex(c *Catalog, kind models.EntityKind) *kindIndex {
	home := homeCategory[kind]
	bySlug := make(map[string]*models.Entity)
	var order []*models.Entity

	for _, list := range c.Lists() {
		if list.Category != home {
			continue
		}
		for _, entry := range list.Entries {
			slug := Slugify(entry.EntityName)
			if slug == "" {
				continue
			}
			entity, ok := bySlug[slug]
			if !ok {
				entity = &models.Entity{Name: entry.EntityName, Slug: slug, Kind: kind}
				bySlug[slug] = entity
				order = append(order, entity)
			}
			attach(entity, list)
		}
	}

	for _, list := range c.Lists() {
		if isHomeCategory(list.Category) {
			continue
		}
		for _, entry := range list.Entries {
			if entity, ok := bySlug[Slugify(entry.EntityName)]; ok {
				attach(entity, list)
			}
		}
	}

	col := collate.New(language.Spanish, collate.Loose)
	byName := append([]*models.Entity(nil), order...)
	sort.SliceStable(byName, func(i, j int) bool {
		return col.CompareString(byName[i].Name, byName[j].Name) < 0
	})

	popular := append([]*models.Entity(nil), byName...)
	sort.SliceStable(popular, func(i, j int) bool {
		return len(popular[i].Lists) > len(popular[j].Lists)
	})

	return &kindIndex{bySlug: bySlug, byName: byName, popular: popular}
}

func isHomeCategory(category models.Category) bool {
	for _, home := range homeCategory {
		if home == category {
			return true
		}
	}
	return false
}

func attach(entity *models.Entity, list *models.RankingList) {
	for _, existing := range entity.Lists {
		if existing.ID == list.ID {
			return
		}
	}
	entity.Lists = append(entity.Lists, list)
}

func (ix *Index) Lookup(kind models.EntityKind, slug string) (*models.Entity, bool) {
	k, ok := ix.kinds[kind]
	if !ok {
		return nil, false
	}
	entity, ok := k.bySlug[slug]
	return entity, ok
}

// LookupName resolves a display name case and accent insensitively.
func (ix *Index) LookupName(kind models.EntityKind, name string) (*models.Entity, bool) {
	return ix.Lookup(kind, Slugify(name))
}

// Entities lists a kind in Spanish alphabetical order.
func (ix *Index) Entities(kind models.EntityKind) []*models.Entity {
	if k, ok := ix.kinds[kind]; ok {
		return k.byName
	}
	return nil
}

// Popular returns up to n entities ordered by the number of lists they appear in, ties
// broken alphabetically. n <= 0 returns all of them.
func (ix *Index) Popular(kind models.EntityKind, n int) []*models.Entity {
	k, ok := ix.kinds[kind]
	if !ok {
		return nil
	}
	if n <= 0 || n > len(k.popular) {
		n = len(k.popular)
	}
	return k.popular[:n]
}

func Summarize(entity *models.Entity) models.EntitySummary {
	return models.EntitySummary{Name: entity.Name, Slug: entity.Slug, Appearances: len(entity.Lists)}
}

// FindEntry locates the entry of list that names the entity with the given slug.
func FindEntry(list *models.RankingList, slug string) (models.RankedEntry, bool) {
	for _, entry := range list.Entries {
		if Slugify(entry.EntityName) == slug {
			return entry, true
		}
	}
	return models.RankedEntry{}, false
}
