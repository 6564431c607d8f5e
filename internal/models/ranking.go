package models

type Category string

const (
	CategoryPaises   Category = "paises"
	CategoryCiudades Category = "ciudades"
	CategoryDinero   Category = "dinero"
	CategoryClima    Category = "clima"
	CategoryVida     Category = "vida"
)

type RankingList struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Category    Category      `json:"category"`
	Year        string        `json:"year,omitempty"`
	RegionScope string        `json:"region_scope,omitempty"`
	UpdatedAt   string        `json:"updated_at"`
	Entries     []RankedEntry `json:"entries"`
}

// RankedEntry is one row of a ranking list. RawValue is human formatted and may carry
// units or locale separators.
type RankedEntry struct {
	Rank       int    `json:"rank"`
	EntityName string `json:"name"`
	RawValue   string `json:"value"`
	Note       string `json:"note,omitempty"`
}

type EntityKind string

const (
	EntityCountry EntityKind = "pais"
	EntityCity    EntityKind = "ciudad"
)

func (k EntityKind) Valid() bool {
	return k == EntityCountry || k == EntityCity
}

type Entity struct {
	Name  string         `json:"name"`
	Slug  string         `json:"slug"`
	Kind  EntityKind     `json:"kind"`
	Lists []*RankingList `json:"-"`
}

type EntitySummary struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Appearances int    `json:"appearances"`
}

// RankingSegment is a list narrowed to a region and edition year.
type RankingSegment struct {
	ListID      string        `json:"list_id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Category    Category      `json:"category"`
	Path        string        `json:"path"`
	Region      string        `json:"region,omitempty"`
	RegionLabel string        `json:"region_label,omitempty"`
	Year        string        `json:"year,omitempty"`
	Intro       []string      `json:"intro"`
	Methodology string        `json:"methodology_note,omitempty"`
	Regions     []string      `json:"available_regions"`
	Entries     []RankedEntry `json:"entries"`
}

type EntityDetail struct {
	EntitySummary
	Kind    EntityKind       `json:"kind"`
	Lists   []string         `json:"lists"`
	Metrics []ResolvedMetric `json:"metrics"`
}
