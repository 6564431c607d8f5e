package catalog

var regionLabels = map[string]string{
	"global":       "Global",
	"america":      "América",
	"sudamerica":   "Sudamérica",
	"norteamerica": "Norteamérica",
	"europa":       "Europa",
	"asia":         "Asia",
	"africa":       "África",
	"oceania":      "Oceanía",
}

var regionOrder = []string{"global", "america", "sudamerica", "norteamerica", "europa", "asia", "africa", "oceania"}

var rankingYears = []string{"2024", "2025", "2026"}

var countryRegions = map[string]string{
	"Argentina": "sudamerica", "Bolivia": "sudamerica", "Brasil": "sudamerica",
	"Chile": "sudamerica", "Colombia": "sudamerica", "Ecuador": "sudamerica",
	"Paraguay": "sudamerica", "Perú": "sudamerica", "Uruguay": "sudamerica",
	"Venezuela": "sudamerica",
	"Estados Unidos": "norteamerica", "Canadá": "norteamerica", "México": "norteamerica",
	"Guatemala": "america", "Honduras": "america", "El Salvador": "america",
	"Nicaragua": "america", "Costa Rica": "america", "Panamá": "america", "Cuba": "america",
	"República Dominicana": "america", "Haití": "america", "Jamaica": "america",
	"España": "europa", "Portugal": "europa", "Francia": "europa", "Alemania": "europa",
	"Italia": "europa", "Reino Unido": "europa", "Irlanda": "europa", "Países Bajos": "europa",
	"Bélgica": "europa", "Suiza": "europa", "Suecia": "europa", "Noruega": "europa",
	"Dinamarca": "europa", "Finlandia": "europa", "Polonia": "europa", "Grecia": "europa",
	"Ucrania": "europa", "Rusia": "europa",
	"Turquía": "asia", "China": "asia", "Japón": "asia", "Corea del Sur": "asia",
	"India": "asia", "Indonesia": "asia", "Tailandia": "asia", "Vietnam": "asia",
	"Filipinas": "asia", "Israel": "asia", "Emiratos Árabes Unidos": "asia",
	"Arabia Saudita": "asia",
	"Sudáfrica": "africa", "Nigeria": "africa", "Egipto": "africa", "Marruecos": "africa",
	"Kenia": "africa", "Ghana": "africa",
	"Australia": "oceania", "Nueva Zelanda": "oceania",
}

var regionBySlug = func() map[string]string {
	bySlug := make(map[string]string, len(countryRegions))
	for name, region := range countryRegions {
		bySlug[Slugify(name)] = region
	}
	return bySlug
}()

func IsRegion(key string) bool {
	_, ok := regionLabels[key]
	return ok
}

// RegionLabel returns the display label, or the key itself when unknown.
func RegionLabel(key string) string {
	if label, ok := regionLabels[key]; ok {
		return label
	}
	return key
}

func IsRankingYear(year string) bool {
	for _, y := range rankingYears {
		if y == year {
			return true
		}
	}
	return false
}

// RegionForCountry matches accent and case insensitively. Unknown countries have no region.
func RegionForCountry(name string) (string, bool) {
	region, ok := regionBySlug[Slugify(name)]
	return region, ok
}
