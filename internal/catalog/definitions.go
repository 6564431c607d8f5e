package catalog

import "rankeo/internal/models"

var defaultDefinitions = map[string]models.MetricDefinition{
	"coste-de-vida-ciudades":          {MetricKey: "costo-de-vida", Label: "Costo de vida (índice)", BetterWhen: models.BetterLower, Priority: 5},
	"ciudades-mas-seguras":            {MetricKey: "seguridad", Label: "Seguridad (índice)", BetterWhen: models.BetterHigher, Priority: 5},
	"calidad-de-vida-global":          {MetricKey: "calidad-de-vida", Label: "Calidad de vida (índice)", BetterWhen: models.BetterHigher, Priority: 5},
	"paises-mas-innovadores":          {MetricKey: "innovacion", Label: "Innovación (índice)", BetterWhen: models.BetterHigher, Priority: 4},
	"paises-mas-competitivos":         {MetricKey: "competitividad", Label: "Competitividad (índice)", BetterWhen: models.BetterHigher, Priority: 4},
	"paises-con-mejor-salud":          {MetricKey: "salud", Label: "Salud (índice)", BetterWhen: models.BetterHigher, Priority: 4},
	"economias-mas-estables":          {MetricKey: "estabilidad-economica", Label: "Estabilidad económica (índice)", BetterWhen: models.BetterHigher, Priority: 4},
	"salarios-promedio-globales":      {MetricKey: "salarios", Label: "Salarios promedio (índice)", BetterWhen: models.BetterHigher, Priority: 3},
	"ciudades-mas-verdes":             {MetricKey: "sostenibilidad", Label: "Sostenibilidad verde (índice)", BetterWhen: models.BetterHigher, Priority: 3},
	"ciudades-con-mejor-movilidad":    {MetricKey: "movilidad", Label: "Movilidad urbana (índice)", BetterWhen: models.BetterHigher, Priority: 3},
	"climas-mas-agradables":           {MetricKey: "clima", Label: "Clima agradable (índice)", BetterWhen: models.BetterHigher, Priority: 3},
	"destinos-con-buena-calidad-aire": {MetricKey: "calidad-aire", Label: "Calidad del aire (índice)", BetterWhen: models.BetterHigher, Priority: 3},
}

var categoryPriority = map[models.Category]int{
	models.CategoryDinero:   4,
	models.CategoryVida:     3,
	models.CategoryClima:    2,
	models.CategoryPaises:   2,
	models.CategoryCiudades: 2,
}

// CategoryPriority is the priority of lists without an explicit definition.
func CategoryPriority(category models.Category) int {
	if p, ok := categoryPriority[category]; ok {
		return p
	}
	return 1
}

func derivedDefinition(list *models.RankingList) models.MetricDefinition {
	return models.MetricDefinition{
		MetricKey:  list.ID,
		Label:      list.Title + " (índice)",
		BetterWhen: models.BetterHigher,
		Priority:   CategoryPriority(list.Category),
	}
}
