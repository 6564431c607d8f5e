package catalog

import (
	"fmt"
	"strconv"

	"rankeo/internal/models"
)

const entriesPerList = 20

var countryNames = []string{
	"Argentina", "Australia", "Alemania", "Brasil", "Canadá", "Chile", "China",
	"Colombia", "Corea del Sur", "España", "Estados Unidos", "Francia", "India",
	"Italia", "Japón", "México", "Países Bajos", "Perú", "Reino Unido", "Suecia",
}

var cityNames = []string{
	"Buenos Aires", "Santiago", "Ciudad de México", "Bogotá", "Lima", "Madrid",
	"Barcelona", "París", "Londres", "Nueva York", "Toronto", "Sídney", "Tokio",
	"Seúl", "Berlín", "Roma", "Ámsterdam", "Lisboa", "Miami", "São Paulo",
}

func indexValue(position int) string {
	return "Índice " + strconv.FormatFloat(80-float64(position)*1.3, 'f', -1, 64)
}

func namedEntries(names []string) []models.RankedEntry {
	n := len(names)
	if n > entriesPerList {
		n = entriesPerList
	}
	entries := make([]models.RankedEntry, 0, n)
	for i := 0; i < n; i++ {
		entries = append(entries, models.RankedEntry{
			Rank:       i + 1,
			EntityName: names[i],
			RawValue:   indexValue(i),
			Note:       "Estimación referencial",
		})
	}
	return entries
}

func placeholderEntries(prefix string) []models.RankedEntry {
	names := make([]string, entriesPerList)
	for i := range names {
		names[i] = fmt.Sprintf("%s %d", prefix, i+1)
	}
	return namedEntries(names)
}

func defaultLists() []models.RankingList {
	return []models.RankingList{
		{
			ID:          "calidad-de-vida-global",
			Title:       "Ranking global de calidad de vida",
			Description: "Comparativa de entornos urbanos con indicadores de bienestar, servicios y entorno social.",
			Category:    models.CategoryVida,
			Year:        "2024",
			RegionScope: "global",
			UpdatedAt:   "2024-06-15",
			Entries:     namedEntries(cityNames),
		},
		{
			ID:          "paises-mas-innovadores",
			Title:       "Países más innovadores",
			Description: "Evaluación del ecosistema de innovación según inversión, talento y patentes.",
			Category:    models.CategoryPaises,
			Year:        "2024",
			RegionScope: "global",
			UpdatedAt:   "2024-05-22",
			Entries:     namedEntries(countryNames),
		},
		{
			ID:          "ciudades-mas-seguras",
			Title:       "Ciudades más seguras",
			Description: "Ranking de percepción de seguridad y respuesta institucional en áreas urbanas.",
			Category:    models.CategoryCiudades,
			Year:        "2024",
			RegionScope: "global",
			UpdatedAt:   "2024-06-01",
			Entries:     namedEntries(cityNames),
		},
		{
			ID:          "coste-de-vida-ciudades",
			Title:       "Coste de vida en ciudades",
			Description: "Comparación del costo promedio de vivienda, transporte y servicios.",
			Category:    models.CategoryDinero,
			Year:        "2024",
			RegionScope: "global",
			UpdatedAt:   "2024-04-30",
			Entries:     namedEntries(cityNames),
		},
		{
			ID:          "salarios-promedio-globales",
			Title:       "Salarios promedio globales",
			Description: "Comparativa de ingresos medios y poder adquisitivo por región.",
			Category:    models.CategoryDinero,
			Year:        "2024",
			RegionScope: "global",
			UpdatedAt:   "2024-05-10",
			Entries:     placeholderEntries("Región"),
		},
		{
			ID:          "climas-mas-agradables",
			Title:       "Climas más agradables",
			Description: "Ranking basado en estabilidad térmica, humedad y confort anual.",
			Category:    models.CategoryClima,
			Year:        "2024",
			RegionScope: "global",
			UpdatedAt:   "2024-03-18",
			Entries:     placeholderEntries("Zona"),
		},
		{
			ID:          "ciudades-mas-verdes",
			Title:       "Ciudades más verdes",
			Description: "Ranking de cobertura vegetal, parques urbanos y sostenibilidad.",
			Category:    models.CategoryClima,
			Year:        "2024",
			RegionScope: "global",
			UpdatedAt:   "2024-04-12",
			Entries:     namedEntries(cityNames),
		},
		{
			ID:          "destinos-con-buena-calidad-aire",
			Title:       "Destinos con buena calidad de aire",
			Description: "Comparativa de destinos con menor concentración de contaminantes.",
			Category:    models.CategoryClima,
			Year:        "2024",
			RegionScope: "global",
			UpdatedAt:   "2024-05-02",
			Entries:     placeholderEntries("Destino"),
		},
		{
			ID:          "paises-mayor-inversion-educacion",
			Title:       "Países con mayor inversión educativa",
			Description: "Ranking de esfuerzo presupuestario y cobertura educativa.",
			Category:    models.CategoryPaises,
			Year:        "2024",
			RegionScope: "global",
			UpdatedAt:   "2024-03-28",
			Entries:     namedEntries(countryNames),
		},
		{
			ID:          "paises-con-mejor-salud",
			Title:       "Países con mejor salud",
			Description: "Ranking de acceso sanitario y bienestar general.",
			Category:    models.CategoryVida,
			Year:        "2024",
			RegionScope: "global",
			UpdatedAt:   "2024-06-05",
			Entries:     namedEntries(countryNames),
		},
		{
			ID:          "economias-mas-estables",
			Title:       "Economías más estables",
			Description: "Comparativa de estabilidad macroeconómica y resiliencia.",
			Category:    models.CategoryDinero,
			Year:        "2024",
			RegionScope: "global",
			UpdatedAt:   "2024-04-08",
			Entries:     namedEntries(countryNames),
		},
		{
			ID:          "ciudades-con-mejor-movilidad",
			Title:       "Ciudades con mejor movilidad",
			Description: "Ranking de conectividad urbana, transporte público y accesibilidad.",
			Category:    models.CategoryCiudades,
			Year:        "2024",
			RegionScope: "global",
			UpdatedAt:   "2024-05-29",
			Entries:     namedEntries(cityNames),
		},
		{
			ID:          "paises-mas-competitivos",
			Title:       "Países más competitivos",
			Description: "Ranking de productividad, infraestructura y clima de negocios.",
			Category:    models.CategoryPaises,
			Year:        "2024",
			RegionScope: "global",
			UpdatedAt:   "2024-04-18",
			Entries:     namedEntries(countryNames),
		},
	}
}
