package catalog

import "rankeo/internal/models"

// FilterByRegion keeps the entries whose country belongs to region. Entries without a
// known region are excluded; "global" keeps everything.
func FilterByRegion(list *models.RankingList, region string) []models.RankedEntry {
	if region == "" || region == "global" {
		return list.Entries
	}
	var entries []models.RankedEntry
	for _, entry := range list.Entries {
		if r, ok := RegionForCountry(entry.EntityName); ok && r == region {
			entries = append(entries, entry)
		}
	}
	return entries
}

// AvailableRegions lists the regions, in display order, that keep at least one entry of
// list. The global region is implied and never listed.
func AvailableRegions(list *models.RankingList) []string {
	regions := []string{}
	for _, region := range regionOrder {
		if region == "global" {
			continue
		}
		if len(FilterByRegion(list, region)) > 0 {
			regions = append(regions, region)
		}
	}
	return regions
}

func SegmentTitle(list *models.RankingList, region, year string) string {
	switch {
	case region != "" && year != "":
		return list.Title + " en " + RegionLabel(region) + " " + year
	case region != "":
		return list.Title + " en " + RegionLabel(region)
	case year != "":
		return list.Title + " edición " + year
	}
	return list.Title
}

// SegmentPath is the site path of a list, optionally narrowed by region and year.
func SegmentPath(listID, region, year string) string {
	path := "/ranking/" + listID
	if region != "" {
		path += "/region/" + region
	}
	if year != "" {
		path += "/anio/" + year
	}
	return path
}

func SegmentDescription(list *models.RankingList, region, year string) string {
	switch {
	case region != "" && year != "":
		return list.Description + " Mirada regional para " + RegionLabel(region) + " en la edición " + year + "."
	case region != "":
		return list.Description + " Enfoque editorial para " + RegionLabel(region) + " con datos comparativos."
	case year != "":
		return list.Description + " Versión editorial correspondiente a la edición " + year + "."
	}
	return list.Description
}

func SegmentIntro(region, year string) []string {
	switch {
	case region != "" && year != "":
		return []string{
			"Esta segmentación destaca el desempeño en " + RegionLabel(region) + " durante la edición " + year + ".",
			"Los resultados se filtran por entidades con región conocida para evitar datos ambiguos.",
		}
	case region != "":
		return []string{
			"Esta versión regional destaca únicamente países con ubicación confirmada en " + RegionLabel(region) + ".",
			"Los elementos sin región conocida se excluyen para mantener consistencia editorial.",
		}
	case year != "":
		return []string{
			"Esta edición está pensada para contextualizar el ranking en " + year + ".",
			"Los valores siguen siendo referenciales y no sustituyen informes oficiales.",
		}
	}
	return []string{}
}

// MethodologyNote explains how an edition view relates to the year the list reports.
func MethodologyNote(list *models.RankingList, year string) string {
	switch {
	case year == "":
		return ""
	case list.Year == "":
		return "Edición " + year + " referencial. Este ranking base no reporta un año oficial."
	case list.Year != year:
		return "Vista " + year + " basada en el ranking original " + list.Year + "."
	}
	return ""
}
