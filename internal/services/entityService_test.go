package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rankeo/internal/catalog"
	"rankeo/internal/models"
)

func newTestEntityService() EntityService {
	c := catalog.Default()
	ix := catalog.NewIndex(c)
	return NewEntityService(c, ix, NewMetricService(c, ix))
}

func TestEntities(t *testing.T) {
	svc := newTestEntityService()

	countries := svc.Entities(models.EntityCountry)
	require.Len(t, countries, 20)
	assert.Equal(t, "Alemania", countries[0].Name)

	assert.Empty(t, svc.Entities(models.EntityKind("planeta")))
}

func TestDetail(t *testing.T) {
	svc := newTestEntityService()

	detail, err := svc.Detail(models.EntityCity, "bogota")
	require.NoError(t, err)
	assert.Equal(t, "Bogotá", detail.Name)
	assert.Equal(t, len(detail.Lists), detail.Appearances)
	assert.Contains(t, detail.Lists, "coste-de-vida-ciudades")
	assert.NotEmpty(t, detail.Metrics)

	_, err = svc.Detail(models.EntityCity, "atlantida")
	assert.ErrorIs(t, err, ErrEntityNotFound)
}

func TestSegment(t *testing.T) {
	svc := newTestEntityService()

	segment, err := svc.Segment("paises-mas-innovadores", "sudamerica", "2025")
	require.NoError(t, err)
	assert.Equal(t, "Países más innovadores en Sudamérica 2025", segment.Title)
	assert.Equal(t, "/ranking/paises-mas-innovadores/region/sudamerica/anio/2025", segment.Path)
	assert.Equal(t, "Sudamérica", segment.RegionLabel)
	assert.Equal(t, "Vista 2025 basada en el ranking original 2024.", segment.Methodology)
	assert.Len(t, segment.Entries, 5)
	for _, entry := range segment.Entries {
		region, ok := catalog.RegionForCountry(entry.EntityName)
		require.True(t, ok)
		assert.Equal(t, "sudamerica", region)
	}

	full, err := svc.Segment("paises-mas-innovadores", "global", "")
	require.NoError(t, err)
	assert.Len(t, full.Entries, 20)
	assert.Equal(t, "/ranking/paises-mas-innovadores", full.Path)

	tests := []struct {
		name   string
		listID string
		region string
		year   string
	}{
		{name: "unknown list", listID: "no-existe"},
		{name: "unknown region", listID: "paises-mas-innovadores", region: "antartida"},
		{name: "unknown year", listID: "paises-mas-innovadores", year: "1999"},
		{name: "region without entries", listID: "ciudades-mas-seguras", region: "europa"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Segment(tt.listID, tt.region, tt.year)
			assert.ErrorIs(t, err, ErrRankingNotFound)
		})
	}
}
