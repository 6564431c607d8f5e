package repositories

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/bson"

	"rankeo/internal/database"
	"rankeo/internal/models"
)

func setupMongoCounterTest(t *testing.T) (*mongoCounterRepository, *fakeClock) {
	t.Helper()
	if testing.Short() || os.Getenv("SKIP_CONTAINER_TESTS") != "" {
		t.Skip("skipping test in short mode.")
	}

	ctx := context.Background()
	container, err := mongodb.Run(ctx, "mongo:7")
	require.NoError(t, err)
	t.Cleanup(func() { container.Terminate(context.Background()) })

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	db, err := database.New(uri)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	clock := newFakeClock("2026-01-01")
	repo := newMongoCounterRepository(db, "rankeo_test", clock.Now)
	require.NoError(t, repo.EnsureIndexes(ctx))
	return repo, clock
}

func TestMongoCounterRepository(t *testing.T) {
	repo, clock := setupMongoCounterTest(t)
	assert.Equal(t, "mongo", repo.Name())
	exerciseCounterRepository(t, repo, clock)
}

func TestMongoCounterRepositoryDocumentLayout(t *testing.T) {
	repo, clock := setupMongoCounterTest(t)
	clock.setDay("2026-01-08")
	ctx := context.Background()

	require.NoError(t, repo.Increment(ctx, models.KindShare, models.ScopeComparePais, "chile-vs-peru"))
	require.NoError(t, repo.Increment(ctx, models.KindShare, models.ScopeComparePais, "chile-vs-peru"))

	var doc counterDocument
	err := repo.collection().FindOne(ctx, bson.M{"_id": "metrics:share:compare_pais:2026-01-08#chile-vs-peru"}).Decode(&doc)
	require.NoError(t, err)
	assert.Equal(t, counterDocument{
		ID:      "metrics:share:compare_pais:2026-01-08#chile-vs-peru",
		Kind:    "share",
		Scope:   "compare_pais",
		Day:     "2026-01-08",
		Subject: "chile-vs-peru",
		Count:   2,
	}, doc)

	top, err := repo.TopN(ctx, models.KindShare, models.ScopeComparePais, 7, 0)
	require.NoError(t, err)
	assert.Empty(t, top)
}
