package bootstrap

import (
	"testing"

	"github.com/dalemusser/tripfolio/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func TestEnsureSchema_CreatesIndexes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	deps := DBDeps{TripfolioMongoDatabase: db}

	if err := EnsureSchema(ctx, nil, AppConfig{}, deps, testLogger()); err != nil {
		t.Fatalf("EnsureSchema failed: %v", err)
	}

	wantByColl := map[string][]string{
		"trips":      {"idx_trips_created"},
		"albums":     {"idx_albums_trip", "idx_albums_trip_related", "uniq_albums_default_per_item", "idx_albums_created"},
		"mediaitems": {"idx_media_album", "idx_media_album_order", "idx_media_album_type_created"},
	}

	for coll, want := range wantByColl {
		cur, err := db.Collection(coll).Indexes().List(ctx)
		if err != nil {
			t.Fatalf("listing indexes on %s: %v", coll, err)
		}
		var specs []bson.M
		if err := cur.All(ctx, &specs); err != nil {
			t.Fatalf("reading indexes on %s: %v", coll, err)
		}

		have := make(map[string]bool, len(specs))
		for _, spec := range specs {
			if name, ok := spec["name"].(string); ok {
				have[name] = true
			}
		}
		for _, name := range want {
			if !have[name] {
				t.Errorf("collection %s missing index %s", coll, name)
			}
		}
	}
}

func TestEnsureSchema_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	deps := DBDeps{TripfolioMongoDatabase: db}

	if err := EnsureSchema(ctx, nil, AppConfig{}, deps, testLogger()); err != nil {
		t.Fatalf("first EnsureSchema failed: %v", err)
	}
	if err := EnsureSchema(ctx, nil, AppConfig{}, deps, testLogger()); err != nil {
		t.Fatalf("second EnsureSchema failed: %v", err)
	}
}
