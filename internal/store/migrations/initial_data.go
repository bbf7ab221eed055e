package migrations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Tsiqara/WeatherApp/internal/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Cities seeded on first run so the app has something to show before the
// user saves anything.
var seedCities = []string{"London", "Tbilisi", "Paris"}

func createCollectionIfNotExists(ctx context.Context, db *mongo.Database, name string) error {
	if err := db.CreateCollection(ctx, name); err != nil {
		var cmdErr mongo.CommandError
		if errors.As(err, &cmdErr) {
			if cmdErr.Code != 48 { // 48 = NamespaceExists
				return fmt.Errorf("failed to create collection %s: %w", name, err)
			}
			// Collection already exists → ignore
		} else {
			return fmt.Errorf("failed to create collection %s: %w", name, err)
		}
	}
	return nil
}

func MigrateSavedCities(cfg *config.Config) func(ctx context.Context, client *mongo.Client) error {
	return func(ctx context.Context, client *mongo.Client) error {
		db := client.Database(cfg.DBWeather)

		if err := createCollectionIfNotExists(ctx, db, cfg.CollectionSavedCities); err != nil {
			return err
		}
		if err := createCollectionIfNotExists(ctx, db, cfg.CollectionMigrationsHistory); err != nil {
			return err
		}

		coll := db.Collection(cfg.CollectionSavedCities)

		count, err := coll.CountDocuments(ctx, bson.M{})
		if err != nil {
			return fmt.Errorf("failed to count saved cities: %w", err)
		}
		if count > 0 {
			return nil
		}

		documents := make([]interface{}, 0, len(seedCities))
		for i, name := range seedCities {
			documents = append(documents, bson.M{
				"name":     name,
				"added_at": time.Now().Add(time.Duration(i) * time.Millisecond),
			})
		}

		if _, err := coll.InsertMany(ctx, documents); err != nil {
			return fmt.Errorf("failed to insert seed cities: %w", err)
		}

		return nil
	}
}
