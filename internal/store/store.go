package store

import (
	"context"
	"time"

	"github.com/Tsiqara/WeatherApp/internal/config"
	"github.com/Tsiqara/WeatherApp/internal/logger"
	"github.com/Tsiqara/WeatherApp/internal/store/migrations"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SavedCity is one entry of the user's saved-city list.
type SavedCity struct {
	ID      primitive.ObjectID `bson:"_id,omitempty"`
	Name    string             `bson:"name"`
	AddedAt time.Time          `bson:"added_at"`
}

type Migration struct {
	Name string
	Func func(ctx context.Context, client *mongo.Client) error
}

func ConnectMongoDB(ctx context.Context, cfg *config.Config) (*mongo.Client, error) {
	clientOptions := options.Client().ApplyURI(cfg.MongoURI).SetAuth(options.Credential{
		Username:   cfg.MongoUser,
		Password:   cfg.MongoPass,
		AuthSource: cfg.MongoAuthDB,
	})

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	err = client.Ping(ctxTimeout, nil)
	if err != nil {
		return nil, err
	}

	logger.Info("Successfully connected to MongoDB!")
	return client, nil
}

func DisconnectMongoDB(ctx context.Context, client *mongo.Client) error {
	if err := client.Disconnect(ctx); err != nil {
		return err
	}
	logger.Info("Disconnected from MongoDB.")
	return nil
}

func RunMigrations(ctx context.Context, client *mongo.Client, cfg *config.Config) error {
	all := []Migration{
		{Name: "initial_saved_cities", Func: migrations.MigrateSavedCities(cfg)},
	}

	coll := client.Database(cfg.DBWeather).Collection(cfg.CollectionMigrationsHistory)

	for _, m := range all {
		var result struct{ Name string }
		err := coll.FindOne(ctx, bson.M{"name": m.Name}).Decode(&result)
		if err == mongo.ErrNoDocuments {
			logger.Info("Running migration: %s", m.Name)
			if err := m.Func(ctx, client); err != nil {
				logger.Error("Error applying migration %s: %v", m.Name, err)
				return err
			}
			_, err = coll.InsertOne(ctx, bson.M{"name": m.Name, "applied_at": time.Now()})
			if err != nil {
				return err
			}
			logger.Info("Migration %s applied successfully.", m.Name)
		} else if err != nil {
			return err
		} else {
			logger.Info("Migration %s already applied, skipping.", m.Name)
		}
	}

	return nil
}

func citiesCollection(client *mongo.Client, cfg *config.Config) *mongo.Collection {
	return client.Database(cfg.DBWeather).Collection(cfg.CollectionSavedCities)
}

// SavedCities returns the saved city names in insertion order.
func SavedCities(ctx context.Context, client *mongo.Client, cfg *config.Config) ([]string, error) {
	opts := options.Find().SetSort(bson.D{{Key: "added_at", Value: 1}})
	cursor, err := citiesCollection(client, cfg).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var cities []SavedCity
	if err := cursor.All(ctx, &cities); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(cities))
	for _, c := range cities {
		names = append(names, c.Name)
	}
	return names, nil
}

// AddCity saves a city name. Adding a name that is already saved is a no-op.
func AddCity(ctx context.Context, client *mongo.Client, cfg *config.Config, name string) error {
	coll := citiesCollection(client, cfg)

	count, err := coll.CountDocuments(ctx, bson.M{"name": name})
	if err != nil {
		return err
	}
	if count > 0 {
		logger.Info("City %s already saved, skipping.", name)
		return nil
	}

	_, err = coll.InsertOne(ctx, SavedCity{Name: name, AddedAt: time.Now()})
	return err
}

func RemoveCity(ctx context.Context, client *mongo.Client, cfg *config.Config, name string) error {
	_, err := citiesCollection(client, cfg).DeleteMany(ctx, bson.M{"name": name})
	return err
}
