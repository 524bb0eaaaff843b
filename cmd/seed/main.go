// Command seed writes the built-in sample restaurants into the Firestore
// catalog so a fresh project has something to browse.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"bitefeed/config"
	"bitefeed/internal/infra/catalog"
	logs "bitefeed/internal/infra/log"
	"bitefeed/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
)

const restaurantsCollection = "restaurants"

func main() {
	collection := flag.String("collection", restaurantsCollection, "target collection")
	flag.Parse()

	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		slog.Error("Failed to build logger", slog.Any("error", err))
		os.Exit(1)
	}

	if cfg.Firestore == nil {
		logger.Error("firestore config is required")
		os.Exit(1)
	}

	ctx := context.Background()

	var opts []option.ClientOption
	if cfg.Firestore.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firestore.CredentialsPath))
	}

	client, err := firestore.NewClient(ctx, cfg.Firestore.ProjectID, opts...)
	if err != nil {
		logger.Error("Failed to create firestore client", slog.Any("error", err))
		os.Exit(1)
	}
	defer client.Close()

	for _, restaurant := range catalog.SampleRestaurants() {
		doc := model.FromRestaurantDomain(restaurant)
		if _, err := client.Collection(*collection).Doc(restaurant.ID).Set(ctx, doc); err != nil {
			logger.Error("Failed to seed restaurant",
				slog.String("id", restaurant.ID),
				slog.Any("error", err))
			os.Exit(1)
		}

		logger.Info("Seeded restaurant",
			slog.String("id", restaurant.ID),
			slog.String("name", restaurant.Name))
	}

	logger.Info("Seeding complete", slog.Int("count", len(catalog.SampleRestaurants())))
}
