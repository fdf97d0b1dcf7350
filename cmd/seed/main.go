// Seeder for the harutrip document store: loads products and daily
// fortunes from yaml files and upserts them. Run once against a fresh
// database, or again after editing the seed files (upserts are idempotent).
//
//	go run ./cmd/seed -products seed/products.yaml -fortunes seed/fortunes.yaml
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/harutrip/harutrip/backend/go-services/internal/config"
	"github.com/harutrip/harutrip/backend/go-services/internal/database"
	"github.com/harutrip/harutrip/backend/go-services/internal/fortune"
	"github.com/harutrip/harutrip/backend/go-services/internal/shopping"
	"github.com/harutrip/harutrip/backend/go-services/pkg/logger"
)

type seedFile struct {
	Products []shopping.Product `yaml:"products"`
	Fortunes []fortune.Fortune  `yaml:"fortunes"`
}

func main() {
	logger.Init(os.Getenv("LOG_LEVEL"))

	productsPath := flag.String("products", "seed/products.yaml", "yaml file with a products list")
	fortunesPath := flag.String("fortunes", "seed/fortunes.yaml", "yaml file with a fortunes list")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	if cfg.MongoDB.URI == "" {
		logger.Fatalf("MONGODB_URI is required for seeding")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	client, err := database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
	if err != nil {
		logger.Fatalf("cannot connect to MongoDB: %v", err)
	}
	defer func() { _ = client.Disconnect(ctx) }()
	db := client.Database(cfg.MongoDB.Database)

	products := loadSeed(*productsPath)
	fortunes := loadSeed(*fortunesPath)

	productRepo := shopping.NewMongoRepo(db.Collection("products"))
	for _, p := range products.Products {
		if err := productRepo.Upsert(ctx, p); err != nil {
			logger.Fatalf("seeding product %s: %v", p.ID, err)
		}
	}
	logger.Infof("seeded %d products", len(products.Products))

	fortuneRepo := fortune.NewMongoRepo(db.Collection("fortunes"))
	for _, f := range fortunes.Fortunes {
		if err := fortuneRepo.Upsert(ctx, f); err != nil {
			logger.Fatalf("seeding fortune %s: %v", f.Date, err)
		}
	}
	logger.Infof("seeded %d fortunes", len(fortunes.Fortunes))
}

func loadSeed(path string) seedFile {
	var out seedFile
	if path == "" {
		return out
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warnf("seed file %s not found, skipping", path)
			return out
		}
		logger.Fatalf("reading %s: %v", path, err)
	}
	if err := yaml.Unmarshal(data, &out); err != nil {
		logger.Fatalf("parsing %s: %v", path, err)
	}
	return out
}
