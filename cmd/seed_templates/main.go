package main

import (
	"context"
	"log"
	"time"

	"go-crowdfund/internal/config"
	"go-crowdfund/internal/database"
	"go-crowdfund/internal/features/template"
)

// Seeds the built-in field templates without starting the API server.
// Safe to run repeatedly: seeding is keyed on (module, name_en).
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	client, mongodb, err := database.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Disconnect(context.Background())

	repo := template.NewTemplateRepository(mongodb)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := repo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to ensure template indexes: %v", err)
	}

	seeded := 0
	for _, tpl := range template.SystemTemplates() {
		exists, err := repo.ExistsByName(ctx, tpl.Module, tpl.NameEn)
		if err != nil {
			log.Fatal(err)
		}
		if exists {
			log.Printf("Template already present: %s / %s", tpl.Module, tpl.NameEn)
			continue
		}

		tpl.CreatedAt = time.Now()
		tpl.UpdatedAt = time.Now()
		if err := repo.Create(ctx, &tpl); err != nil {
			log.Fatalf("Failed to seed template %s / %s: %v", tpl.Module, tpl.NameEn, err)
		}
		log.Printf("Seeded template: %s / %s", tpl.Module, tpl.NameEn)
		seeded++
	}

	log.Printf("Done. Seeded %d templates.", seeded)
}
