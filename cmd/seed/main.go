// Package main seeds the products table with the fallback catalog so a fresh
// Supabase project serves the same records the in-code fallback does.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/ventaroai/storefront/internal/domain/product"
	"github.com/ventaroai/storefront/internal/postgrest"
)

func main() {
	envFile := flag.String("env", ".env", "Path to .env with SUPABASE_URL and SUPABASE_SERVICE_KEY")
	table := flag.String("table", "products", "Target table")
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil {
		log.Printf("no env file loaded (%s): %v", *envFile, err)
	}

	url := os.Getenv("SUPABASE_URL")
	key := os.Getenv("SUPABASE_SERVICE_KEY")
	if url == "" || key == "" {
		log.Fatal("SUPABASE_URL and SUPABASE_SERVICE_KEY are required")
	}

	client, err := postgrest.New(postgrest.Config{
		URL:    url,
		APIKey: key,
		Retry:  postgrest.DefaultRetryConfig(),
	})
	if err != nil {
		log.Fatalf("configure client: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for id, p := range product.FallbackCatalog() {
		row := product.Row{
			ID:            p.ID,
			Name:          p.Name,
			Price:         p.Price,
			OriginalPrice: p.OriginalPrice,
			Description:   p.Description,
			ImageURL:      p.ImageURL,
			Category:      p.Category,
			IsFeatured:    p.IsFeatured,
			IsActive:      p.IsActive,
			ProductType:   string(p.ProductType),
			Benefits:      p.Benefits,
			Details:       p.Details,
		}
		resp, err := client.From(*table).Insert(ctx, row)
		if err != nil {
			log.Fatalf("insert product %s: %v", id, err)
		}
		if err := resp.Err(); err != nil {
			log.Fatalf("insert product %s: %v", id, err)
		}
		log.Printf("seeded product %s (%s)", id, p.Name)
	}
}
