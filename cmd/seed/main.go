// seed carga categorías y productos en kategoria/produkty de forma idempotente (por nombre).
//
// Uso: go run ./cmd/seed [--file productos.csv] [--encoding windows-1250]
// Sin --file inserta un catálogo de demostración. El CSV tiene cabecera
// nazwa,liczba,cena,kategoria (kategoria vacía = sin categoría).
package main

import (
	"context"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/internal/infrastructure/postgres"
	"github.com/jhoicas/Inventario-dashboard/pkg/config"
	"github.com/jhoicas/Inventario-dashboard/pkg/logger"
)

func main() {
	file := pflag.StringP("file", "f", "", "CSV con productos (nazwa,liczba,cena,kategoria)")
	encoding := pflag.StringP("encoding", "e", "utf-8", "codificación del CSV: utf-8, windows-1250, iso-8859-2, iso-8859-1")
	pflag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).Named("seed")

	rows := demoCatalog()
	if *file != "" {
		f, err := os.Open(*file)
		if err != nil {
			log.Fatal().Err(err).Str("file", *file).Msg("abrir CSV")
		}
		defer f.Close()
		rows, err = readCSV(f, *encoding)
		if err != nil {
			log.Fatal().Err(err).Str("file", *file).Msg("leer CSV")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	seeder := postgres.NewSeeder(pool)
	categoryIDs := make(map[string]int64)
	var createdCategories, createdProducts int
	for _, r := range rows {
		p := &entity.Product{Name: r.Name, Quantity: r.Quantity, UnitPrice: r.UnitPrice}
		if r.Category != "" {
			id, ok := categoryIDs[r.Category]
			if !ok {
				var created bool
				id, created, err = seeder.EnsureCategory(ctx, r.Category)
				if err != nil {
					log.Fatal().Err(err).Str("category", r.Category).Msg("crear categoría")
				}
				if created {
					createdCategories++
				}
				categoryIDs[r.Category] = id
			}
			p.CategoryID = &id
		}
		created, err := seeder.EnsureProduct(ctx, p)
		if err != nil {
			log.Fatal().Err(err).Str("product", r.Name).Msg("crear producto")
		}
		if created {
			createdProducts++
		}
	}

	log.Info().
		Int("rows", len(rows)).
		Int("categories_created", createdCategories).
		Int("products_created", createdProducts).
		Msg("seed completado")
}
