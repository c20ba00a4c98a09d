// Package cache implementa la caché opcional del catálogo crudo sobre Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/repository"
	"github.com/jhoicas/Inventario-dashboard/pkg/config"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// DefaultKey clave bajo la que se guarda el catálogo.
const DefaultKey = "inventario:catalog:v1"

var _ repository.CatalogCache = (*RedisCatalogCache)(nil)

// NewClient abre el cliente Redis desde REDIS_URL y verifica la conexión con PING.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	opts.ReadTimeout = 2 * time.Second
	opts.WriteTimeout = 2 * time.Second
	opts.DialTimeout = 3 * time.Second

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// RedisCatalogCache guarda el catálogo serializado en JSON con TTL.
// La generación vive en "<key>:gen" (INCR en cada invalidación) y el catálogo en
// "<key>:<gen>"; las entradas de generaciones viejas expiran solas por TTL.
type RedisCatalogCache struct {
	client redis.Cmdable
	key    string
	ttl    time.Duration
}

// NewRedisCatalogCache construye la caché. client puede ser *redis.Client o un pipeline.
func NewRedisCatalogCache(client redis.Cmdable, key string, ttl time.Duration) *RedisCatalogCache {
	if key == "" {
		key = DefaultKey
	}
	return &RedisCatalogCache{client: client, key: key, ttl: ttl}
}

func (c *RedisCatalogCache) genKey() string { return c.key + ":gen" }

func (c *RedisCatalogCache) dataKey(gen int64) string { return fmt.Sprintf("%s:%d", c.key, gen) }

// Get devuelve el catálogo de la generación vigente; (nil, gen, nil) si no hay entrada.
func (c *RedisCatalogCache) Get(ctx context.Context) (*repository.Catalog, int64, error) {
	gen, err := c.client.Get(ctx, c.genKey()).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, 0, fmt.Errorf("cache get gen: %w", err)
	}
	data, err := c.client.Get(ctx, c.dataKey(gen)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, gen, nil
		}
		return nil, gen, fmt.Errorf("cache get: %w", err)
	}
	catalog, err := decode(data)
	if err != nil {
		return nil, gen, err
	}
	return catalog, gen, nil
}

// Set guarda el catálogo bajo gen con el TTL configurado.
func (c *RedisCatalogCache) Set(ctx context.Context, gen int64, catalog *repository.Catalog) error {
	data, err := encode(catalog)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, c.dataKey(gen), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Invalidate avanza la generación; no falla si no había entrada.
func (c *RedisCatalogCache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, c.genKey()).Err(); err != nil {
		return fmt.Errorf("cache invalidate: %w", err)
	}
	return nil
}

// ── serialización ─────────────────────────────────────────────────────────────
// Formato propio con tags JSON para no acoplar las entidades al formato de caché.

type cachedCategory struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type cachedProduct struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	CategoryID   *int64          `json:"category_id"`
	CategoryName string          `json:"category_name,omitempty"`
}

type cachedCatalog struct {
	Categories []cachedCategory `json:"categories"`
	Products   []cachedProduct  `json:"products"`
}

func encode(c *repository.Catalog) ([]byte, error) {
	if c == nil {
		return nil, fmt.Errorf("cache encode: catálogo nil")
	}
	out := cachedCatalog{
		Categories: make([]cachedCategory, 0, len(c.Categories)),
		Products:   make([]cachedProduct, 0, len(c.Products)),
	}
	for _, cat := range c.Categories {
		out.Categories = append(out.Categories, cachedCategory{ID: cat.ID, Name: cat.Name})
	}
	for _, p := range c.Products {
		out.Products = append(out.Products, cachedProduct{
			ID: p.ID, Name: p.Name, Quantity: p.Quantity, UnitPrice: p.UnitPrice,
			CategoryID: p.CategoryID, CategoryName: p.CategoryName,
		})
	}
	data, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("cache encode: %w", err)
	}
	return data, nil
}

func decode(data []byte) (*repository.Catalog, error) {
	var in cachedCatalog
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}
	c := &repository.Catalog{
		Categories: make([]*entity.Category, 0, len(in.Categories)),
		Products:   make([]*entity.Product, 0, len(in.Products)),
	}
	for _, cat := range in.Categories {
		c.Categories = append(c.Categories, &entity.Category{ID: cat.ID, Name: cat.Name})
	}
	for _, p := range in.Products {
		c.Products = append(c.Products, &entity.Product{
			ID: p.ID, Name: p.Name, Quantity: p.Quantity, UnitPrice: p.UnitPrice,
			CategoryID: p.CategoryID, CategoryName: p.CategoryName,
		})
	}
	return c, nil
}
