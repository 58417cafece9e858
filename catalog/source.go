package catalog

import (
	"context"
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/Reown-Commerce/reown-storefront-backend/config"
	"github.com/Reown-Commerce/reown-storefront-backend/models"
)

//go:embed data/catalog.yaml data/navigation.yaml data/rwn_packs.yaml
var dataFS embed.FS

// Source supplies the full product catalog. The engine itself never loads
// anything; a source is resolved once at startup and handed to the handlers.
type Source interface {
	Load(ctx context.Context) ([]models.Product, error)
}

// EmbeddedSource serves the YAML seed catalog compiled into the binary.
// It is the default when no database is configured.
type EmbeddedSource struct{}

func (EmbeddedSource) Load(_ context.Context) ([]models.Product, error) {
	return loadSeedProducts()
}

func loadSeedProducts() ([]models.Product, error) {
	raw, err := dataFS.ReadFile("data/catalog.yaml")
	if err != nil {
		return nil, fmt.Errorf("read seed catalog: %w", err)
	}
	var doc struct {
		Products []models.Product `yaml:"products"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse seed catalog: %w", err)
	}
	return doc.Products, nil
}

// SeedProducts exposes the embedded catalog to the seeder CLI.
func SeedProducts() ([]models.Product, error) {
	return loadSeedProducts()
}

// DatabaseSource reads the catalog from the products table. Used when
// STOREFRONT_DB_URL is set and the seeder has run.
type DatabaseSource struct {
	DB *gorm.DB
}

func (s DatabaseSource) Load(ctx context.Context) ([]models.Product, error) {
	ctx, cancel := config.WithTimeoutFrom(ctx)
	defer cancel()

	products := make([]models.Product, 0)
	if err := s.DB.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// LoadNavigation parses the embedded menu tree.
func LoadNavigation() (models.NavigationTree, error) {
	raw, err := dataFS.ReadFile("data/navigation.yaml")
	if err != nil {
		return models.NavigationTree{}, fmt.Errorf("read navigation: %w", err)
	}
	var tree models.NavigationTree
	if err := yaml.Unmarshal(raw, &tree); err != nil {
		return models.NavigationTree{}, fmt.Errorf("parse navigation: %w", err)
	}
	return tree, nil
}

// LoadRWNPacks parses the embedded token pack price list.
func LoadRWNPacks() ([]models.RWNPack, error) {
	raw, err := dataFS.ReadFile("data/rwn_packs.yaml")
	if err != nil {
		return nil, fmt.Errorf("read rwn packs: %w", err)
	}
	var doc struct {
		Packs []models.RWNPack `yaml:"packs"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse rwn packs: %w", err)
	}
	return doc.Packs, nil
}
