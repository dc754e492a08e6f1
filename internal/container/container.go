package container

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"ovi/geoservices/internal/config"
	"ovi/geoservices/internal/engine"
	"ovi/geoservices/internal/registry"
	"ovi/geoservices/internal/transport"
)

// Container holds all initialized components
type Container struct {
	Config     *config.Config
	Client     transport.Client
	Categories *registry.CategoryRegistry
	Suppliers  *registry.SupplierRegistry

	Engine *engine.Engine
}

// New creates a new container with all dependencies initialized
func New(cfg *config.Config) (*Container, error) {
	container := &Container{
		Config: cfg,
	}

	proxySupplier, err := transport.NewProxySupplier(context.Background(), cfg.Places.Proxies, cfg.Places.SearchURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize proxy supplier: %w", err)
	}

	client := transport.NewClient(transport.Options{
		Timeout:           time.Duration(cfg.Places.Timeout) * time.Second,
		MaxRetries:        cfg.Places.MaxRetries,
		RequestsPerSecond: cfg.Places.MaxRequestsPerSecond,
		Locale:            cfg.Places.Locale,
		Proxies:           proxySupplier,
	})
	container.Client = client

	container.Categories = registry.NewCategoryRegistry()
	container.Suppliers = registry.NewSupplierRegistry()

	container.Engine = engine.New(cfg, client, container.Categories, container.Suppliers)

	return container, nil
}

// Run warms the engine by fetching the category tree. Search, routing
// and geocoding work without it, category browse does not.
func (c *Container) Run(ctx context.Context) error {
	r := c.Engine.InitializeCategories(ctx)
	if _, err := r.Wait(ctx); err != nil {
		return fmt.Errorf("failed to initialize categories: %w", err)
	}

	log.Infof("Category tree initialized with %d top level groups", len(c.Categories.Children("")))
	return nil
}

// Close performs cleanup when shutting down
func (c *Container) Close() error {
	log.Info("Shutting down container...")
	return nil
}
