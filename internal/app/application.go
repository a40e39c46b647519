// Package app ties the storefront services together.
package app

import (
	"fmt"
	"net/http"
	"time"

	"github.com/ventaroai/storefront/internal/config"
	"github.com/ventaroai/storefront/internal/domain/product"
	"github.com/ventaroai/storefront/internal/mail"
	"github.com/ventaroai/storefront/internal/notify"
	"github.com/ventaroai/storefront/internal/postgrest"
	"github.com/ventaroai/storefront/internal/services/catalog"
	"github.com/ventaroai/storefront/internal/services/scheduling"
	"github.com/ventaroai/storefront/internal/services/webgen"
	"github.com/ventaroai/storefront/internal/storage"
	"github.com/ventaroai/storefront/internal/storage/memory"
	"github.com/ventaroai/storefront/internal/storage/supastore"
	"github.com/ventaroai/storefront/pkg/logger"
)

// Stores encapsulates persistence dependencies. Nil stores default to the
// Supabase-backed implementation when configured, otherwise to the in-memory
// one.
type Stores struct {
	Products storage.ProductStore
	Projects storage.ProjectStore
}

// Application holds the wired domain services.
type Application struct {
	log *logger.Logger

	AdminEmail string

	Catalog    *catalog.Service
	WebGen     *webgen.Service
	Scheduling *scheduling.Service
	Notifier   *notify.Notifier
}

// New builds a fully initialised application. A nil sender defaults to
// SendGrid using the configured credentials.
func New(cfg *config.Config, stores Stores, sender notify.Sender, log *logger.Logger) (*Application, error) {
	if cfg == nil {
		cfg = config.Load()
	}
	if log == nil {
		log = logger.NewDefault("app")
	}

	if stores.Products == nil || stores.Projects == nil {
		backed, err := buildDefaultStores(cfg, log)
		if err != nil {
			return nil, err
		}
		if stores.Products == nil {
			stores.Products = backed.Products
		}
		if stores.Projects == nil {
			stores.Projects = backed.Projects
		}
	}

	if sender == nil {
		if cfg.SendGridAPIKey == "" {
			log.Warn("SENDGRID_API_KEY not set; notification sends will fail and be logged")
		}
		sender = mail.NewSendGridSender(cfg.SendGridAPIKey, cfg.EmailFrom, cfg.EmailFromName)
	}

	return &Application{
		log:        log,
		AdminEmail: cfg.AdminEmail,
		Catalog:    catalog.New(stores.Products, product.FallbackCatalog(), log),
		WebGen:     webgen.New(stores.Projects, log),
		Scheduling: scheduling.New(),
		Notifier:   notify.NewNotifier(sender, log),
	}, nil
}

func buildDefaultStores(cfg *config.Config, log *logger.Logger) (Stores, error) {
	if cfg.SupabaseURL == "" || cfg.SupabaseServiceKey == "" {
		log.Warn("Supabase not configured; using in-memory stores (catalog serves fallback records)")
		mem := memory.New()
		return Stores{Products: mem, Projects: mem}, nil
	}

	client, err := postgrest.New(postgrest.Config{
		URL:        cfg.SupabaseURL,
		APIKey:     cfg.SupabaseServiceKey,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		Retry:      postgrest.DefaultRetryConfig(),
	})
	if err != nil {
		return Stores{}, fmt.Errorf("configure supabase client: %w", err)
	}

	store := supastore.New(client)
	return Stores{Products: store, Projects: store}, nil
}
