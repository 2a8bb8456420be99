package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/niksmo/storefront/config"
	"github.com/niksmo/storefront/internal/adapter/events"
	"github.com/niksmo/storefront/internal/adapter/httphandler"
	"github.com/niksmo/storefront/internal/adapter/mock"
	"github.com/niksmo/storefront/internal/adapter/woocommerce"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/niksmo/storefront/internal/core/service"
	"github.com/niksmo/storefront/pkg/schema"
	"github.com/twmb/franz-go/pkg/sr"
)

type coreServices struct {
	cart    port.CartStore
	catalog port.Catalog
	view    port.ViewStore
}

type App struct {
	ctx        context.Context
	cfg        config.Config
	backend    port.CommerceBackend
	producer   *events.CartEventsProducer
	services   coreServices
	httpServer httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initBackend()
	app.initEventsProducer()
	app.initCoreServices()
	app.initHTTPServer()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

// initBackend fixes the mock-vs-live decision for the whole process.
func (app *App) initBackend() {
	const op = "App.initBackend"
	log := slog.With("op", op)

	if !app.cfg.Commerce.Live() {
		log.Info("commerce backend is not configured, using mock dataset")
		app.backend = mock.New()
		return
	}

	client, err := woocommerce.New(woocommerce.Config{
		APIURL:         app.cfg.Commerce.APIURL,
		ConsumerKey:    app.cfg.Commerce.ConsumerKey,
		ConsumerSecret: app.cfg.Commerce.ConsumerSecret,
	})
	if err != nil {
		app.fallDown(op, err)
	}

	log.Info("using live commerce backend", "apiURL", app.cfg.Commerce.APIURL)
	app.backend = client
}

func (app *App) initEventsProducer() {
	const op = "App.initEventsProducer"
	log := slog.With("op", op)

	if !app.cfg.Broker.Enabled() {
		log.Info("cart-event telemetry is disabled")
		return
	}

	srClient, err := sr.NewClient(
		sr.URLs(app.cfg.Broker.SchemaRegistryURLs...),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	subject := app.cfg.Broker.CartEventsTopic + "-value"
	serde, err := schema.NewSerdeCartEventV1(
		app.ctx,
		schema.SubjectOpt(subject),
		schema.SchemaIdentifierOpt(schema.NewSchemaCreater(srClient)),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	producer, err := events.NewCartEventsProducer(
		events.ProducerClientOpt(
			app.ctx,
			app.cfg.Broker.SeedBrokers,
			app.cfg.Broker.CartEventsTopic,
		),
		events.ProducerEncoderOpt(serde),
	)
	if err != nil {
		app.fallDown(op, err)
	}
	app.producer = &producer
}

func (app *App) initCoreServices() {
	var producer port.CartEventsProducer
	if app.producer != nil {
		producer = *app.producer
	}

	app.services.cart = service.NewCartService(app.backend, producer)
	app.services.catalog = service.NewCatalogService(app.backend)
	app.services.view = service.NewViewService()
}

func (app *App) initHTTPServer() {
	mux := http.NewServeMux()
	httphandler.RegisterCart(mux, app.services.cart)
	httphandler.RegisterCatalog(mux, app.services.catalog)
	httphandler.RegisterView(mux, app.services.view)

	handler := httphandler.AllowJSON(mux)
	app.httpServer = httphandler.NewHTTPServer(app.cfg.HTTPServerAddr, handler)
}

// Run starts the inbound server and performs the initial cart fetch so
// the store always holds a renderable snapshot.
func (app *App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)

	app.services.cart.Refresh(app.ctx)

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	if app.producer != nil {
		app.producer.Close()
	}

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
