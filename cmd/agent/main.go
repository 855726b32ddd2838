package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/wms-sync-agent/docs"
	"github.com/jhoicas/wms-sync-agent/internal/application/delivery"
	"github.com/jhoicas/wms-sync-agent/internal/application/viewmodel"
	"github.com/jhoicas/wms-sync-agent/internal/domain/entity"
	"github.com/jhoicas/wms-sync-agent/internal/domain/repository"
	"github.com/jhoicas/wms-sync-agent/internal/infrastructure/memory"
	"github.com/jhoicas/wms-sync-agent/internal/infrastructure/remote"
	"github.com/jhoicas/wms-sync-agent/internal/infrastructure/sqlite"
	httpRouter "github.com/jhoicas/wms-sync-agent/internal/interfaces/http"
	"github.com/jhoicas/wms-sync-agent/pkg/config"
	"github.com/jhoicas/wms-sync-agent/pkg/logger"
)

// backend servidor WMS: el cliente REST o el servidor demo en memoria.
type backend interface {
	repository.AuthGateway
	repository.InventoryRepository
	delivery.Gateway
	Approvals() repository.ApprovalRepository
	Messages() repository.MessageRepository
	Users() repository.UserRepository
	Products() repository.ProductRepository
	Locations() repository.LocationRepository
}

// @title        WMS Sync Agent API
// @version      1.0
// @description  API local del agente: escrituras local-first con envío diferido al servidor WMS.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	if cfg.App.DeviceID == "" {
		cfg.App.DeviceID, _ = os.Hostname()
	}

	log := logger.New(logger.Config{
		Env:      cfg.App.Env,
		Level:    cfg.App.LogLevel,
		DeviceID: cfg.App.DeviceID,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Bool("demo", cfg.Remote.Demo()).
		Msg("iniciando agente")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := sqlite.Open(ctx, cfg.Store)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Store.Path).Msg("abrir almacén local")
	}
	defer db.Close()

	store := sqlite.NewPendingStore(db)
	ledger := sqlite.NewDeliveryLedger(db, store)
	sessions := sqlite.NewSessionStore(db)
	tokens := remote.SessionTokens{Sessions: sessions}

	var srv backend
	if cfg.Remote.Demo() {
		demo, err := memory.NewDemoServer(cfg.Remote.DemoSecret, tokens)
		if err != nil {
			log.Fatal().Err(err).Msg("servidor demo")
		}
		if cfg.Remote.DemoCatalogPath != "" {
			stats, err := demo.ImportCatalogFile(cfg.Remote.DemoCatalogPath)
			if err != nil {
				log.Fatal().Err(err).Str("path", cfg.Remote.DemoCatalogPath).Msg("importar catálogo demo")
			}
			log.Info().
				Int("productos", stats.Products).
				Int("ubicaciones", stats.Locations).
				Int("existencias", stats.Stock).
				Msg("catálogo demo importado")
		}
		log.Warn().Str("password", memory.DemoPassword).Msg("modo demo: servidor WMS simulado en memoria")
		srv = demo
	} else {
		srv = remote.NewClient(cfg.Remote, cfg.App.DeviceID, tokens, log.Component("remote"))
	}

	policy := delivery.Policy{
		MaxAttempts: cfg.Sync.MaxAttempts,
		BackoffBase: cfg.Sync.BackoffBase,
		BackoffMax:  cfg.Sync.BackoffMax,
	}
	submitter := delivery.NewSubmitter(store, ledger, srv, policy, log.Component("submitter"))
	scheduler := delivery.NewScheduler(submitter, cfg.Sync.Interval, log.Component("scheduler"))

	syncVM := viewmodel.NewSyncViewModel(ctx, store, ledger, scheduler, policy, log.Component("viewmodel"))
	syncVM.OnRejected(func(rr *entity.RejectedRecord) {
		log.Warn().
			Str("kind", string(rr.Kind)).
			Str("client_ref", rr.ClientRef).
			Str("code", rr.Code).
			Msg("registro rechazado por el servidor, requiere revisión")
	})
	submitter.OnRejected(syncVM.NotifyRejected)
	scheduler.OnReport(syncVM.Observe)

	deps := httpRouter.RouterDeps{
		Auth:      viewmodel.NewAuthViewModel(ctx, srv, sessions, 0, log.Component("viewmodel")),
		Approvals: viewmodel.NewApprovalViewModel(ctx, srv.Approvals(), store, sessions, scheduler),
		Inventory: viewmodel.NewInventoryViewModel(ctx, srv, store, sessions, scheduler),
		Messages:  viewmodel.NewMessageViewModel(ctx, srv.Messages(), store, sessions, scheduler),
		Locations: viewmodel.NewLocationViewModel(ctx, srv.Locations(), store, sessions, scheduler),
		Users:     viewmodel.NewUserViewModel(ctx, srv.Users(), sessions),
		Products:  viewmodel.NewProductViewModel(ctx, srv.Products(), sessions),
		Sync:      syncVM,
	}
	if cfg.HTTP.DocsFile != "" {
		if _, err := os.Stat(cfg.HTTP.DocsFile); err != nil {
			log.Warn().Err(err).Str("path", cfg.HTTP.DocsFile).Msg("documentación swagger no disponible")
		} else {
			deps.DocsFile = cfg.HTTP.DocsFile
		}
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	httpRouter.Router(app, deps)

	scheduler.Start(ctx)

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando agente...")

	shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
	defer stop()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	scheduler.Stop()
	cancel()
	for _, closer := range []interface{ Close() }{
		deps.Auth, deps.Approvals, deps.Inventory, deps.Messages,
		deps.Locations, deps.Users, deps.Products, deps.Sync,
	} {
		closer.Close()
	}

	log.Info().Msg("agente detenido")
}
