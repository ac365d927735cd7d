package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/stock-pesca/internal/application/inventory"
	"github.com/jhoicas/stock-pesca/internal/domain/repository"
	"github.com/jhoicas/stock-pesca/internal/infrastructure/excel"
	"github.com/jhoicas/stock-pesca/internal/infrastructure/filestore"
	"github.com/jhoicas/stock-pesca/internal/infrastructure/memstore"
	inframinio "github.com/jhoicas/stock-pesca/internal/infrastructure/minio"
	infrapdf "github.com/jhoicas/stock-pesca/internal/infrastructure/pdf"
	"github.com/jhoicas/stock-pesca/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/stock-pesca/internal/infrastructure/redis"
	httpRouter "github.com/jhoicas/stock-pesca/internal/interfaces/http"
	"github.com/jhoicas/stock-pesca/pkg/config"
	"github.com/jhoicas/stock-pesca/pkg/logger"
)

const shopName = "Ancla y Sedal"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
		App:   cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	blobs, closeBlobs, err := openBlobStore(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Storage.Driver).Msg("abrir almacenamiento")
	}
	defer closeBlobs()

	storage := inventory.NewStorage(blobs, cfg.Storage.Key, log.Component("storage"))
	store, err := inventory.NewStore(ctx, storage, inventory.WithLogger(log.Component("store")))
	if err != nil {
		log.Fatal().Err(err).Msg("cargar inventario")
	}

	transfer := inventory.NewTransfer(store, log.Component("transfer"))
	drafts := inventory.NewDraftRegistry(store)
	drafts.StartPruneLoop(ctx, 10*time.Minute, 2*time.Hour)

	var sink inventory.BackupSink
	if cfg.Backup.Enabled() {
		client, err := inframinio.NewClient(cfg.Backup)
		if err != nil {
			log.Fatal().Err(err).Msg("cliente de copias de seguridad")
		}
		if err := inframinio.EnsureBucket(ctx, client, cfg.Backup.Bucket); err != nil {
			log.Fatal().Err(err).Str("bucket", cfg.Backup.Bucket).Msg("bucket de copias de seguridad")
		}
		sink = inframinio.NewBackupSink(client, cfg.Backup.Bucket)
	}

	app := httpRouter.NewApp(cfg.App.Name, cfg.HTTP, log.Zerolog())
	httpRouter.Router(app, httpRouter.RouterDeps{
		AppName:  cfg.App.Name,
		Store:    store,
		Commands: inventory.NewCommands(store, transfer),
		Drafts:   drafts,
		Reports:  inventory.NewReportUseCase(store, excel.NewSheetWriter(), infrapdf.NewLowStockReport(), shopName),
		Backups:  inventory.NewBackupUseCase(store, transfer, sink, log.Component("backup")),
		Now:      time.Now,
		Log:      log.Component("http"),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// openBlobStore abre el almacén elegido por STORAGE_DRIVER. El cierre devuelto libera conexiones.
func openBlobStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (repository.BlobStore, func(), error) {
	noop := func() {}
	switch cfg.Storage.Driver {
	case "memory":
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al cerrar")
		return memstore.NewBlobStore(), noop, nil
	case "file":
		s, err := filestore.NewBlobStore(cfg.Storage.Dir)
		if err != nil {
			return nil, noop, err
		}
		return s, noop, nil
	case "postgres":
		if err := postgres.RunMigrations(cfg.DB.ConnectionString(), log.Component("migrate")); err != nil {
			return nil, noop, err
		}
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, noop, err
		}
		return postgres.NewBlobStore(pool), pool.Close, nil
	case "redis":
		client, err := infraredis.NewClient(ctx, cfg.Redis)
		if err != nil {
			return nil, noop, err
		}
		return infraredis.NewBlobStore(client), func() { _ = client.Close() }, nil
	default:
		return nil, noop, fmt.Errorf("driver desconocido %q", cfg.Storage.Driver)
	}
}
