package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/stock-pesca/internal/interfaces/shell"
	"github.com/jhoicas/stock-pesca/pkg/config"
	"github.com/jhoicas/stock-pesca/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
		App:   cfg.App.Name + "-desktop",
	})

	assets, err := shell.NewAssetServer(cfg.Desktop.AssetsDir, log.Component("assets"))
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.Desktop.AssetsDir).Msg("directorio de la interfaz")
	}

	handler, err := shell.NewRouter(assets, cfg.Desktop.APIURL, log.Component("shell"))
	if err != nil {
		log.Fatal().Err(err).Str("api_url", cfg.Desktop.APIURL).Msg("configurar shell")
	}

	srv := shell.NewServer(handler, cfg.Desktop.Addr())
	if err := srv.Listen(); err != nil {
		log.Fatal().Err(err).Str("addr", cfg.Desktop.Addr()).Msg("abrir puerto")
	}

	log.Info().
		Str("addr", srv.Addr()).
		Str("root", assets.Root()).
		Str("api_url", cfg.Desktop.APIURL).
		Msg("shell de escritorio escuchando")

	go func() {
		if err := srv.Serve(); err != nil {
			log.Error().Err(err).Msg("servidor del shell finalizado")
		}
	}()

	if cfg.Desktop.OpenBrowser {
		if err := shell.OpenBrowser(cfg.Desktop.URL()); err != nil {
			log.Warn().Err(err).Str("url", cfg.Desktop.URL()).Msg("no se pudo abrir el navegador")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del shell")
	}
	log.Info().Msg("shell detenido")
}
