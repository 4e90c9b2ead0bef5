package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ANIKETSHETTY47/hydrogen-ops-dashboard/internal/bootstrap"
	"github.com/ANIKETSHETTY47/hydrogen-ops-dashboard/internal/config"
	"github.com/ANIKETSHETTY47/hydrogen-ops-dashboard/internal/generator"
	httpHandlers "github.com/ANIKETSHETTY47/hydrogen-ops-dashboard/internal/http"
	"github.com/ANIKETSHETTY47/hydrogen-ops-dashboard/internal/metrics"
	"github.com/ANIKETSHETTY47/hydrogen-ops-dashboard/internal/service"
	"github.com/ANIKETSHETTY47/hydrogen-ops-dashboard/internal/stream"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if err := config.Load(); err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}
	zerolog.SetGlobalLevel(config.LogLevel())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	archive, closeArchive, err := bootstrap.Archive(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("archive setup failed")
	}
	defer closeArchive()

	objects, notifier, err := bootstrap.Cloud(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("cloud setup failed")
	}

	m := metrics.New(prometheus.DefaultRegisterer)
	svcs := service.New(service.Deps{
		Generator: generator.NewSeeded(config.Seed()),
		Archive:   archive,
		Objects:   objects,
		Notifier:  notifier,
		Metrics:   m,
		Logger:    log.Logger,
	})

	hub := stream.NewHub(svcs.Dashboards, m, log.With().Str("component", "stream").Logger())
	go hub.Run(ctx, config.StreamInterval())
	streamSrv := &http.Server{Addr: config.StreamAddr(), Handler: hub.Handler()}
	go func() {
		log.Info().Str("addr", streamSrv.Addr).Msg("stream listening")
		if err := streamSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("stream server exit")
		}
	}()

	app := httpHandlers.NewApp()
	httpHandlers.Register(app, svcs, prometheus.DefaultGatherer)

	go func() {
		<-ctx.Done()
		log.Info().Msg("shutting down")
		_ = streamSrv.Close()
		_ = app.Shutdown()
	}()

	addr := config.APIAddr()
	log.Info().Str("addr", addr).Msg("api listening")
	if err := app.Listen(addr); err != nil {
		log.Error().Err(err).Msg("server exit")
	}
}
