package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ANIKETSHETTY47/hydrogen-ops-dashboard/internal/bootstrap"
	"github.com/ANIKETSHETTY47/hydrogen-ops-dashboard/internal/config"
	"github.com/ANIKETSHETTY47/hydrogen-ops-dashboard/internal/generator"
	"github.com/ANIKETSHETTY47/hydrogen-ops-dashboard/internal/insights"
	"github.com/ANIKETSHETTY47/hydrogen-ops-dashboard/internal/metrics"
	"github.com/ANIKETSHETTY47/hydrogen-ops-dashboard/internal/service"
)

func main() {
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

	svcs := service.New(service.Deps{
		Generator: generator.NewSeeded(config.Seed()),
		Archive:   archive,
		Metrics:   metrics.New(prometheus.DefaultRegisterer),
		Logger:    log.Logger,
	})

	opts := mqtt.NewClientOptions().AddBroker(config.MQTTBroker()).SetClientID("fuel-ingestor")
	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		log.Fatal().Err(token.Error()).Msg("mqtt connect")
	}
	defer client.Disconnect(250)

	handler := func(_ mqtt.Client, msg mqtt.Message) {
		report, err := svcs.Ingest.FromMQTT(ctx, msg.Topic(), msg.Payload())
		if err != nil {
			log.Error().Err(err).Msg("ingest failed")
			return
		}
		if report != nil {
			log.Info().
				Str("average_fuel_level", report.Value(insights.AverageFuelLevel)).
				Int("recommendations", len(report.Recommendations)).
				Msg("insight report ready")
		}
	}

	topic := config.MQTTTopic()
	if token := client.Subscribe(topic, 0, handler); token.Wait() && token.Error() != nil {
		log.Fatal().Err(token.Error()).Msg("subscribe failed")
	}

	log.Info().Str("topic", topic).Msg("ingestor running; Ctrl+C to stop")
	<-ctx.Done()
	log.Info().Msg("ingestor stopping")
}
