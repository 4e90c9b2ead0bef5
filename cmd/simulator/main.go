package main

import (
	"encoding/json"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ANIKETSHETTY47/hydrogen-ops-dashboard/internal/config"
	"github.com/ANIKETSHETTY47/hydrogen-ops-dashboard/internal/generator"
)

// Publishes generated real-time samples, re-stamped with the wall clock, so
// the ingestor sees a live feed.
func main() {
	if err := config.Load(); err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}
	zerolog.SetGlobalLevel(config.LogLevel())

	opts := mqtt.NewClientOptions().AddBroker(config.MQTTBroker()).SetClientID("fuel-simulator")
	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		log.Fatal().Err(token.Error()).Msg("mqtt connect")
	}
	defer client.Disconnect(250)

	gen := generator.NewSeeded(config.Seed())
	topic := config.MQTTTopic()
	count := config.SimulatorCount()

	batch := gen.RealTime()
	for i := 0; i < count; i++ {
		if len(batch) == 0 {
			batch = gen.RealTime()
		}
		r := batch[0]
		batch = batch[1:]
		r.Timestamp = time.Now().UTC()

		payload, err := json.Marshal(r)
		if err != nil {
			log.Fatal().Err(err).Msg("encode sample")
		}
		token := client.Publish(topic, 0, false, payload)
		if token.Wait() && token.Error() != nil {
			log.Error().Err(token.Error()).Msg("publish failed")
		}
		time.Sleep(config.SimulatorInterval())
	}
	log.Info().Int("samples", count).Str("topic", topic).Msg("simulation done")
}
