package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/example/floraison/internal/infrastructure/journal"
	"github.com/example/floraison/internal/infrastructure/kafka"
)

// eventtail follows the shop's Kafka change feed and prints every event. It
// is a debugging aid for watching orders, stock moves and cart activity live.
func main() {
	brokersStr := getEnv("KAFKA_BROKERS", "localhost:9092")
	brokers := strings.Split(brokersStr, ",")
	topic := getEnv("KAFKA_TOPIC", "floraison-events")
	groupID := getEnv("KAFKA_GROUP_ID", "floraison-eventtail")

	log.Printf("[Eventtail] Tailing %s on %v", topic, brokers)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	consumer := kafka.NewConsumer(brokers, topic, groupID)
	defer consumer.Close()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		cancel()
	}()

	err := consumer.Consume(ctx, func(ctx context.Context, key, value []byte) error {
		var event journal.Event
		if err := json.Unmarshal(value, &event); err != nil {
			log.Printf("[Eventtail] Skipping unreadable message: %v", err)
			return nil
		}
		log.Printf("[Eventtail] %s %s v%d (%s): %s",
			event.AggregateType, event.EventType, event.Version, event.AggregateID, event.Data)
		return nil
	})
	if err != nil && ctx.Err() == nil {
		log.Fatalf("[Eventtail] Consumer stopped: %v", err)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
