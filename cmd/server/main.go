package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/example/floraison/internal/api"
	"github.com/example/floraison/internal/auth"
	"github.com/example/floraison/internal/domain/cart"
	"github.com/example/floraison/internal/domain/catalog"
	"github.com/example/floraison/internal/domain/order"
	"github.com/example/floraison/internal/domain/stock"
	"github.com/example/floraison/internal/infrastructure/journal"
	"github.com/example/floraison/internal/infrastructure/kafka"
	"github.com/example/floraison/internal/notify"
	"github.com/example/floraison/internal/query"
)

func main() {
	addr := getEnv("ADDR", ":8080")
	kafkaTopic := getEnv("KAFKA_TOPIC", "floraison-events")
	jwtSecret := getEnv("JWT_SECRET", "floraison-dev-secret-not-for-production")
	reserve, err := strconv.Atoi(getEnv("RESERVE_THRESHOLD", "5"))
	if err != nil || reserve < 1 {
		log.Fatalf("[Server] RESERVE_THRESHOLD must be a positive integer")
	}

	log.Println("[Server] ========================================")
	log.Println("[Server] Floraison - flower shop storefront")
	log.Println("[Server] ========================================")

	// Optional Kafka change feed. State lives in memory either way.
	var producer *kafka.Producer
	if brokersStr := os.Getenv("KAFKA_BROKERS"); brokersStr != "" {
		brokers := strings.Split(brokersStr, ",")
		producer = kafka.NewProducer(brokers, kafkaTopic)
		defer producer.Close()
		log.Printf("[Server] Publishing events to Kafka %v topic %s", brokers, kafkaTopic)
	} else {
		log.Println("[Server] KAFKA_BROKERS not set; events stay in memory only")
	}

	eventJournal := journal.NewMemoryJournal(producer)

	// Seed the core: catalog, stock ledger, registry, carts.
	shopCatalog := catalog.Default()
	ledger := stock.NewLedger(stock.DefaultSeed(), eventJournal)
	registry := order.NewRegistry()
	carts := cart.NewStore(eventJournal)
	orderSvc := order.NewService(ledger, registry, carts, eventJournal)

	notices := notify.NewCenter(notify.DefaultTTL)
	defer notices.Stop()

	gate, err := auth.NewGate(
		getEnv("ADMIN_USER", auth.DefaultAdminUser),
		getEnv("ADMIN_PASS", auth.DefaultAdminPass),
	)
	if err != nil {
		log.Fatalf("[Server] Failed to set up admin gate: %v", err)
	}
	jwtService := auth.NewJWTService(jwtSecret, 12*time.Hour)

	queryHandler := query.NewHandler(shopCatalog, ledger, registry, carts, reserve)
	handlers := api.NewHandlers(shopCatalog, carts, orderSvc, queryHandler, notices)
	adminHandlers := api.NewAdminHandlers(gate, jwtService, ledger, orderSvc, queryHandler, notices)
	router := api.NewRouter(handlers, adminHandlers, jwtService)

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Printf("[Server] Listening on %s", addr)
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatalf("[Server] Server error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[Server] Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	server.Shutdown(shutdownCtx)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
