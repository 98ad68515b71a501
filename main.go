package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"wempy-orders/config"
	httpapi "wempy-orders/internal/api/http"
	"wempy-orders/internal/domain"
	"wempy-orders/internal/printing"
	"wempy-orders/internal/service"
	"wempy-orders/internal/storage"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	ordersDir := config.Getenv("ORDERS_DIR", "orders")
	if err := os.MkdirAll(ordersDir, 0o755); err != nil {
		log.Fatal("Failed to create orders directory:", err)
	}

	counter := buildCounterStore(ordersDir)

	renderer, err := printing.NewReceiptRenderer(config.Getenv("BASE_URL", "http://127.0.0.1:5000"))
	if err != nil {
		log.Fatal("Failed to init receipt renderer:", err)
	}

	var publisher service.OrderPublisher
	if os.Getenv("KAFKA_BROKER") != "" {
		writer := config.NewKafkaWriter("orders")
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
	}

	var archive service.OrderArchive
	if os.Getenv("DB_HOST") != "" {
		db := config.MustInitPostgres()
		defer db.Close()
		archive = storage.NewPostgresArchive(db)
	}

	dispatcher := buildDispatcher(publisher)
	orders := service.NewOrderService(counter, renderer, dispatcher, archive, publisher, ordersDir)

	r := mux.NewRouter()
	httpapi.NewHandler(orders).RegisterRoutes(r)
	handler := cors.Default().Handler(r)

	port := config.Getenv("PORT", "5000")
	log.Println("Wempy Order & Print Service starting on port " + port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}

func buildCounterStore(ordersDir string) service.CounterStore {
	if config.Getenv("COUNTER_BACKEND", "file") == "redis" {
		log.Println("Using Redis order counter")
		return storage.NewRedisCounterStore(config.MustInitRedis(), os.Getenv("COUNTER_KEY"))
	}

	counterFile := config.Getenv("COUNTER_FILE", filepath.Join(ordersDir, "last_id.txt"))
	counter, err := storage.NewFileCounterStore(counterFile)
	if err != nil {
		log.Fatal("Failed to init order counter:", err)
	}
	return counter
}

func buildDispatcher(publisher service.OrderPublisher) *printing.Dispatcher {
	primary, fallback := printing.ProbeBackends()
	log.Printf("Print backend: %s", primary.Name())

	// Dispatch swallows print failures; the hook keeps them observable.
	hook := func(path string, err error) {
		if publisher == nil {
			return
		}
		pubErr := publisher.PublishOrderEvent(context.Background(), domain.OrderEvent{
			Type:      domain.EventPrintFailed,
			FilePath:  path,
			Error:     err.Error(),
			Timestamp: time.Now(),
		})
		if pubErr != nil {
			log.Printf("Warning: failed to publish print failure for %s: %v", path, pubErr)
		}
	}
	return printing.NewDispatcher(primary, fallback, hook)
}
