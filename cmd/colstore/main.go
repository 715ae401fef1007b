package main

import (
	"log/slog"
	"os"

	"github.com/leengari/mini-colstore/internal/engine"
	"github.com/leengari/mini-colstore/internal/logging"
)

func main() {
	logger, closeFn := logging.SetupLogger()
	defer closeFn()

	slog.SetDefault(logger)
	slog.Info("Starting colstore demo...")

	eng := engine.New()
	eng.AddObserver(engine.NewLoggingObserver())

	// Seed demo tables
	if _, err := eng.CreateTable("users", map[string][]any{
		"id":      []any{int64(1), int64(2), int64(3), int64(4)},
		"name":    []any{"Alice", "Bob", "Charlie", "Diana"},
		"age":     []any{int64(25), int64(30), int64(35), int64(40)},
		"premium": []any{true, false, true, false},
		"score":   []any{81.5, 64.2, 92.3, 77.0},
	}); err != nil {
		slog.Error("failed to create users table", "error", err)
		closeFn()
		os.Exit(1)
	}

	if _, err := eng.CreateTable("orders", map[string][]any{
		"order_id": []any{int64(100), int64(101), int64(102), int64(103)},
		"user_id":  []any{int64(1), int64(1), int64(2), int64(5)},
		"amount":   []any{999.99, 25.50, 75.00, 12.00},
	}); err != nil {
		slog.Error("failed to create orders table", "error", err)
		closeFn()
		os.Exit(1)
	}

	demoFilter(eng)
	demoAggregate(eng)
	demoSort(eng)
	demoGroupBy(eng)
	demoJoin(eng)

	slog.Info("Demo complete", "tables", eng.Store().List())
}
