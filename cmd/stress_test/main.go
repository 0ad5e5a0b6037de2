package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/rl1809/inventory-catalog/internal/adapter/storage"
	"github.com/rl1809/inventory-catalog/internal/config"
	"github.com/rl1809/inventory-catalog/internal/core/domain"
	"github.com/rl1809/inventory-catalog/internal/core/service"
	"github.com/rl1809/inventory-catalog/internal/logger"
	"github.com/rl1809/inventory-catalog/internal/port"
)

const (
	itemCount     = 40
	totalRequests = 200
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	log := logger.New("warn", cfg.Environment)

	db, err := storage.Open(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}
	defer storage.Close(db)

	if err := storage.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	adapter := storage.NewGormAdapter(db)
	inventoryService := service.NewInventoryService(adapter)
	var writer port.CatalogWriter = adapter

	// Seed a supplier with a unique name so runs do not see each other's rows
	supplier := domain.Supplier{Name: "stress-" + uuid.NewString()[:8]}
	if err := writer.CreateSupplier(ctx, &supplier); err != nil {
		log.Fatal().Err(err).Msg("failed to create supplier")
	}

	availableCount := 0
	for i := 0; i < itemCount; i++ {
		inv := domain.Inventory{
			Name:         fmt.Sprintf("stress item %d", i),
			Description:  "seeded by stress_test",
			Note:         supplier.Name,
			Stock:        i % 4,
			Availability: i%2 == 0,
			SupplierID:   supplier.ID,
		}
		if err := writer.CreateInventory(ctx, &inv); err != nil {
			log.Fatal().Err(err).Msg("failed to create inventory")
		}
		if inv.Availability {
			availableCount++
		}
	}

	available := "true"

	// Counters
	var successCount atomic.Int32
	var mismatchCount atomic.Int32
	var errorCount atomic.Int32

	// Spawn concurrent lookups, alternating between an all-items and an
	// available-only filter on the seeded supplier
	var wg sync.WaitGroup
	start := time.Now()

	for i := 0; i < totalRequests; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()

			filter := domain.InventoryFilter{SupplierName: supplier.Name}
			want := itemCount
			if n%2 == 1 {
				filter.Availability = &available
				want = availableCount
			}

			items, err := inventoryService.List(ctx, filter)
			switch {
			case err != nil:
				errorCount.Add(1)
			case len(items) != want:
				mismatchCount.Add(1)
			default:
				successCount.Add(1)
			}
		}(i)
	}

	wg.Wait()
	elapsed := time.Since(start)

	// Results
	success := successCount.Load()
	mismatch := mismatchCount.Load()
	failed := errorCount.Load()

	fmt.Println("========== STRESS TEST RESULTS ==========")
	fmt.Printf("Supplier:         %s\n", supplier.Name)
	fmt.Printf("Seeded Items:     %d (%d available)\n", itemCount, availableCount)
	fmt.Printf("Total Requests:   %d\n", totalRequests)
	fmt.Printf("Successful:       %d\n", success)
	fmt.Printf("Wrong Count:      %d\n", mismatch)
	fmt.Printf("Errors:           %d\n", failed)
	fmt.Printf("Duration:         %v\n", elapsed)
	fmt.Println("==========================================")

	if success == int32(totalRequests) {
		fmt.Printf("PASS: all %d lookups returned the expected rows\n", totalRequests)
	} else {
		fmt.Printf("FAIL: expected %d correct lookups, got %d\n", totalRequests, success)
	}

	// Cleanup: deleting the supplier cascades to its items
	if err := db.Exec("DELETE FROM suppliers WHERE id = ?", supplier.ID).Error; err != nil {
		log.Error().Err(err).Msg("cleanup failed")
	}

	_, err = inventoryService.List(ctx, domain.InventoryFilter{SupplierName: supplier.Name})
	if errors.Is(err, service.ErrNotFound) {
		fmt.Println("PASS: supplier delete cascaded to inventory")
	} else {
		fmt.Println("FAIL: inventory survived supplier delete")
	}
}
