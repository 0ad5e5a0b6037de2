package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rl1809/inventory-catalog/internal/core/domain"
	"github.com/rl1809/inventory-catalog/internal/port"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidFilter = errors.New("invalid filter")
)

// NotFoundError is the concrete error behind ErrNotFound. Cause holds the
// storage failure, if any, that was collapsed into the not-found result.
type NotFoundError struct {
	Message string
	Cause   error
}

func (e *NotFoundError) Error() string { return e.Message }

func (e *NotFoundError) Unwrap() error { return e.Cause }

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

type InventoryService struct {
	repo port.InventoryRepository
}

func NewInventoryService(repo port.InventoryRepository) *InventoryService {
	return &InventoryService{repo: repo}
}

// List returns the items matching filter. An empty match is reported as
// ErrNotFound rather than an empty slice.
func (s *InventoryService) List(ctx context.Context, filter domain.InventoryFilter) ([]domain.Inventory, error) {
	items, err := s.repo.ListInventory(ctx, filter.Query())
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	if len(items) == 0 {
		return nil, &NotFoundError{Message: "inventory data not found"}
	}

	return items, nil
}

// Get looks an item up by id. Every failure, including storage errors, is
// reported as ErrNotFound; the underlying error stays reachable via Unwrap.
func (s *InventoryService) Get(ctx context.Context, id uint) (*domain.Inventory, error) {
	item, err := s.repo.GetInventory(ctx, id)
	if err != nil || item == nil {
		return nil, &NotFoundError{
			Message: fmt.Sprintf("Inventory with id %d not found", id),
			Cause:   err,
		}
	}

	return item, nil
}

// ParseStock converts a raw stock parameter into a filter value.
func ParseStock(raw string) (int, error) {
	stock, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: stock must be an integer, got %q", ErrInvalidFilter, raw)
	}
	return stock, nil
}
