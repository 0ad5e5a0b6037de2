package handler

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/rs/zerolog"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/rl1809/inventory-catalog/internal/core/domain"
	"github.com/rl1809/inventory-catalog/internal/core/service"
)

type GRPCHandler struct {
	inventoryService *service.InventoryService
	log              zerolog.Logger
}

func NewGRPCHandler(inventoryService *service.InventoryService, log zerolog.Logger) *GRPCHandler {
	return &GRPCHandler{inventoryService: inventoryService, log: log}
}

// ListInventory accepts {name, supplier, stock, availability}; every field is
// optional. stock may be a number or a numeric string, availability a bool or
// a string.
func (h *GRPCHandler) ListInventory(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	filter, err := filterFromStruct(req)
	if err != nil {
		return nil, h.toStatus(err)
	}

	items, err := h.inventoryService.List(ctx, filter)
	if err != nil {
		return nil, h.toStatus(err)
	}

	data := make([]interface{}, 0, len(items))
	for _, inv := range items {
		data = append(data, NewInventoryResponse(inv).asMap())
	}

	return h.envelope(map[string]interface{}{
		"status":  statusSuccess,
		"message": "retrived",
		"data":    data,
	})
}

// GetInventory accepts {id}. Malformed ids are reported as NotFound.
func (h *GRPCHandler) GetInventory(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, ok := idFromValue(req.GetFields()["id"])
	if !ok {
		return nil, status.Error(codes.NotFound, "inventory not found")
	}

	item, err := h.inventoryService.Get(ctx, id)
	if err != nil {
		return nil, h.toStatus(err)
	}

	return h.envelope(map[string]interface{}{
		"status":  statusSuccess,
		"message": "retrived",
		"data":    NewInventoryResponse(*item).asMap(),
	})
}

func (h *GRPCHandler) envelope(m map[string]interface{}) (*structpb.Struct, error) {
	out, err := structpb.NewStruct(m)
	if err != nil {
		return nil, h.toStatus(err)
	}
	return out, nil
}

func (h *GRPCHandler) toStatus(err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, service.ErrInvalidFilter):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		h.log.Error().Err(err).Msg("grpc inventory request failed")
		return status.Error(codes.Internal, "internal error")
	}
}

func filterFromStruct(req *structpb.Struct) (domain.InventoryFilter, error) {
	fields := req.GetFields()
	filter := domain.InventoryFilter{
		Name:         fields["name"].GetStringValue(),
		SupplierName: fields["supplier"].GetStringValue(),
	}

	if v, ok := fields["stock"]; ok {
		stock, err := stockFromValue(v)
		if err != nil {
			return filter, err
		}
		filter.Stock = &stock
	}

	if v, ok := fields["availability"]; ok {
		var raw string
		switch k := v.GetKind().(type) {
		case *structpb.Value_BoolValue:
			raw = strconv.FormatBool(k.BoolValue)
		default:
			raw = v.GetStringValue()
		}
		filter.Availability = &raw
	}

	return filter, nil
}

func stockFromValue(v *structpb.Value) (int, error) {
	switch k := v.GetKind().(type) {
	case *structpb.Value_NumberValue:
		n := k.NumberValue
		if n != math.Trunc(n) || math.Abs(n) > 1<<53 {
			return 0, fmt.Errorf("%w: stock must be an integer, got %v", service.ErrInvalidFilter, n)
		}
		return int(n), nil
	case *structpb.Value_StringValue:
		return service.ParseStock(k.StringValue)
	default:
		return 0, fmt.Errorf("%w: stock must be a number or a string", service.ErrInvalidFilter)
	}
}

func idFromValue(v *structpb.Value) (uint, bool) {
	switch k := v.GetKind().(type) {
	case *structpb.Value_NumberValue:
		n := k.NumberValue
		if n < 1 || n != math.Trunc(n) || n > math.MaxUint32 {
			return 0, false
		}
		return uint(n), true
	case *structpb.Value_StringValue:
		id, err := strconv.ParseUint(k.StringValue, 10, 32)
		if err != nil || id == 0 {
			return 0, false
		}
		return uint(id), true
	default:
		return 0, false
	}
}
