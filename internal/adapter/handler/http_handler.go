package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/rl1809/inventory-catalog/internal/core/domain"
	"github.com/rl1809/inventory-catalog/internal/core/service"
)

const (
	statusSuccess = "success"
	statusFailed  = "failed"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HTTPHandler struct {
	inventoryService *service.InventoryService
	db               Pinger
	log              zerolog.Logger
	exposeErrors     bool
}

type InventoryListHTTPResponse struct {
	Status  string              `json:"status"`
	Message string              `json:"message"`
	Data    []InventoryResponse `json:"data"`
}

type ErrorHTTPResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// NewHTTPHandler creates the HTTP handler. With exposeErrors set, unexpected
// failures are reported to API clients with their raw error text.
func NewHTTPHandler(inventoryService *service.InventoryService, db Pinger, log zerolog.Logger, exposeErrors bool) *HTTPHandler {
	return &HTTPHandler{
		inventoryService: inventoryService,
		db:               db,
		log:              log,
		exposeErrors:     exposeErrors,
	}
}

func (h *HTTPHandler) ListInventoryAPI(c *gin.Context) {
	filter, err := filterFromQuery(c)
	if err != nil {
		h.writeAPIError(c, err)
		return
	}

	items, err := h.inventoryService.List(c.Request.Context(), filter)
	if err != nil {
		h.writeAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, InventoryListHTTPResponse{
		Status:  statusSuccess,
		Message: "retrived",
		Data:    NewInventoryResponses(items),
	})
}

func (h *HTTPHandler) writeAPIError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, ErrorHTTPResponse{
			Status:  statusFailed,
			Message: err.Error(),
		})
		return
	}

	h.log.Error().Err(err).Str("query", c.Request.URL.RawQuery).Msg("list inventory failed")
	c.JSON(http.StatusInternalServerError, ErrorHTTPResponse{
		Status:  statusFailed,
		Message: "server error",
		Error:   h.publicError(err),
	})
}

// publicError keeps unexpected error text away from clients unless the
// handler was configured to forward it.
func (h *HTTPHandler) publicError(err error) string {
	if h.exposeErrors || errors.Is(err, service.ErrInvalidFilter) {
		return err.Error()
	}
	return "internal error"
}

func filterFromQuery(c *gin.Context) (domain.InventoryFilter, error) {
	filter := domain.InventoryFilter{
		Name:         c.Query("name"),
		SupplierName: c.Query("supplier"),
	}

	if raw, ok := c.GetQuery("stock"); ok {
		stock, err := service.ParseStock(raw)
		if err != nil {
			return filter, err
		}
		filter.Stock = &stock
	}

	if raw, ok := c.GetQuery("availability"); ok {
		filter.Availability = &raw
	}

	return filter, nil
}

// InventoryListPage renders every item. Query parameters are not applied.
func (h *HTTPHandler) InventoryListPage(c *gin.Context) {
	items, err := h.inventoryService.List(c.Request.Context(), domain.InventoryFilter{})
	if err != nil && !errors.Is(err, service.ErrNotFound) {
		h.log.Error().Err(err).Msg("render inventory list failed")
		c.HTML(http.StatusInternalServerError, "500.html", nil)
		return
	}

	c.HTML(http.StatusOK, "inventory_list.html", gin.H{
		"inventories": items,
	})
}

func (h *HTTPHandler) InventoryDetailPage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil {
		h.notFoundPage(c)
		return
	}

	item, err := h.inventoryService.Get(c.Request.Context(), uint(id))
	if err != nil {
		if cause := errors.Unwrap(err); cause != nil {
			h.log.Warn().Err(cause).Uint64("id", id).Msg("inventory lookup failed")
		}
		h.notFoundPage(c)
		return
	}

	c.HTML(http.StatusOK, "inventory_detail.html", gin.H{
		"inventory": item,
	})
}

func (h *HTTPHandler) notFoundPage(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.html", gin.H{
		"message": "Inventory item not found",
	})
}

func (h *HTTPHandler) HealthCheck(c *gin.Context) {
	if err := h.db.Ping(c.Request.Context()); err != nil {
		h.log.Error().Err(err).Msg("health check failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
