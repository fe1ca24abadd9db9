// Package http exposes the operator command surface over HTTP.
// It coordinates between echo handlers and application use cases.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"grouporders/internal/adapters/in/csvintake"
	"grouporders/internal/core/application/usecases/commands"
	"grouporders/internal/core/application/usecases/queries"
	"grouporders/internal/core/domain/model/kernel"
	"grouporders/internal/core/domain/model/order"
	"grouporders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the HTTP surface for operating the group ordering system.
type Server struct {
	// Command side
	loader        *csvintake.Loader
	groupHandler  commands.GroupPendingOrdersCommandHandler
	statusHandler commands.ChangeGroupOrderStatusCommandHandler

	// Query side
	recentGroupOrdersHandler queries.GetRecentGroupOrdersQueryHandler
	ungroupedOrdersHandler   queries.GetUngroupedOrdersQueryHandler
}

// NewServer creates an HTTP server with the required handlers.
func NewServer(
	loader *csvintake.Loader,
	groupHandler commands.GroupPendingOrdersCommandHandler,
	statusHandler commands.ChangeGroupOrderStatusCommandHandler,
	recentGroupOrdersHandler queries.GetRecentGroupOrdersQueryHandler,
	ungroupedOrdersHandler queries.GetUngroupedOrdersQueryHandler,
) *Server {
	return &Server{
		loader:                   loader,
		groupHandler:             groupHandler,
		statusHandler:            statusHandler,
		recentGroupOrdersHandler: recentGroupOrdersHandler,
		ungroupedOrdersHandler:   ungroupedOrdersHandler,
	}
}

// RegisterRoutes attaches all operator routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/v1/orders/import", s.ImportOrders)
	e.GET("/api/v1/orders/ungrouped", s.GetUngroupedOrders)
	e.POST("/api/v1/group-orders/batch", s.BatchGroupOrders)
	e.PUT("/api/v1/group-orders/:id/status", s.UpdateGroupOrderStatus)
	e.GET("/api/v1/group-orders/recent", s.GetRecentGroupOrders)
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type importRequest struct {
	Path string `json:"path"`
}

type importResponse struct {
	Submitted int `json:"submitted"`
	Skipped   int `json:"skipped"`
	Malformed int `json:"malformed"`
}

// ImportOrders handles POST /api/v1/orders/import - loads an order file.
func (s *Server) ImportOrders(ctx echo.Context) error {
	var req importRequest
	if err := ctx.Bind(&req); err != nil || req.Path == "" {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body, expected a file path",
		})
	}

	summary, err := s.loader.LoadFile(ctx.Request().Context(), req.Path)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, errorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Import failed: " + err.Error(),
		})
	}

	return ctx.JSON(http.StatusOK, importResponse{
		Submitted: summary.Submitted,
		Skipped:   summary.Skipped,
		Malformed: summary.Malformed,
	})
}

// BatchGroupOrders handles POST /api/v1/group-orders/batch - runs one grouping run.
func (s *Server) BatchGroupOrders(ctx echo.Context) error {
	cmd := commands.NewGroupPendingOrdersCommand()

	if err := s.groupHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return ctx.JSON(http.StatusInternalServerError, errorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to group pending orders",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateGroupOrderStatus handles PUT /api/v1/group-orders/:id/status - retags
// a group order and propagates the status to its members.
func (s *Server) UpdateGroupOrderStatus(ctx echo.Context) error {
	rawID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid group order id",
		})
	}

	groupOrderID, err := kernel.NewID(rawID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid group order id",
		})
	}

	var req updateStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewChangeGroupOrderStatusCommand(groupOrderID, order.Status(req.Status))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid status data: " + err.Error(),
		})
	}

	if handleErr := s.statusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, errorResponse{
				Code:    http.StatusNotFound,
				Message: "Group order not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, errorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to update group order status",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

type groupOrderResponse struct {
	ID             int64   `json:"id"`
	RestaurantName string  `json:"restaurant_name"`
	OrderDate      string  `json:"order_date"`
	Status         string  `json:"status"`
	TotalPrice     float64 `json:"total_price"`
	ItemCount      int     `json:"item_count"`
}

// GetRecentGroupOrders handles GET /api/v1/group-orders/recent - the recent
// group orders report.
func (s *Server) GetRecentGroupOrders(ctx echo.Context) error {
	query := queries.NewGetRecentGroupOrdersQuery()

	groups, err := s.recentGroupOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, errorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve recent group orders",
		})
	}

	response := make([]groupOrderResponse, len(groups))
	for i, g := range groups {
		response[i] = groupOrderResponse{
			ID:             g.ID.Value(),
			RestaurantName: g.RestaurantName,
			OrderDate:      g.OrderDate.Format("2006-01-02"),
			Status:         g.Status.String(),
			TotalPrice:     g.TotalPrice.Amount(),
			ItemCount:      g.ItemCount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

type ungroupedOrderResponse struct {
	ID                  int64   `json:"id"`
	UserName            string  `json:"user_name"`
	PreferredRestaurant string  `json:"preferred_restaurant"`
	AlternateRestaurant string  `json:"alternate_restaurant"`
	MenuItem            string  `json:"menu_item"`
	Price               float64 `json:"price"`
}

// GetUngroupedOrders handles GET /api/v1/orders/ungrouped - the ungrouped
// orders report.
func (s *Server) GetUngroupedOrders(ctx echo.Context) error {
	query := queries.NewGetUngroupedOrdersQuery()

	orders, err := s.ungroupedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, errorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve ungrouped orders",
		})
	}

	response := make([]ungroupedOrderResponse, len(orders))
	for i, o := range orders {
		response[i] = ungroupedOrderResponse{
			ID:                  o.ID.Value(),
			UserName:            o.UserName,
			PreferredRestaurant: o.PreferredRestaurantName,
			AlternateRestaurant: o.AlternateRestaurantName,
			MenuItem:            o.MenuItemName,
			Price:               o.Price.Amount(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
