package http

import (
	"errors"
	"log/slog"
	"net/http"

	"coffee/internal/core/application/usecases/commands"
	"coffee/internal/core/application/usecases/queries"
	"coffee/internal/core/domain/model/order"
	"coffee/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Server handles HTTP requests by delegating to the application use cases.
// It keeps no state between requests.
type Server struct {
	// Command handlers
	quoteOrderHandler commands.QuoteOrderCommandHandler

	// Query handlers
	getMenuHandler queries.GetMenuQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	quoteOrderHandler commands.QuoteOrderCommandHandler,
	getMenuHandler queries.GetMenuQueryHandler,
) *Server {
	return &Server{
		quoteOrderHandler: quoteOrderHandler,
		getMenuHandler:    getMenuHandler,
	}
}

// NewEcho builds the echo instance serving s with panic recovery and
// request logging through logger.
func NewEcho(s *Server, logger *slog.Logger) *echo.Echo {
	logger = logger.With("component", "http")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.InfoContext(c.Request().Context(), "Request handled",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			)
			return nil
		},
	}))

	RegisterHandlers(e, s)
	return e
}

// RegisterHandlers mounts the routes of s on e.
func RegisterHandlers(e *echo.Echo, s *Server) {
	e.GET("/health", s.Health)
	e.GET("/api/v1/menu", s.GetMenu)
	e.POST("/api/v1/orders/quote", s.QuoteOrder)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// GetMenu handles GET /api/v1/menu - lists bases, sizes, milks and surcharges.
func (s *Server) GetMenu(ctx echo.Context) error {
	menu, err := s.getMenuHandler.Handle(ctx.Request().Context(), queries.NewGetMenuQuery())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve menu",
		})
	}

	response := Menu{
		Bases:      pricedItems(menu.Bases),
		Sizes:      make([]MenuItem, len(menu.Sizes)),
		Milks:      pricedItems(menu.Milks),
		SyrupPrice: menu.SyrupPrice,
		IcedPrice:  menu.IcedPrice,
		MaxSugar:   menu.MaxSugar,
		MaxSyrups:  menu.MaxSyrups,
	}
	for i, size := range menu.Sizes {
		response.Sizes[i] = MenuItem{Name: size.Name, Multiplier: &size.Multiplier}
	}

	return ctx.JSON(http.StatusOK, response)
}

// QuoteOrder handles POST /api/v1/orders/quote - prices and describes one drink.
// Nothing is stored.
func (s *Server) QuoteOrder(ctx echo.Context) error {
	var req QuoteRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: errs.NewValueIsInvalidErrorWithCause("request body", err).Error(),
		})
	}

	cmd := commands.NewQuoteOrderCommand(req.Base, req.Size, req.Milk, req.Syrups, req.Sugar, req.Iced)

	o, err := s.quoteOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return quoteError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Order{
		ID:          o.ID().String(),
		Base:        o.Base(),
		Size:        o.Size(),
		Milk:        o.Milk(),
		Syrups:      o.Syrups(),
		Sugar:       o.Sugar(),
		Iced:        o.Iced(),
		Price:       o.Price(),
		Description: o.Description(),
		Display:     o.String(),
	})
}

func quoteError(ctx echo.Context, err error) error {
	var (
		required   *errs.ValueIsRequiredError
		outOfRange *errs.ValueIsOutOfRangeError
	)

	switch {
	case errors.Is(err, order.ErrMissingField) && errors.As(err, &required):
		return ctx.JSON(http.StatusUnprocessableEntity, Error{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
			Field:   required.ParamName,
		})
	case errors.Is(err, order.ErrInvalidArgument) && errors.As(err, &outOfRange):
		return ctx.JSON(http.StatusUnprocessableEntity, Error{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
			Field:   outOfRange.ParamName,
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to quote order",
		})
	}
}

func pricedItems(items []queries.PricedItem) []MenuItem {
	out := make([]MenuItem, len(items))
	for i, item := range items {
		out[i] = MenuItem{Name: item.Name, Price: &item.Price}
	}
	return out
}
