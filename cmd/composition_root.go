package cmd

import (
	"io"
	"log/slog"

	httpadapter "coffee/internal/adapters/in/http"
	"coffee/internal/core/application/usecases/commands"
	"coffee/internal/core/application/usecases/queries"
	"coffee/internal/core/domain/services"
	"coffee/internal/scenarios"

	"github.com/labstack/echo/v4"
)

type CompositionRoot struct {
	config Config
	logger *slog.Logger
	quoter services.OrderQuoter
}

func NewCompositionRoot(config Config, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config: config,
		logger: logger,
		quoter: services.NewOrderQuoter(),
	}
}

func (c *CompositionRoot) Config() Config {
	return c.config
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) CreateQuoteOrderCommandHandler() commands.QuoteOrderCommandHandler {
	return commands.NewQuoteOrderCommandHandler(c.quoter, c.logger)
}

func (c *CompositionRoot) CreateGetMenuQueryHandler() queries.GetMenuQueryHandler {
	return queries.NewGetMenuQueryHandler()
}

func (c *CompositionRoot) CreateHTTPServer() *echo.Echo {
	server := httpadapter.NewServer(
		c.CreateQuoteOrderCommandHandler(),
		c.CreateGetMenuQueryHandler(),
	)
	return httpadapter.NewEcho(server, c.logger)
}

func (c *CompositionRoot) CreateScenarioRunner(out io.Writer) *scenarios.Runner {
	return scenarios.NewRunner(scenarios.Suite(), out, c.logger)
}
