package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"coffee/cmd"
	"coffee/internal/core/application/usecases/commands"
	"coffee/internal/core/application/usecases/queries"
	"coffee/internal/pkg/errs"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const shutdownTimeout = 5 * time.Second

func newRootCommand(app *cmd.CompositionRoot, out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:          "coffee",
		Short:        "Build and price coffee orders",
		Long:         "Runs the coffee order scenarios by default. Use the subcommands to quote a single order, print the menu or serve the HTTP API.",
		SilenceUsage: true,
		RunE: func(c *cobra.Command, _ []string) error {
			return runScenarios(c.Context(), app, out)
		},
	}
	root.SetOut(out)

	root.AddCommand(
		newScenariosCommand(app, out),
		newQuoteCommand(app, out),
		newMenuCommand(app, out),
		newServeCommand(app),
	)
	return root
}

func newScenariosCommand(app *cmd.CompositionRoot, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "scenarios",
		Short: "Run the order scenarios and report each result",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runScenarios(c.Context(), app, out)
		},
	}
}

func runScenarios(ctx context.Context, app *cmd.CompositionRoot, out io.Writer) error {
	return app.CreateScenarioRunner(out).RunAll(ctx)
}

type quoteFlags struct {
	base   string
	size   string
	milk   string
	syrups []string
	sugar  int
	iced   bool
	output string
}

// quoteOutput is the YAML rendering of a quoted order.
type quoteOutput struct {
	ID          string   `yaml:"id"`
	Base        string   `yaml:"base"`
	Size        string   `yaml:"size"`
	Milk        string   `yaml:"milk"`
	Syrups      []string `yaml:"syrups"`
	Sugar       int      `yaml:"sugar"`
	Iced        bool     `yaml:"iced"`
	Price       float64  `yaml:"price"`
	Description string   `yaml:"description"`
}

func newQuoteCommand(app *cmd.CompositionRoot, out io.Writer) *cobra.Command {
	var f quoteFlags

	c := &cobra.Command{
		Use:     "quote",
		Short:   "Price and describe one order",
		Example: "  coffee quote --base latte --size medium --milk oat --syrup vanilla --sugar 2",
		Args:    cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			if f.output != "text" && f.output != "yaml" {
				return errs.NewValueIsInvalidErrorWithCause("output", fmt.Errorf("%q is not text or yaml", f.output))
			}

			handler := app.CreateQuoteOrderCommandHandler()
			o, err := handler.Handle(c.Context(),
				commands.NewQuoteOrderCommand(f.base, f.size, f.milk, f.syrups, f.sugar, f.iced))
			if err != nil {
				return err
			}

			if f.output == "text" {
				_, err = fmt.Fprintf(out, "%s\nprice: %.2f\n", o, o.Price())
				return err
			}

			return writeYAML(out, quoteOutput{
				ID:          o.ID().String(),
				Base:        o.Base(),
				Size:        o.Size(),
				Milk:        o.Milk(),
				Syrups:      o.Syrups(),
				Sugar:       o.Sugar(),
				Iced:        o.Iced(),
				Price:       o.Price(),
				Description: o.Description(),
			})
		},
	}

	c.Flags().StringVar(&f.base, "base", "", "drink base (espresso, americano, latte, cappuccino)")
	c.Flags().StringVar(&f.size, "size", "", "serving size (small, medium, large)")
	c.Flags().StringVar(&f.milk, "milk", "", "milk type (none, whole, skim, oat, soy)")
	c.Flags().StringArrayVar(&f.syrups, "syrup", nil, "syrup to add; repeat for more")
	c.Flags().IntVar(&f.sugar, "sugar", 0, "sugar teaspoons (0-5)")
	c.Flags().BoolVar(&f.iced, "iced", false, "serve over ice")
	c.Flags().StringVarP(&f.output, "output", "o", "text", "output format: text or yaml")
	return c
}

// menuOutput is the YAML rendering of the menu.
type menuOutput struct {
	Bases      map[string]float64 `yaml:"bases"`
	Sizes      map[string]float64 `yaml:"sizes"`
	Milks      map[string]float64 `yaml:"milks"`
	SyrupPrice float64            `yaml:"syrup_price"`
	IcedPrice  float64            `yaml:"iced_price"`
	MaxSugar   int                `yaml:"max_sugar"`
	MaxSyrups  int                `yaml:"max_syrups"`
}

func newMenuCommand(app *cmd.CompositionRoot, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Print the menu as YAML",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			handler := app.CreateGetMenuQueryHandler()
			menu, err := handler.Handle(c.Context(), queries.NewGetMenuQuery())
			if err != nil {
				return err
			}

			rendered := menuOutput{
				Bases:      make(map[string]float64, len(menu.Bases)),
				Sizes:      make(map[string]float64, len(menu.Sizes)),
				Milks:      make(map[string]float64, len(menu.Milks)),
				SyrupPrice: menu.SyrupPrice,
				IcedPrice:  menu.IcedPrice,
				MaxSugar:   menu.MaxSugar,
				MaxSyrups:  menu.MaxSyrups,
			}
			for _, item := range menu.Bases {
				rendered.Bases[item.Name] = item.Price
			}
			for _, item := range menu.Sizes {
				rendered.Sizes[item.Name] = item.Multiplier
			}
			for _, item := range menu.Milks {
				rendered.Milks[item.Name] = item.Price
			}

			return writeYAML(out, rendered)
		},
	}
}

func newServeCommand(app *cmd.CompositionRoot) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the quote and menu HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			ctx := c.Context()
			e := app.CreateHTTPServer()
			addr := fmt.Sprintf("0.0.0.0:%s", app.Config().HTTPPort)

			errCh := make(chan error, 1)
			go func() {
				errCh <- e.Start(addr)
			}()
			app.Logger().InfoContext(ctx, "HTTP server started", "addr", addr)

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
			defer cancel()
			if err := e.Shutdown(shutdownCtx); err != nil {
				return err
			}
			if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			app.Logger().InfoContext(ctx, "HTTP server stopped")
			return nil
		},
	}
}

func writeYAML(out io.Writer, v any) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
