// Package cli implements shopctl, a terminal front end over the local store.
package cli

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/MikeMC777/foodcart/internal/config"
	"github.com/MikeMC777/foodcart/internal/kv"
	"github.com/MikeMC777/foodcart/internal/shop"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose  bool
	Database string // sqlite path or postgres DSN; empty uses the environment
	Driver   string // memory | sqlite | postgres; empty uses the environment
}

// ValidDrivers defines the accepted --driver values.
var ValidDrivers = []string{kv.DriverMemory, kv.DriverSQLite, kv.DriverPostgres}

// NewRootCommand creates the root command for shopctl.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "shopctl",
		Short:         "shopctl - food cart from the terminal",
		Long:          "Register, browse the catalog, fill the cart and place orders against the on-device store.",
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.Driver != "" && !isValidDriver(opts.Driver) {
				return NewExitError(ExitCommandError, "invalid driver "+opts.Driver)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Database, "db", "", "sqlite path or postgres DSN (default from SQLITE_PATH/POSTGRES_DSN)")
	cmd.PersistentFlags().StringVar(&opts.Driver, "driver", "", "store driver (memory|sqlite|postgres)")

	cmd.AddCommand(NewRegisterCommand(opts))
	cmd.AddCommand(NewLoginCommand(opts))
	cmd.AddCommand(NewShipCommand(opts))
	cmd.AddCommand(NewLogoutCommand(opts))
	cmd.AddCommand(NewCatalogCommand(opts))
	cmd.AddCommand(NewCartCommand(opts))
	cmd.AddCommand(NewCheckoutCommand(opts))
	cmd.AddCommand(NewOrdersCommand(opts))

	return cmd
}

func isValidDriver(driver string) bool {
	for _, d := range ValidDrivers {
		if d == driver {
			return true
		}
	}
	return false
}

// config resolves the store settings, flags taking precedence over the
// environment.
func (o *RootOptions) config() config.Config {
	cfg := config.Load()
	if o.Driver != "" {
		cfg.StoreDriver = o.Driver
	}
	if o.Database != "" {
		if cfg.StoreDriver == kv.DriverPostgres {
			cfg.PostgresDSN = o.Database
		} else {
			cfg.SQLitePath = o.Database
		}
	}
	return cfg
}

// withShop opens the shop for one command and closes it afterwards.
func withShop(cmd *cobra.Command, opts *RootOptions, fn func(ctx context.Context, s *shop.Shop) error) error {
	level := slog.LevelWarn
	if opts.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	s, err := shop.Open(ctx, opts.config(), logger)
	if err != nil {
		return WrapExitError(ExitCommandError, "open store", err)
	}
	defer s.Close()
	return fn(ctx, s)
}
