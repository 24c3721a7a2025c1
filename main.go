package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"retail_sales_api/api"
	"retail_sales_api/internal/config"
	"retail_sales_api/internal/sales"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "salesapi",
		Short:         "Retail sales record API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newServeCommand())
	cmd.AddCommand(newSeedCommand())
	cmd.AddCommand(newImportCommand())

	return cmd
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			defer logger.Sync()

			storage, cleanup, err := openStorage(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer cleanup()

			salesService := sales.NewService(storage, logger)

			r := gin.Default()
			api.InitRoutes(r, salesService, logger)

			logger.Info("starting server", zap.String("addr", cfg.Addr))
			if err := r.Run(cfg.Addr); err != nil {
				return fmt.Errorf("server stopped: %w", err)
			}
			return nil
		},
	}
}

func newSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the bundled sample sale records",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			defer logger.Sync()

			storage, cleanup, err := openStorage(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer cleanup()

			salesService := sales.NewService(storage, logger)

			n, err := sales.Seed(cmd.Context(), salesService)
			if err != nil {
				return fmt.Errorf("seeding failed after %d records: %w", n, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Inserted %d sample sales records\n", n)
			return nil
		},
	}
}

func newImportCommand() *cobra.Command {
	var maxRecords int

	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import sale records from a CSV file",
		Long: `Import sale records from a CSV file. The header row may use the
exported spreadsheet column names ("Customer ID") or the API payload
keys ("customerId"). Rows failing validation are skipped and reported.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			defer logger.Sync()

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open %q: %w", args[0], err)
			}
			defer f.Close()

			payloads, err := sales.ReadCSV(f, maxRecords)
			if err != nil {
				return err
			}

			storage, cleanup, err := openStorage(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer cleanup()

			salesService := sales.NewService(storage, logger)

			imported, skipped := 0, 0
			for i, payload := range payloads {
				if _, err := salesService.CreateSale(cmd.Context(), payload); err != nil {
					skipped++
					fmt.Fprintf(cmd.ErrOrStderr(), "row %d skipped: %v\n", i+2, err)
					continue
				}
				imported++
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d records, skipped %d\n", imported, skipped)
			return nil
		},
	}

	cmd.Flags().IntVar(&maxRecords, "max", sales.DefaultImportLimit, "maximum number of rows to import")
	return cmd
}

func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}

	return cfg, logger, nil
}

// openStorage builds the configured storage backend. The returned
// cleanup is safe to call once, even for backends with nothing to
// release.
func openStorage(ctx context.Context, cfg *config.Config, logger *zap.Logger) (sales.Storage, func(), error) {
	switch cfg.StorageBackend {
	case config.BackendMongo:
		store, err := sales.NewMongoStorage(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() {
			if err := store.Close(context.Background()); err != nil {
				logger.Warn("failed to close mongo storage", zap.Error(err))
			}
		}
		return store, cleanup, nil
	default:
		logger.Info("using in-memory storage; records will not survive a restart")
		return sales.NewMemoryStorage(), func() {}, nil
	}
}
