package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/kbecker21/tt-csv-matcher/core/config"
	"github.com/kbecker21/tt-csv-matcher/core/loader"
	"github.com/kbecker21/tt-csv-matcher/core/logger"
	"github.com/kbecker21/tt-csv-matcher/core/middleware/auth"
	"github.com/kbecker21/tt-csv-matcher/core/middleware/rayid"
	"github.com/kbecker21/tt-csv-matcher/feature/matching"
	"github.com/kbecker21/tt-csv-matcher/feature/roster"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the matcher as an HTTP service",
	Long: `Starts an HTTP server that keeps the reference roster in memory and
matches uploaded event rosters on demand via POST /match.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Load the reference roster once; it is read-only for the
		// lifetime of the server and shared across requests.
		refs, err := roster.ReadPlayers(cfg.Server.RefPath, logg)
		if err != nil {
			logg.Fatal("Failed to load reference roster", zap.Error(err))
		}

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 5. Initialize Feature Loader
		mgr := loader.NewManager(logg)

		matchFeature, err := matching.NewFeature(refs, cfg.Matching, logg)
		if err != nil {
			logg.Fatal("Failed to build matching feature", zap.Error(err))
		}
		mgr.Register(matchFeature)

		// Middleware Registration
		// RayID must come first so everything downstream can be traced.
		app.Use(rayid.New())

		// Request logging with Zap + RayID
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// API key protection (disabled when no key is configured)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 6. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 7. Start Server
		go func() {
			logg.Info("Starting server",
				zap.String("port", cfg.Server.Port),
				zap.Int("reference_size", len(refs)),
			)
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 8. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
