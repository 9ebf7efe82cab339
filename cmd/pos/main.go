package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/fekuna/omnipos-terminal/config"
	agentRepoPkg "github.com/fekuna/omnipos-terminal/internal/agent/repository"
	agentUCPkg "github.com/fekuna/omnipos-terminal/internal/agent/usecase"
	"github.com/fekuna/omnipos-terminal/internal/cart"
	"github.com/fekuna/omnipos-terminal/internal/pkg/counter"
	"github.com/fekuna/omnipos-terminal/internal/pkg/logger"
	prodRepoPkg "github.com/fekuna/omnipos-terminal/internal/product/repository"
	prodUCPkg "github.com/fekuna/omnipos-terminal/internal/product/usecase"
	ticketRepoPkg "github.com/fekuna/omnipos-terminal/internal/ticket/repository"
	ticketUCPkg "github.com/fekuna/omnipos-terminal/internal/ticket/usecase"
	"github.com/fekuna/omnipos-terminal/internal/tui"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()
	settings := config.LoadSettings(cfg.Data.SettingsFile)

	// 2. Initialize Logger
	appLogger, err := logger.NewZapLogger(&cfg.Logger)
	if err != nil {
		log.Fatalf("could not initialize logger: %v", err)
	}
	defer appLogger.Sync()

	// 3. Counters and file-backed stores
	productCounter := counter.New(cfg.Data.ProductCounter)
	ticketCounter := counter.New(cfg.Data.TicketCounter)

	prodRepo := prodRepoPkg.NewFileRepository(cfg.Data.ProductsFile)
	ticketRepo := ticketRepoPkg.NewLedgerRepository(cfg.Data.TransactionsFile)
	agentRepo := agentRepoPkg.NewFileRepository(cfg.Data.AgentsFile)

	// 4. Initialize UseCases
	catalogUC := prodUCPkg.NewCatalogUseCase(prodRepo, productCounter, cfg.Catalog.AllowNegativeStock, appLogger)
	ticketUC := ticketUCPkg.NewTicketUseCase(ticketRepo, ticketCounter, appLogger)
	agentUC := agentUCPkg.NewAgentUseCase(agentRepo, appLogger)

	// 5. Terminal screen
	screen, err := tui.NewTcellScreen()
	if err != nil {
		appLogger.Fatal("could not initialize terminal", zap.Error(err))
	}

	// 6. Run the main loop
	shoppingCart := cart.New(cfg.UI.CartCapacity)
	app := tui.New(screen, cfg, settings, catalogUC, ticketUC, agentUC, shoppingCart,
		ticketCounter.ReadLast(), appLogger)

	appLogger.Info("POS terminal starting",
		zap.String("data_dir", cfg.Data.Dir),
		zap.Int("poll_interval_ms", cfg.UI.PollIntervalMs))

	runErr := app.Run()
	screen.Fini()
	if runErr != nil {
		appLogger.Error("main loop failed", zap.Error(runErr))
		os.Exit(1)
	}
	os.Exit(0)
}
