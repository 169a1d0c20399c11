package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/paisabook/paisabook-backend/handlers"
	"github.com/paisabook/paisabook-backend/repository"
	"github.com/paisabook/paisabook-backend/routes"
	"github.com/paisabook/paisabook-backend/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	// Initialize New Relic
	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName("PaisaBook API"),
		newrelic.ConfigLicense(os.Getenv("NEW_RELIC_LICENSE_KEY")),
		newrelic.ConfigDistributedTracerEnabled(true),
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize New Relic: %v", err)
	}

	// Initialize database
	if err := repository.InitDB(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer repository.CloseDB()

	if err := repository.EnsureSchema(); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	db := repository.GetDB()

	// Repositories
	groupRepo := repository.NewGroupRepository(db)
	groupExpenseRepo := repository.NewGroupExpenseRepository(db)
	settlementRepo := repository.NewSettlementRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	walletRepo := repository.NewWalletRepository(db)
	budgetRepo := repository.NewBudgetRepository(db)
	presetRepo := repository.NewPresetRepository(db)

	// Services
	groupService := services.NewGroupService(groupRepo, groupExpenseRepo)
	settlementService := services.NewSettlementService(groupExpenseRepo, settlementRepo, nil)
	transactionService := services.NewTransactionService(transactionRepo, walletRepo)
	walletService := services.NewWalletService(walletRepo)
	budgetService := services.NewBudgetService(budgetRepo, transactionRepo)
	presetService := services.NewPresetService(presetRepo, transactionService)
	excelService := services.NewExcelService(groupRepo, groupExpenseRepo, settlementRepo)

	// Set up Gin router
	router := gin.Default()

	// Add New Relic middleware
	if app != nil {
		router.Use(nrgin.Middleware(app))
	}

	// Configure CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Change to your frontend URL in production
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Set up routes
	routes.SetupRoutes(router, routes.Handlers{
		Groups:       handlers.NewGroupHandler(groupService),
		Settlements:  handlers.NewSettlementHandler(settlementService),
		Transactions: handlers.NewTransactionHandler(transactionService),
		Wallets:      handlers.NewWalletHandler(walletService),
		Budgets:      handlers.NewBudgetHandler(budgetService),
		Presets:      handlers.NewPresetHandler(presetService),
		Excel:        handlers.NewExcelHandler(excelService),
	})

	// Get port from environment or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Start server
	log.Printf("Server starting on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
