package routes

import (
	"github.com/paisabook/paisabook-backend/handlers"

	"github.com/gin-gonic/gin"
)

// Handlers bundles all HTTP handlers used by the router
type Handlers struct {
	Groups       *handlers.GroupHandler
	Settlements  *handlers.SettlementHandler
	Transactions *handlers.TransactionHandler
	Wallets      *handlers.WalletHandler
	Budgets      *handlers.BudgetHandler
	Presets      *handlers.PresetHandler
	Excel        *handlers.ExcelHandler
}

// SetupRoutes configures all API routes for the application
func SetupRoutes(router *gin.Engine, h Handlers) {
	v1 := router.Group("/api/v1")
	{
		// Group endpoints
		v1.POST("/groups/create", h.Groups.CreateGroup)
		v1.POST("/groups/join", h.Groups.JoinGroup)
		v1.POST("/groups/get", h.Groups.GetGroup)
		v1.POST("/groups/list", h.Groups.ListGroups)
		v1.POST("/groups/export", h.Excel.ExportGroup)

		// Group expense endpoints
		v1.POST("/groups/expenses/add", h.Groups.AddExpense)
		v1.POST("/groups/expenses/list", h.Groups.ListExpenses)
		v1.POST("/groups/expenses/markSplitSettled", h.Groups.MarkSplitSettled)

		// Settlement endpoints
		v1.POST("/groups/settlements/calculate", h.Settlements.CalculateSettlements)
		v1.POST("/groups/settlements/list", h.Settlements.ListSettlements)
		v1.POST("/groups/settlements/complete", h.Settlements.CompleteSettlement)

		// Personal ledger endpoints
		v1.POST("/transactions/create", h.Transactions.CreateTransaction)
		v1.POST("/transactions/list", h.Transactions.ListTransactions)
		v1.POST("/transactions/update", h.Transactions.UpdateTransaction)
		v1.POST("/transactions/delete", h.Transactions.DeleteTransaction)
		v1.POST("/transactions/markSettled", h.Transactions.MarkSettled)
		v1.POST("/transactions/transfer", h.Transactions.Transfer)

		// Wallet endpoints
		v1.POST("/wallets/get", h.Wallets.GetWallets)
		v1.POST("/wallets/addFunds", h.Wallets.AddFunds)
		v1.POST("/wallets/history", h.Wallets.GetHistory)

		// Budget endpoints
		v1.POST("/budgets/upsert", h.Budgets.UpsertBudget)
		v1.POST("/budgets/list", h.Budgets.ListBudgets)
		v1.POST("/budgets/delete", h.Budgets.DeleteBudget)

		// Preset endpoints
		v1.POST("/presets/create", h.Presets.CreatePreset)
		v1.POST("/presets/list", h.Presets.ListPresets)
		v1.POST("/presets/update", h.Presets.UpdatePreset)
		v1.POST("/presets/delete", h.Presets.DeletePreset)
		v1.POST("/presets/apply", h.Presets.ApplyPreset)
	}
}
