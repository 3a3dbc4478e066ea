package router

import (
	"github.com/bkromhout/balances/internal/config"
	"github.com/bkromhout/balances/internal/currency"
	"github.com/bkromhout/balances/internal/data"
	"github.com/bkromhout/balances/internal/handler"
	"github.com/bkromhout/balances/internal/idgen"
	"github.com/bkromhout/balances/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin engine and wires all API routes.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	store := data.NewStore(db, idgen.NewFactory(idgen.NewGormStore(db)))
	codec := currency.New(currency.LocaleForName(cfg.App.Locale))

	balanceHandler := handler.NewBalanceHandler(store, codec, cfg.App)
	transactionHandler := handler.NewTransactionHandler(store, codec)
	categoryHandler := handler.NewCategoryHandler(store)
	exportHandler := handler.NewExportHandler(store, codec)
	amountHandler := handler.NewAmountHandler(codec)

	api := r.Group("/api")
	api.Use(middleware.AuditMiddleware(db))

	api.GET("/normalize", amountHandler.NormalizeAmount)

	api.POST("/balances", balanceHandler.CreateBalance)
	api.GET("/balances", balanceHandler.ListBalances)
	api.GET("/balances/:id", balanceHandler.GetBalance)
	api.PUT("/balances/:id", balanceHandler.UpdateBalance)
	api.DELETE("/balances/:id", balanceHandler.DeleteBalance)

	api.POST("/balances/:id/transactions", transactionHandler.CreateTransaction)
	api.GET("/balances/:id/transactions", transactionHandler.ListTransactions)
	api.PUT("/transactions/:id", transactionHandler.UpdateTransaction)
	api.DELETE("/transactions/:id", transactionHandler.DeleteTransaction)

	api.POST("/categories", categoryHandler.CreateCategory)
	api.GET("/categories", categoryHandler.ListCategories)
	api.PUT("/categories/:id", categoryHandler.UpdateCategory)
	api.DELETE("/categories/:id", categoryHandler.DeleteCategory)

	api.GET("/balances/:id/export/csv", exportHandler.ExportCSV)
	api.GET("/balances/:id/export/xlsx", exportHandler.ExportXLSX)

	return r
}
