// Package dependency provides dependency injection for the application.
package dependency

import (
	"github.com/finance-tracker/ledger/config"
	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/account"
	"github.com/finance-tracker/ledger/internal/application/usecase/analytics"
	"github.com/finance-tracker/ledger/internal/application/usecase/budget"
	"github.com/finance-tracker/ledger/internal/application/usecase/category"
	"github.com/finance-tracker/ledger/internal/application/usecase/transaction"
	"github.com/finance-tracker/ledger/internal/infra/server/router"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/ledger/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	Store  adapter.EntityStore
	Router *router.Router
}

// NewInjector wires use cases, controllers and the router on top of blobs.
// The returned store still has to be loaded before serving requests.
func NewInjector(cfg *config.Config, blobs adapter.BlobStore, clock adapter.Clock, ids adapter.IDGenerator) *Injector {
	store := persistence.NewEntityStore(blobs, cfg.Store.KeyPrefix)

	settings := transaction.Settings{
		AutoCreateBudget:     cfg.Ledger.AutoCreateBudget,
		AutoBudgetMultiplier: cfg.Ledger.AutoBudgetMultiplier,
		BreakdownTolerance:   cfg.Ledger.BreakdownTolerance,
	}

	// Create account use cases
	listAccountsUseCase := account.NewListAccountsUseCase(store)
	getAccountUseCase := account.NewGetAccountUseCase(store)
	createAccountUseCase := account.NewCreateAccountUseCase(store, clock, ids)
	updateAccountUseCase := account.NewUpdateAccountUseCase(store, clock)
	deleteAccountUseCase := account.NewDeleteAccountUseCase(store)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(store)
	createCategoryUseCase := category.NewCreateCategoryUseCase(store, clock, ids)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(store, clock)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(store)

	// Create budget use cases
	listBudgetsUseCase := budget.NewListBudgetsUseCase(store)
	budgetProgressUseCase := budget.NewGetBudgetProgressUseCase(store)
	findCandidatesUseCase := budget.NewFindCandidatesUseCase(store)
	createBudgetUseCase := budget.NewCreateBudgetUseCase(store, clock, ids)
	updateBudgetUseCase := budget.NewUpdateBudgetUseCase(store, clock)
	deleteBudgetsUseCase := budget.NewDeleteBudgetsUseCase(store, clock)
	deleteBudgetSeriesUseCase := budget.NewDeleteBudgetSeriesUseCase(store, clock)
	recomputeBudgetUseCase := budget.NewRecomputeBudgetUseCase(store, clock)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(store)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(store, clock, ids, settings)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(store, clock, ids, settings)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(store, clock)
	bulkDeleteTransactionsUseCase := transaction.NewBulkDeleteTransactionsUseCase(store, clock)
	bulkCategorizeTransactionsUseCase := transaction.NewBulkCategorizeTransactionsUseCase(store, clock)

	// Create analytics use cases
	trendsUseCase := analytics.NewGetTrendsUseCase(store)
	breakdownUseCase := analytics.NewGetCategoryBreakdownUseCase(store)
	insightsUseCase := analytics.NewGetSpendingInsightsUseCase(store, clock)
	dataRangeUseCase := analytics.NewGetDataRangeUseCase(store)

	// Create controllers
	healthController := controller.NewHealthController(cfg.Store.Backend, blobs.Ping)

	accountController := controller.NewAccountController(
		listAccountsUseCase,
		getAccountUseCase,
		createAccountUseCase,
		updateAccountUseCase,
		deleteAccountUseCase,
	)

	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)

	budgetController := controller.NewBudgetController(
		listBudgetsUseCase,
		budgetProgressUseCase,
		findCandidatesUseCase,
		createBudgetUseCase,
		updateBudgetUseCase,
		deleteBudgetsUseCase,
		deleteBudgetSeriesUseCase,
		recomputeBudgetUseCase,
	)

	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
		bulkDeleteTransactionsUseCase,
		bulkCategorizeTransactionsUseCase,
	)

	analyticsController := controller.NewAnalyticsController(
		trendsUseCase,
		breakdownUseCase,
		insightsUseCase,
		dataRangeUseCase,
	)

	// Create router
	r := router.NewRouter(
		healthController,
		accountController,
		categoryController,
		budgetController,
		transactionController,
		analyticsController,
	)

	return &Injector{
		Config: cfg,
		Store:  store,
		Router: r,
	}
}
