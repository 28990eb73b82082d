// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/ledger/internal/application/usecase/transaction"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	listUseCase           *transaction.ListTransactionsUseCase
	createUseCase         *transaction.CreateTransactionUseCase
	updateUseCase         *transaction.UpdateTransactionUseCase
	deleteUseCase         *transaction.DeleteTransactionUseCase
	bulkDeleteUseCase     *transaction.BulkDeleteTransactionsUseCase
	bulkCategorizeUseCase *transaction.BulkCategorizeTransactionsUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	listUseCase *transaction.ListTransactionsUseCase,
	createUseCase *transaction.CreateTransactionUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
	bulkDeleteUseCase *transaction.BulkDeleteTransactionsUseCase,
	bulkCategorizeUseCase *transaction.BulkCategorizeTransactionsUseCase,
) *TransactionController {
	return &TransactionController{
		listUseCase:           listUseCase,
		createUseCase:         createUseCase,
		updateUseCase:         updateUseCase,
		deleteUseCase:         deleteUseCase,
		bulkDeleteUseCase:     bulkDeleteUseCase,
		bulkCategorizeUseCase: bulkCategorizeUseCase,
	}
}

// List handles GET /transactions requests.
func (c *TransactionController) List(ctx *gin.Context) {
	input := transaction.ListTransactionsInput{
		Search: ctx.Query("search"),
	}

	if page, err := strconv.Atoi(ctx.Query("page")); err == nil {
		input.Page = page
	}
	if limit, err := strconv.Atoi(ctx.Query("limit")); err == nil {
		input.Limit = limit
	}

	if v := ctx.Query("account_id"); v != "" {
		input.Filter.AccountID = &v
	}
	if v := ctx.Query("category_id"); v != "" {
		input.Filter.CategoryID = &v
	}
	if v := ctx.Query("budget_id"); v != "" {
		input.Filter.BudgetID = &v
	}
	if v := ctx.Query("type"); v != "" {
		t := entity.TransactionType(v)
		input.Filter.Type = &t
	}
	if v := ctx.Query("start_date"); v != "" {
		d, err := dto.ParseDate(v)
		if err != nil {
			badRequest(ctx, "Invalid start_date")
			return
		}
		input.Filter.StartDate = &d
	}
	if v := ctx.Query("end_date"); v != "" {
		d, err := dto.ParseDate(v)
		if err != nil {
			badRequest(ctx, "Invalid end_date")
			return
		}
		input.Filter.EndDate = &d
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output))
}

// Create handles POST /transactions requests. A recurring payload returns every occurrence.
func (c *TransactionController) Create(ctx *gin.Context) {
	payload, ok := bindPayload(ctx)
	if !ok {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), transaction.CreateTransactionInput{TransactionPayload: payload})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.TransactionMutationResponse{
		Transactions: dto.ToTransactionResponses(output.Transactions),
		Effects:      dto.ToEffectsResponse(output.Effects),
	})
}

// Update handles PUT /transactions/:id requests.
func (c *TransactionController) Update(ctx *gin.Context) {
	payload, ok := bindPayload(ctx)
	if !ok {
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), transaction.UpdateTransactionInput{
		ID:                 ctx.Param("id"),
		TransactionPayload: payload,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.TransactionMutationResponse{
		Transactions: []dto.TransactionResponse{dto.ToTransactionResponse(output.Transaction)},
		Effects:      dto.ToEffectsResponse(output.Effects),
	})
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), transaction.DeleteTransactionInput{TransactionID: ctx.Param("id")})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.TransactionMutationResponse{
		Transactions: []dto.TransactionResponse{dto.ToTransactionResponse(output.Transaction)},
		Effects:      dto.ToEffectsResponse(output.Effects),
	})
}

// BulkDelete handles POST /transactions/bulk-delete requests.
func (c *TransactionController) BulkDelete(ctx *gin.Context) {
	var req dto.IDsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body")
		return
	}

	output, err := c.bulkDeleteUseCase.Execute(ctx.Request.Context(), transaction.BulkDeleteTransactionsInput{TransactionIDs: req.IDs})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.BulkDeleteTransactionsResponse{
		DeletedCount: output.DeletedCount,
		Effects:      dto.ToEffectsResponse(output.Effects),
	})
}

// BulkCategorize handles POST /transactions/bulk-categorize requests.
func (c *TransactionController) BulkCategorize(ctx *gin.Context) {
	var req dto.BulkCategorizeTransactionsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body")
		return
	}

	output, err := c.bulkCategorizeUseCase.Execute(ctx.Request.Context(), transaction.BulkCategorizeTransactionsInput{
		TransactionIDs: req.IDs,
		CategoryID:     req.CategoryID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.BulkCategorizeTransactionsResponse{
		UpdatedCount:  output.UpdatedCount,
		DetachedCount: output.DetachedCount,
		Effects:       dto.ToEffectsResponse(output.Effects),
	})
}

func bindPayload(ctx *gin.Context) (transaction.TransactionPayload, bool) {
	var req dto.TransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body")
		return transaction.TransactionPayload{}, false
	}
	payload, err := req.ToPayload()
	if err != nil {
		badRequest(ctx, "Invalid date format, expected YYYY-MM-DD")
		return transaction.TransactionPayload{}, false
	}
	return payload, true
}
