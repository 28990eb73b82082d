// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/ledger/internal/application/usecase/budget"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
)

// BudgetController handles budget endpoints.
type BudgetController struct {
	listUseCase         *budget.ListBudgetsUseCase
	progressUseCase     *budget.GetBudgetProgressUseCase
	candidatesUseCase   *budget.FindCandidatesUseCase
	createUseCase       *budget.CreateBudgetUseCase
	updateUseCase       *budget.UpdateBudgetUseCase
	deleteUseCase       *budget.DeleteBudgetsUseCase
	deleteSeriesUseCase *budget.DeleteBudgetSeriesUseCase
	recomputeUseCase    *budget.RecomputeBudgetUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	listUseCase *budget.ListBudgetsUseCase,
	progressUseCase *budget.GetBudgetProgressUseCase,
	candidatesUseCase *budget.FindCandidatesUseCase,
	createUseCase *budget.CreateBudgetUseCase,
	updateUseCase *budget.UpdateBudgetUseCase,
	deleteUseCase *budget.DeleteBudgetsUseCase,
	deleteSeriesUseCase *budget.DeleteBudgetSeriesUseCase,
	recomputeUseCase *budget.RecomputeBudgetUseCase,
) *BudgetController {
	return &BudgetController{
		listUseCase:         listUseCase,
		progressUseCase:     progressUseCase,
		candidatesUseCase:   candidatesUseCase,
		createUseCase:       createUseCase,
		updateUseCase:       updateUseCase,
		deleteUseCase:       deleteUseCase,
		deleteSeriesUseCase: deleteSeriesUseCase,
		recomputeUseCase:    recomputeUseCase,
	}
}

// List handles GET /budgets requests.
func (c *BudgetController) List(ctx *gin.Context) {
	input := budget.ListBudgetsInput{
		CategoryID:     ctx.Query("category_id"),
		ParentBudgetID: ctx.Query("parent_budget_id"),
	}
	if activeOn := ctx.Query("active_on"); activeOn != "" {
		d, err := dto.ParseDate(activeOn)
		if err != nil {
			badRequest(ctx, "Invalid active_on date")
			return
		}
		input.ActiveOn = &d
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToBudgetOutputListResponse(output.Budgets))
}

// Progress handles GET /budgets/:id requests.
func (c *BudgetController) Progress(ctx *gin.Context) {
	output, err := c.progressUseCase.Execute(ctx.Request.Context(), budget.GetBudgetProgressInput{BudgetID: ctx.Param("id")})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToBudgetResponse(output.Budget))
}

// Candidates handles GET /budgets/candidates requests.
func (c *BudgetController) Candidates(ctx *gin.Context) {
	date, err := dto.ParseDate(ctx.Query("date"))
	if err != nil {
		badRequest(ctx, "Invalid or missing date")
		return
	}
	categoryID := ctx.Query("category_id")
	if categoryID == "" {
		badRequest(ctx, "category_id is required")
		return
	}

	output, err := c.candidatesUseCase.Execute(ctx.Request.Context(), budget.FindCandidatesInput{Date: date, CategoryID: categoryID})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToBudgetListResponse(output.Budgets))
}

// Create handles POST /budgets requests. A recurring budget returns every sibling.
func (c *BudgetController) Create(ctx *gin.Context) {
	var req dto.CreateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body")
		return
	}
	start, err := dto.ParseOptionalDate(req.StartDate)
	if err != nil {
		badRequest(ctx, "Invalid start_date")
		return
	}
	end, err := dto.ParseOptionalDate(req.EndDate)
	if err != nil {
		badRequest(ctx, "Invalid end_date")
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), budget.CreateBudgetInput{
		Name:           req.Name,
		Category:       req.Category,
		Amount:         req.Amount,
		Timeframe:      entity.BudgetTimeframe(req.Timeframe),
		StartDate:      start,
		EndDate:        end,
		BudgetType:     entity.BudgetType(req.BudgetType),
		IsRecurring:    req.IsRecurring,
		NumberOfMonths: req.NumberOfMonths,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToBudgetListResponse(output.Budgets))
}

// Update handles PATCH /budgets/:id requests.
func (c *BudgetController) Update(ctx *gin.Context) {
	var req dto.UpdateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body")
		return
	}
	start, err := dto.ParseOptionalDate(req.StartDate)
	if err != nil {
		badRequest(ctx, "Invalid start_date")
		return
	}
	end, err := dto.ParseOptionalDate(req.EndDate)
	if err != nil {
		badRequest(ctx, "Invalid end_date")
		return
	}

	input := budget.UpdateBudgetInput{
		ID:        ctx.Param("id"),
		Name:      req.Name,
		Category:  req.Category,
		Amount:    req.Amount,
		StartDate: start,
		EndDate:   end,
	}
	if req.BudgetType != nil {
		bt := entity.BudgetType(*req.BudgetType)
		input.BudgetType = &bt
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.UpdateBudgetResponse{
		Budget:        dto.ToBudgetResponse(output.Budget),
		DetachedCount: output.DetachedCount,
	})
}

// Delete handles DELETE /budgets/:id requests.
func (c *BudgetController) Delete(ctx *gin.Context) {
	c.deleteIDs(ctx, []string{ctx.Param("id")})
}

// BulkDelete handles POST /budgets/bulk-delete requests.
func (c *BudgetController) BulkDelete(ctx *gin.Context) {
	var req dto.IDsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body")
		return
	}
	c.deleteIDs(ctx, req.IDs)
}

func (c *BudgetController) deleteIDs(ctx *gin.Context, ids []string) {
	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), budget.DeleteBudgetsInput{BudgetIDs: ids})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.DeleteBudgetsResponse{
		DeletedCount:  len(output.Deleted),
		DetachedCount: output.DetachedCount,
	})
}

// DeleteSeries handles DELETE /budgets/series/:parentId requests.
func (c *BudgetController) DeleteSeries(ctx *gin.Context) {
	output, err := c.deleteSeriesUseCase.Execute(ctx.Request.Context(), budget.DeleteBudgetSeriesInput{ParentBudgetID: ctx.Param("parentId")})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.DeleteBudgetsResponse{
		DeletedCount:  len(output.Deleted),
		DetachedCount: output.DetachedCount,
	})
}

// Recompute handles POST /budgets/:id/recompute and POST /budgets/recompute requests.
// It responds with the budgets whose spent was corrected.
func (c *BudgetController) Recompute(ctx *gin.Context) {
	output, err := c.recomputeUseCase.Execute(ctx.Request.Context(), budget.RecomputeBudgetInput{BudgetID: ctx.Param("id")})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToBudgetListResponse(output.Changed))
}
