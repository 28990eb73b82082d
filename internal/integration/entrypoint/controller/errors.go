// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
)

// statusFor maps an error kind to an HTTP status.
func statusFor(err error) int {
	switch domainerror.Kind(err) {
	case domainerror.ErrValidation:
		return http.StatusBadRequest
	case domainerror.ErrNotFound:
		return http.StatusNotFound
	case domainerror.ErrDuplicateName:
		return http.StatusConflict
	case domainerror.ErrBudgetExceeded:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// codeFor extracts the code of a typed domain error.
func codeFor(err error) string {
	var txnErr *domainerror.TransactionError
	var budgetErr *domainerror.BudgetError
	var accountErr *domainerror.AccountError
	var categoryErr *domainerror.CategoryError
	var analyticsErr *domainerror.AnalyticsError
	switch {
	case errors.As(err, &txnErr):
		return string(txnErr.Code)
	case errors.As(err, &budgetErr):
		return string(budgetErr.Code)
	case errors.As(err, &accountErr):
		return string(accountErr.Code)
	case errors.As(err, &categoryErr):
		return string(categoryErr.Code)
	case errors.As(err, &analyticsErr):
		return string(analyticsErr.Code)
	}
	return ""
}

// respondError writes the error response for err. Unclassified errors are logged
// and hidden behind a generic message.
func respondError(ctx *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		slog.Error("Request failed", "path", ctx.FullPath(), "error", err)
		ctx.JSON(status, dto.ErrorResponse{Error: "Internal server error"})
		return
	}

	response := dto.ErrorResponse{
		Error: err.Error(),
		Code:  codeFor(err),
	}
	var exceeded *domainerror.BudgetExceededError
	if errors.As(err, &exceeded) {
		remaining := exceeded.Available().StringFixed(2)
		response.Remaining = &remaining
	}
	ctx.JSON(status, response)
}

// badRequest writes a 400 for a malformed request.
func badRequest(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: message})
}
