package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/money_transfer_app/internal/core/ports/services"
	"github.com/SscSPs/money_transfer_app/internal/dto"
	"github.com/SscSPs/money_transfer_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type transferHandler struct {
	engine portssvc.TransferExecutorSvc
}

func newTransferHandler(engine portssvc.TransferExecutorSvc) *transferHandler {
	return &transferHandler{engine: engine}
}

// RegisterTransferRoutes registers the transfer execution route behind guards.
func RegisterTransferRoutes(rg *gin.RouterGroup, engine portssvc.TransferExecutorSvc, guards ...gin.HandlerFunc) {
	h := newTransferHandler(engine)
	rg.Group("/transfers", guards...).POST("", h.createTransfer)
}

// createTransfer godoc
// @Summary Execute a transfer
// @Description Atomically moves an amount between two accounts of the same currency.
// @Description The request is not idempotent: resubmitting after a timeout may execute it twice.
// @Tags transfers
// @Accept  json
// @Produce  json
// @Param   transfer body dto.CreateTransferRequest true "Transfer details"
// @Success 201 {object} dto.TransferResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid amount, same account, or currency mismatch"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Failure 409 {object} dto.ErrorResponse "Aborted by a concurrent update"
// @Failure 422 {object} dto.ErrorResponse "Insufficient funds"
// @Failure 500 {object} dto.ErrorResponse "Failed to execute transfer"
// @Security BearerAuth
// @Router /transfers [post]
func (h *transferHandler) createTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, logger, err)
		return
	}

	candidate, err := req.ToDomain()
	if err != nil {
		respondWithError(c, logger, err, "", "Failed to execute transfer")
		return
	}

	transfer, err := h.engine.Execute(c.Request.Context(), candidate)
	if err != nil {
		respondWithError(c, logger, err, "Account not found", "Failed to execute transfer")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransferResponse(transfer))
}
