package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/money_transfer_app/internal/core/domain"
	portssvc "github.com/SscSPs/money_transfer_app/internal/core/ports/services"
	"github.com/SscSPs/money_transfer_app/internal/dto"
	"github.com/SscSPs/money_transfer_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	accountService portssvc.AccountWriterSvc
	queryService   portssvc.QuerySvcFacade
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(as portssvc.AccountWriterSvc, qs portssvc.QuerySvcFacade) *accountHandler {
	return &accountHandler{
		accountService: as,
		queryService:   qs,
	}
}

// RegisterAccountRoutes registers routes related to accounts.
// guards run in front of the mutating routes only.
func RegisterAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountWriterSvc, queryService portssvc.QuerySvcFacade, guards ...gin.HandlerFunc) {
	h := newAccountHandler(accountService, queryService)

	accounts := rg.Group("/accounts")
	{
		accounts.Group("", guards...).POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/:accountID", h.getAccount)
		accounts.GET("/:accountID/transfers", h.listAccountTransfers)
		accounts.GET("/:accountID/transfers/:transferID", h.getAccountTransfer)
	}
}

// createAccount godoc
// @Summary Create a new account
// @Description Opens an account in one currency with a non-negative opening balance
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to create account"
// @Security BearerAuth
// @Router /accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, logger, err)
		return
	}

	logger = logger.With(slog.String("currency", req.Currency))
	logger.Info("Received request to create account")

	balance, err := domain.NewMoney(req.Currency, req.Balance)
	if err != nil {
		respondWithError(c, logger, err, "", "Failed to create account")
		return
	}

	newAccount, err := h.accountService.CreateAccount(c.Request.Context(), req.Owner, balance)
	if err != nil {
		respondWithError(c, logger, err, "", "Failed to create account")
		return
	}

	c.JSON(http.StatusCreated, dto.ToAccountResponse(newAccount))
}

// listAccounts godoc
// @Summary List accounts
// @Description Retrieves every account ordered by id
// @Tags accounts
// @Produce  json
// @Success 200 {array} dto.AccountResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to list accounts"
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accounts, err := h.queryService.ListAccounts(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "", "Failed to list accounts")
		return
	}

	c.JSON(http.StatusOK, dto.ToListAccountResponse(accounts))
}

// getAccount godoc
// @Summary Get an account by ID
// @Description Retrieves an account with its current committed balance
// @Tags accounts
// @Produce  json
// @Param   accountID path int true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid account ID"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve account"
// @Router /accounts/{accountID} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.AccountURIParams
	if err := c.ShouldBindUri(&params); err != nil {
		respondWithBindError(c, logger, err)
		return
	}
	logger = logger.With(slog.Int64("account_id", params.AccountID))

	account, err := h.queryService.GetAccount(c.Request.Context(), params.AccountID)
	if err != nil {
		respondWithError(c, logger, err, "Account not found", "Failed to retrieve account")
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// listAccountTransfers godoc
// @Summary List transfers of an account
// @Description Retrieves the transfers an account sent or received, in the order they were executed
// @Tags accounts
// @Produce  json
// @Param   accountID path int true "Account ID"
// @Success 200 {array} dto.TransferResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid account ID"
// @Failure 500 {object} dto.ErrorResponse "Failed to list transfers"
// @Router /accounts/{accountID}/transfers [get]
func (h *accountHandler) listAccountTransfers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.AccountURIParams
	if err := c.ShouldBindUri(&params); err != nil {
		respondWithBindError(c, logger, err)
		return
	}
	logger = logger.With(slog.Int64("account_id", params.AccountID))

	transfers, err := h.queryService.ListTransfersForAccount(c.Request.Context(), params.AccountID)
	if err != nil {
		respondWithError(c, logger, err, "Account not found", "Failed to list transfers")
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransferResponse(transfers))
}

// getAccountTransfer godoc
// @Summary Get a transfer of an account
// @Description Retrieves a transfer the account took part in
// @Tags accounts
// @Produce  json
// @Param   accountID path int true "Account ID"
// @Param   transferID path int true "Transfer ID"
// @Success 200 {object} dto.TransferResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid ID"
// @Failure 404 {object} dto.ErrorResponse "Transfer not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve transfer"
// @Router /accounts/{accountID}/transfers/{transferID} [get]
func (h *accountHandler) getAccountTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.TransferURIParams
	if err := c.ShouldBindUri(&params); err != nil {
		respondWithBindError(c, logger, err)
		return
	}
	logger = logger.With(slog.Int64("account_id", params.AccountID), slog.Int64("transfer_id", params.TransferID))

	transfer, err := h.queryService.GetTransfer(c.Request.Context(), params.TransferID, params.AccountID)
	if err != nil {
		respondWithError(c, logger, err, "Transfer not found", "Failed to retrieve transfer")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransferResponse(transfer))
}
