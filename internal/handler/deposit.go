package handler

import (
	"crypto/subtle"
	"net/http"

	"betpool/internal/model"

	"github.com/gin-gonic/gin"
)

// CreateDeposit
// @Summary Create a deposit
// @Description Opens a pending deposit and returns the PIX payload with its expiry
// @Tags deposits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param deposit body model.CreateDepositRequest true "Deposit amount in minor units"
// @Success 201 {object} model.DepositResponse
// @Failure 400 {object} model.ErrorResponse
// @Router /deposits [post]
func (h *Handler) CreateDeposit(c *gin.Context) {
	user := currentUser(c)

	var req model.CreateDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	resp, err := h.depositService.CreateDeposit(c.Request.Context(), user.ID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetTransaction
// @Summary Poll transaction status
// @Description Returns a transaction by its public id; clients poll this until the deposit completes
// @Tags deposits
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction public ID"
// @Success 200 {object} model.Transaction
// @Failure 404 {object} model.ErrorResponse "Transaction not found"
// @Router /transactions/{id} [get]
func (h *Handler) GetTransaction(c *gin.Context) {
	user := currentUser(c)

	trans, err := h.depositService.GetTransaction(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	// A user only sees their own ledger entries
	if trans.UserID != user.ID && user.Role != model.RoleAdmin {
		h.handleError(c, model.ErrTransactionNotFound)
		return
	}

	c.JSON(http.StatusOK, trans)
}

// PaymentWebhook
// @Summary Payment provider webhook
// @Description Provider notification of payment completion; confirms the deposit idempotently
// @Tags deposits
// @Accept json
// @Produce json
// @Param X-Webhook-Secret header string true "Shared webhook secret"
// @Param notification body model.PaymentWebhookRequest true "Provider payload"
// @Success 200 {object} model.Transaction
// @Failure 401 {object} model.ErrorResponse "Bad secret"
// @Failure 410 {object} model.ErrorResponse "Deposit expired"
// @Router /webhooks/payments [post]
func (h *Handler) PaymentWebhook(c *gin.Context) {
	secret := c.GetHeader("X-Webhook-Secret")
	if subtle.ConstantTimeCompare([]byte(secret), []byte(h.webhookSecret)) != 1 {
		c.JSON(http.StatusUnauthorized, model.ErrorResponse{
			Error: "invalid webhook secret",
			Code:  "UNAUTHORIZED",
		})
		return
	}

	var req model.PaymentWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	switch req.Status {
	case "paid", "approved", "completed":
	default:
		// Nothing to do for intermediate provider states
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	trans, err := h.depositService.ConfirmDeposit(c.Request.Context(), req.TransactionID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, trans)
}
