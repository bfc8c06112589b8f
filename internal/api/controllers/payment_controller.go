package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gemquest/internal/models/request_models"
	"gemquest/internal/services"
	"gemquest/pkg/utils"
)

type PaymentController struct {
	payoutService services.PayoutServiceInterface
	methodService services.PaymentMethodServiceInterface
}

func NewPaymentController(
	payoutService services.PayoutServiceInterface,
	methodService services.PaymentMethodServiceInterface,
) *PaymentController {
	return &PaymentController{
		payoutService: payoutService,
		methodService: methodService,
	}
}

// TriggerPayout godoc
// @Summary Pay out a child's earned gems to the parent's default card
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body request_models.TriggerPayoutRequest true "Payout payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/trigger-payout [post]
func (p *PaymentController) TriggerPayout(c *gin.Context) {
	var req request_models.TriggerPayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := p.payoutService.TriggerPayout(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	message := "Payout completed"
	if !result.Success {
		message = "Payout failed"
	}
	utils.RespondSuccess(c, result, message)
}

// PullFunds godoc
// @Summary Pull funds from one of the parent's cards (PIN gated)
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body request_models.PullFundsRequest true "Pull funds payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Security BearerAuth
// @Router /payment/pull-funds [post]
func (p *PaymentController) PullFunds(c *gin.Context) {
	var req request_models.PullFundsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := p.payoutService.PullFunds(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	message := "Funds pulled"
	if !result.Success {
		message = "Pull funds failed"
	}
	utils.RespondSuccess(c, result, message)
}

// CreatePaymentMethod godoc
// @Summary Store a payment method (card data encrypted at rest)
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body request_models.CreatePaymentMethodRequest true "Payment method payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/payment-methods [post]
func (p *PaymentController) CreatePaymentMethod(c *gin.Context) {
	var req request_models.CreatePaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	method, err := p.methodService.CreatePaymentMethod(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, method, "Payment method created")
}

// ListPaymentMethods godoc
// @Summary List a user's payment methods (masked)
// @Tags Payments
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/payment-methods/user/{userId} [get]
func (p *PaymentController) ListPaymentMethods(c *gin.Context) {
	methods, err := p.methodService.ListPaymentMethods(c.Request.Context(), c.Param("userId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, methods, "Payment methods fetched")
}

// SetDefaultPaymentMethod godoc
// @Summary Promote a payment method to default
// @Tags Payments
// @Produce json
// @Param id path string true "Payment method ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/payment-methods/{id}/set-default [put]
func (p *PaymentController) SetDefaultPaymentMethod(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		utils.RespondError(c, http.StatusBadRequest, "user_id is required")
		return
	}

	if err := p.methodService.SetDefaultPaymentMethod(c.Request.Context(), userID, c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Default payment method updated")
}

// DeletePaymentMethod godoc
// @Summary Delete a payment method
// @Tags Payments
// @Produce json
// @Param id path string true "Payment method ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /api/payment-methods/{id} [delete]
func (p *PaymentController) DeletePaymentMethod(c *gin.Context) {
	if err := p.methodService.DeletePaymentMethod(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Payment method deleted")
}

// ListTransactions godoc
// @Summary List a user's payment transactions
// @Tags Payments
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /payment/transactions/{userId} [get]
func (p *PaymentController) ListTransactions(c *gin.Context) {
	txns, err := p.payoutService.ListTransactions(c.Request.Context(), c.Param("userId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, txns, "Transactions fetched")
}

// GetTransaction godoc
// @Summary Fetch one payment transaction
// @Tags Payments
// @Produce json
// @Param transactionId path string true "Transaction ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /payment/transaction/{transactionId} [get]
func (p *PaymentController) GetTransaction(c *gin.Context) {
	txn, err := p.payoutService.GetTransaction(c.Request.Context(), c.Param("transactionId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, txn, "Transaction fetched")
}
