package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/unidash/internal/app/models/dto"
	"github.com/yigit/unidash/internal/app/services"
	"github.com/yigit/unidash/internal/middleware"
)

// PaymentController handles payment endpoints
type PaymentController struct {
	paymentService services.PaymentService
}

// NewPaymentController creates a new PaymentController
func NewPaymentController(paymentService services.PaymentService) *PaymentController {
	return &PaymentController{paymentService: paymentService}
}

// InitiatePayment godoc
// @Summary Initiate a mobile money payment
// @Description Returns a pending payment. Initiated payments are not recorded, so their status cannot be queried later.
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.InitiatePaymentRequest true "Payment details"
// @Success 201 {object} dto.Response{data=models.Payment}
// @Failure 400 {object} dto.Response "Validation failed"
// @Router /payments [post]
func (pc *PaymentController) InitiatePayment(c *gin.Context) {
	var req dto.InitiatePaymentRequest
	if !middleware.BindJSON(c, &req) {
		return
	}

	studentID, err := resolveStudentID(c, req.StudentID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	payment, err := pc.paymentService.Initiate(c.Request.Context(), services.InitiatePaymentInput{
		StudentID:    studentID,
		Amount:       req.Amount,
		Type:         req.Type,
		MobileNumber: req.MobileNumber,
		Provider:     req.Provider,
	})
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewSuccessResponse(payment, "Payment initiated. Approve the prompt on your phone."))
}

// GetPaymentStatus godoc
// @Summary Check a payment's status
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Payment ID" example(payment-203)
// @Success 200 {object} dto.Response{data=models.Payment}
// @Failure 404 {object} dto.Response "Payment not found"
// @Router /payments/{id} [get]
func (pc *PaymentController) GetPaymentStatus(c *gin.Context) {
	payment, err := pc.paymentService.Status(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(payment, ""))
}
