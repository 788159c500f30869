package dto

import "github.com/yigit/unidash/internal/app/models"

// InitiatePaymentRequest starts a mobile money payment. StudentID may be omitted by
// students paying for themselves.
type InitiatePaymentRequest struct {
	StudentID    string             `json:"studentId" binding:"omitempty,entityid=student" example:"student-17"`
	Amount       float64            `json:"amount" binding:"required,gt=0" example:"4500"`
	Type         models.PaymentType `json:"type" binding:"required,oneof=tuition accommodation library registration other" example:"tuition"`
	MobileNumber string             `json:"mobileNumber" binding:"omitempty,mobile" example:"0241234567"`
	Provider     string             `json:"provider" binding:"omitempty,oneof='MTN Mobile Money' 'Vodafone Cash' 'AirtelTigo Money'" example:"MTN Mobile Money"`
}
