package models

import "time"

// PaymentType is the fee a payment settles.
type PaymentType string

const (
	PaymentTuition       PaymentType = "tuition"
	PaymentAccommodation PaymentType = "accommodation"
	PaymentLibrary       PaymentType = "library"
	PaymentRegistration  PaymentType = "registration"
	PaymentOther         PaymentType = "other"
)

// PaymentTypes lists every payment type.
var PaymentTypes = []PaymentType{PaymentTuition, PaymentAccommodation, PaymentLibrary, PaymentRegistration, PaymentOther}

// PaymentStatus is the settlement state of a payment.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

// Mobile money providers.
const (
	ProviderMTN        = "MTN Mobile Money"
	ProviderVodafone   = "Vodafone Cash"
	ProviderAirtelTigo = "AirtelTigo Money"
)

// Providers lists the supported mobile money providers.
var Providers = []string{ProviderMTN, ProviderVodafone, ProviderAirtelTigo}

// Payment is a mobile money payment made by a student.
type Payment struct {
	ID             string        `json:"id" example:"payment-203"`
	StudentID      string        `json:"studentId" example:"student-17"`
	Amount         float64       `json:"amount" example:"4500"`
	Type           PaymentType   `json:"type" example:"tuition"`
	Status         PaymentStatus `json:"status" example:"completed"`
	Provider       string        `json:"provider" example:"MTN Mobile Money"`
	MobileNumber   string        `json:"mobileNumber" example:"0241234567"`
	TransactionRef string        `json:"transactionRef,omitempty" example:"TXN4821937560"`
	CreatedAt      time.Time     `json:"createdAt"`
	CompletedAt    *time.Time    `json:"completedAt,omitempty"`
}

// FeeStatus is the settlement state of one line of a fee breakdown.
type FeeStatus string

const (
	FeePaid    FeeStatus = "paid"
	FeePartial FeeStatus = "partial"
	FeeUnpaid  FeeStatus = "unpaid"
)

// FeeItem is one line of a fee breakdown.
type FeeItem struct {
	Name   string    `json:"name" example:"Tuition"`
	Amount float64   `json:"amount" example:"12000"`
	Status FeeStatus `json:"status" example:"paid"`
}

// FinancialStatement is derived from a student's payments; it is never stored.
type FinancialStatement struct {
	StudentID string    `json:"studentId"`
	TotalFees float64   `json:"totalFees" example:"20000"`
	TotalPaid float64   `json:"totalPaid" example:"13000"`
	Balance   float64   `json:"balance" example:"7000"`
	Breakdown []FeeItem `json:"breakdown"`
	Payments  []Payment `json:"payments"`
}
