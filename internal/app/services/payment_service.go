package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/unidash/internal/app/models"
	"github.com/yigit/unidash/internal/app/repositories"
	"github.com/yigit/unidash/internal/pkg/apperrors"
	"github.com/yigit/unidash/internal/pkg/latency"
	"github.com/yigit/unidash/internal/pkg/websocket"
)

// TotalFees is the full fee bill of one student for the year
const TotalFees = 20000

// Fee lines of the bill and the cumulative completed amount at which each is paid
const (
	tuitionFee       = 12000
	accommodationFee = 5000
	libraryFee       = 1000
	registrationFee  = 2000

	tuitionPaidAt       = 12000
	accommodationPaidAt = 17000
	libraryPaidAt       = 18000
	registrationPaidAt  = 20000
)

// InitiatePaymentInput is the request to start a mobile money payment
type InitiatePaymentInput struct {
	StudentID    string
	Amount       float64
	Type         models.PaymentType
	MobileNumber string
	Provider     string
}

// PaymentService defines the interface for payment operations
type PaymentService interface {
	Initiate(ctx context.Context, input InitiatePaymentInput) (*models.Payment, error)
	Status(ctx context.Context, paymentID string) (*models.Payment, error)
	FinancialStatement(ctx context.Context, studentID string) (*models.FinancialStatement, error)
}

type paymentServiceImpl struct {
	paymentRepo *repositories.PaymentRepository
	sim         *latency.Simulator
	notifier    Notifier
	paymentIDs  *sequence
	now         func() time.Time
	logger      zerolog.Logger
}

// NewPaymentService creates a new payment service instance
func NewPaymentService(
	paymentRepo *repositories.PaymentRepository,
	sim *latency.Simulator,
	notifier Notifier,
	logger zerolog.Logger,
) PaymentService {
	return &paymentServiceImpl{
		paymentRepo: paymentRepo,
		sim:         sim,
		notifier:    notifier,
		paymentIDs:  newSequence("payment", paymentRepo.Count()),
		now:         time.Now,
		logger:      logger,
	}
}

// Initiate returns a new pending payment. The payment is not recorded, so Status
// cannot find it afterwards.
func (s *paymentServiceImpl) Initiate(ctx context.Context, input InitiatePaymentInput) (*models.Payment, error) {
	if err := s.sim.Wait(ctx); err != nil {
		return nil, err
	}

	provider := input.Provider
	if provider == "" {
		provider = models.ProviderMTN
	}

	payment := &models.Payment{
		ID:           s.paymentIDs.Next(),
		StudentID:    input.StudentID,
		Amount:       input.Amount,
		Type:         input.Type,
		Status:       models.PaymentPending,
		Provider:     provider,
		MobileNumber: input.MobileNumber,
		CreatedAt:    s.now(),
	}

	s.logger.Info().
		Str("paymentID", payment.ID).
		Str("studentID", payment.StudentID).
		Float64("amount", payment.Amount).
		Str("provider", provider).
		Msg("Payment initiated")

	s.notifier.Notify(input.StudentID, "Payment initiated",
		fmt.Sprintf("Approve the GHS %.2f request on your %s wallet", input.Amount, provider), websocket.TypeInfo)

	return payment, nil
}

// Status looks a payment up among the generated payments
func (s *paymentServiceImpl) Status(ctx context.Context, paymentID string) (*models.Payment, error) {
	if err := s.sim.Wait(ctx); err != nil {
		return nil, err
	}

	payment, found := s.paymentRepo.GetByID(paymentID)
	if !found {
		return nil, apperrors.ErrPaymentNotFound
	}
	return payment, nil
}

// FinancialStatement derives a student's statement from their completed payments
func (s *paymentServiceImpl) FinancialStatement(ctx context.Context, studentID string) (*models.FinancialStatement, error) {
	if err := s.sim.Wait(ctx); err != nil {
		return nil, err
	}

	payments := s.paymentRepo.ByStudent(studentID)

	statement := &models.FinancialStatement{
		StudentID: studentID,
		TotalFees: TotalFees,
		Payments:  make([]models.Payment, 0, len(payments)),
	}
	for _, p := range payments {
		statement.Payments = append(statement.Payments, *p)
		if p.Status == models.PaymentCompleted {
			statement.TotalPaid += p.Amount
		}
	}
	statement.Balance = TotalFees - statement.TotalPaid
	statement.Breakdown = feeBreakdown(statement.TotalPaid)

	return statement, nil
}

func feeBreakdown(paid float64) []models.FeeItem {
	// Accommodation is the only line reported as partially paid
	accommodation := models.FeeUnpaid
	switch {
	case paid >= accommodationPaidAt:
		accommodation = models.FeePaid
	case paid > tuitionPaidAt:
		accommodation = models.FeePartial
	}

	return []models.FeeItem{
		{Name: "Tuition", Amount: tuitionFee, Status: paidOrUnpaid(paid, tuitionPaidAt)},
		{Name: "Accommodation", Amount: accommodationFee, Status: accommodation},
		{Name: "Library", Amount: libraryFee, Status: paidOrUnpaid(paid, libraryPaidAt)},
		{Name: "Registration", Amount: registrationFee, Status: paidOrUnpaid(paid, registrationPaidAt)},
	}
}

func paidOrUnpaid(paid, threshold float64) models.FeeStatus {
	if paid >= threshold {
		return models.FeePaid
	}
	return models.FeeUnpaid
}
