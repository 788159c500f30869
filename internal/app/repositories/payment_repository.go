package repositories

import (
	"github.com/yigit/unidash/internal/app/models"
)

// PaymentRepository handles lookups over the generated payments only
type PaymentRepository struct {
	payments []*models.Payment
}

// NewPaymentRepository creates a new PaymentRepository
func NewPaymentRepository(ds *models.Dataset) *PaymentRepository {
	return &PaymentRepository{payments: ds.Payments}
}

// GetByID returns the payment with the given id.
func (r *PaymentRepository) GetByID(id string) (*models.Payment, bool) {
	for _, p := range r.payments {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// ByStudent returns the payments made by studentID in generation order.
func (r *PaymentRepository) ByStudent(studentID string) []*models.Payment {
	out := make([]*models.Payment, 0)
	for _, p := range r.payments {
		if p.StudentID == studentID {
			out = append(out, p)
		}
	}
	return out
}

// Count returns the number of generated payments.
func (r *PaymentRepository) Count() int {
	return len(r.payments)
}
