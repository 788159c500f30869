package repositories

import (
	"github.com/yigit/unidash/internal/app/models"
)

// UserRepository looks up accounts of every role
type UserRepository struct {
	accounts []models.Account
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(ds *models.Dataset) *UserRepository {
	return &UserRepository{accounts: ds.Accounts()}
}

// FindByEmail returns the first account whose email matches exactly.
func (r *UserRepository) FindByEmail(email string) (models.Account, bool) {
	for _, a := range r.accounts {
		if a.Base().Email == email {
			return a, true
		}
	}
	return nil, false
}

// GetByID returns the account with the given id.
func (r *UserRepository) GetByID(id string) (models.Account, bool) {
	for _, a := range r.accounts {
		if a.Base().ID == id {
			return a, true
		}
	}
	return nil, false
}

// Count returns the number of accounts that can sign in.
func (r *UserRepository) Count() int {
	return len(r.accounts)
}
