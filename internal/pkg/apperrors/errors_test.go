package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainErrorsUnwrapToKind(t *testing.T) {
	assert.ErrorIs(t, ErrStudentNotFound, ErrResourceNotFound)
	assert.ErrorIs(t, ErrCourseNotFound, ErrResourceNotFound)
	assert.ErrorIs(t, ErrCourseOrStudentNotFound, ErrResourceNotFound)
	assert.ErrorIs(t, ErrPaymentNotFound, ErrResourceNotFound)
	assert.ErrorIs(t, ErrCourseFull, ErrConflict)
	assert.False(t, errors.Is(ErrCourseFull, ErrResourceNotFound))
}

func TestMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "custom", err: ErrCourseFull, want: "Course is full"},
		{name: "wrapped custom", err: fmt.Errorf("enroll: %w", ErrStudentNotFound), want: "Student not found"},
		{name: "sentinel", err: ErrInvalidCredentials, want: "Invalid email or password"},
		{name: "custom without message", err: NewCustomError(ErrBadRequest, ""), want: "bad request"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Message(tt.err))
		})
	}
}

func TestIs(t *testing.T) {
	assert.True(t, Is(ErrPaymentNotFound, ErrConflict, ErrResourceNotFound))
	assert.False(t, Is(ErrInvalidCredentials, ErrConflict, ErrResourceNotFound))
}
