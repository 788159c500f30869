// Package controllers handles HTTP request handling
package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/unidash/internal/app/models"
	"github.com/yigit/unidash/internal/middleware"
	"github.com/yigit/unidash/internal/pkg/apperrors"
)

// resolveStudentID decides whose record a mutation acts on. Students act on
// themselves only; staff must name the student.
func resolveStudentID(c *gin.Context, requested string) (string, error) {
	role, _ := middleware.CurrentRole(c)
	userID, _ := middleware.CurrentUserID(c)

	if role == models.RoleStudent {
		if requested != "" && requested != userID {
			return "", apperrors.NewForbiddenError("Students can only act on their own records")
		}
		return userID, nil
	}

	if requested == "" {
		return "", apperrors.NewBadRequestError("studentId is required")
	}
	return requested, nil
}
