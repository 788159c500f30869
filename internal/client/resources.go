package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/yigit/unidash/internal/app/models"
	"github.com/yigit/unidash/internal/app/models/dto"
)

// Students lists one page of students. Zero page or limit uses the server default.
func (c *Client) Students(ctx context.Context, page, limit int) ([]models.Student, models.Pagination, error) {
	var students []models.Student
	env, err := c.do(ctx, http.MethodGet, "/students", pageQuery(page, limit), nil, &students)
	if err != nil {
		return nil, models.Pagination{}, err
	}
	return students, pagination(env), nil
}

// Student fetches one student
func (c *Client) Student(ctx context.Context, id string) (*models.Student, error) {
	var student models.Student
	if _, err := c.do(ctx, http.MethodGet, "/students/"+url.PathEscape(id), nil, nil, &student); err != nil {
		return nil, err
	}
	return &student, nil
}

// StudentEnrollments lists a student's enrollments
func (c *Client) StudentEnrollments(ctx context.Context, studentID string) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	if _, err := c.do(ctx, http.MethodGet, "/students/"+url.PathEscape(studentID)+"/enrollments", nil, nil, &enrollments); err != nil {
		return nil, err
	}
	return enrollments, nil
}

// Statement fetches a student's financial statement
func (c *Client) Statement(ctx context.Context, studentID string) (*models.FinancialStatement, error) {
	var statement models.FinancialStatement
	if _, err := c.do(ctx, http.MethodGet, "/students/"+url.PathEscape(studentID)+"/statement", nil, nil, &statement); err != nil {
		return nil, err
	}
	return &statement, nil
}

// Courses lists one page of courses
func (c *Client) Courses(ctx context.Context, page, limit int) ([]models.Course, models.Pagination, error) {
	var courses []models.Course
	env, err := c.do(ctx, http.MethodGet, "/courses", pageQuery(page, limit), nil, &courses)
	if err != nil {
		return nil, models.Pagination{}, err
	}
	return courses, pagination(env), nil
}

// Course fetches one course
func (c *Client) Course(ctx context.Context, id string) (*models.Course, error) {
	var course models.Course
	if _, err := c.do(ctx, http.MethodGet, "/courses/"+url.PathEscape(id), nil, nil, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// CourseEnrollments lists a course's enrollments
func (c *Client) CourseEnrollments(ctx context.Context, courseID string) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	if _, err := c.do(ctx, http.MethodGet, "/courses/"+url.PathEscape(courseID)+"/enrollments", nil, nil, &enrollments); err != nil {
		return nil, err
	}
	return enrollments, nil
}

// Enroll enrolls a student in a course. Students may pass an empty studentID.
func (c *Client) Enroll(ctx context.Context, courseID, studentID string) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	if _, err := c.do(ctx, http.MethodPost, "/courses/"+url.PathEscape(courseID)+"/enroll", nil, dto.EnrollRequest{StudentID: studentID}, &enrollment); err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// Drop drops a course and returns the server's confirmation message
func (c *Client) Drop(ctx context.Context, courseID, studentID string) (string, error) {
	env, err := c.do(ctx, http.MethodPost, "/courses/"+url.PathEscape(courseID)+"/drop", nil, dto.EnrollRequest{StudentID: studentID}, nil)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

// Announcements lists one page of announcements
func (c *Client) Announcements(ctx context.Context, page, limit int) ([]models.Announcement, models.Pagination, error) {
	var announcements []models.Announcement
	env, err := c.do(ctx, http.MethodGet, "/announcements", pageQuery(page, limit), nil, &announcements)
	if err != nil {
		return nil, models.Pagination{}, err
	}
	return announcements, pagination(env), nil
}

// InitiatePayment starts a mobile money payment
func (c *Client) InitiatePayment(ctx context.Context, req dto.InitiatePaymentRequest) (*models.Payment, error) {
	var payment models.Payment
	if _, err := c.do(ctx, http.MethodPost, "/payments", nil, req, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

// Payment fetches a payment's current status
func (c *Client) Payment(ctx context.Context, id string) (*models.Payment, error) {
	var payment models.Payment
	if _, err := c.do(ctx, http.MethodGet, "/payments/"+url.PathEscape(id), nil, nil, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

// Menu fetches the navigation menu of the signed-in user
func (c *Client) Menu(ctx context.Context) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if _, err := c.do(ctx, http.MethodGet, "/navigation", nil, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}
