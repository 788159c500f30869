package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/unidash/internal/app/models/dto"
	"github.com/yigit/unidash/internal/app/services"
	"github.com/yigit/unidash/internal/middleware"
	"github.com/yigit/unidash/internal/pkg/helpers"
)

// StudentController handles student endpoints
type StudentController struct {
	studentService services.StudentService
	courseService  services.CourseService
	paymentService services.PaymentService
}

// NewStudentController creates a new StudentController
func NewStudentController(
	studentService services.StudentService,
	courseService services.CourseService,
	paymentService services.PaymentService,
) *StudentController {
	return &StudentController{
		studentService: studentService,
		courseService:  courseService,
		paymentService: paymentService,
	}
}

// ListStudents godoc
// @Summary List students
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} dto.Response{data=[]models.Student,pagination=models.Pagination}
// @Failure 400 {object} dto.Response "Invalid page or limit"
// @Failure 401 {object} dto.Response
// @Router /students [get]
func (sc *StudentController) ListStudents(c *gin.Context) {
	page, limit, err := helpers.ParsePaginationParams(c, helpers.DefaultStudentPageSize)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	students, pagination, err := sc.studentService.List(c.Request.Context(), page, limit)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPaginatedResponse(students, pagination))
}

// GetStudent godoc
// @Summary Get a student
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID" example(student-17)
// @Success 200 {object} dto.Response{data=models.Student}
// @Failure 404 {object} dto.Response "Student not found"
// @Router /students/{id} [get]
func (sc *StudentController) GetStudent(c *gin.Context) {
	student, err := sc.studentService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(student, ""))
}

// GetStudentEnrollments godoc
// @Summary List a student's enrollments
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} dto.Response{data=[]models.Enrollment}
// @Router /students/{id}/enrollments [get]
func (sc *StudentController) GetStudentEnrollments(c *gin.Context) {
	enrollments, err := sc.courseService.StudentEnrollments(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(enrollments, ""))
}

// GetFinancialStatement godoc
// @Summary Get a student's financial statement
// @Description Totals completed payments against the yearly fee bill and derives the status of each bill line
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} dto.Response{data=models.FinancialStatement}
// @Router /students/{id}/statement [get]
func (sc *StudentController) GetFinancialStatement(c *gin.Context) {
	statement, err := sc.paymentService.FinancialStatement(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(statement, ""))
}
