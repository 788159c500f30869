package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/unidash/internal/app/models/dto"
	"github.com/yigit/unidash/internal/app/services"
	"github.com/yigit/unidash/internal/middleware"
	"github.com/yigit/unidash/internal/pkg/helpers"
)

// CourseController handles course and enrollment endpoints
type CourseController struct {
	courseService services.CourseService
	logger        zerolog.Logger
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService, logger zerolog.Logger) *CourseController {
	return &CourseController{
		courseService: courseService,
		logger:        logger,
	}
}

// ListCourses godoc
// @Summary List courses
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} dto.Response{data=[]models.Course,pagination=models.Pagination}
// @Router /courses [get]
func (cc *CourseController) ListCourses(c *gin.Context) {
	page, limit, err := helpers.ParsePaginationParams(c, helpers.DefaultCoursePageSize)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	courses, pagination, err := cc.courseService.List(c.Request.Context(), page, limit)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPaginatedResponse(courses, pagination))
}

// GetCourse godoc
// @Summary Get a course
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID" example(course-4)
// @Success 200 {object} dto.Response{data=models.Course}
// @Failure 404 {object} dto.Response "Course not found"
// @Router /courses/{id} [get]
func (cc *CourseController) GetCourse(c *gin.Context) {
	course, err := cc.courseService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(course, ""))
}

// GetCourseEnrollments godoc
// @Summary List a course's enrollments
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Success 200 {object} dto.Response{data=[]models.Enrollment}
// @Router /courses/{id}/enrollments [get]
func (cc *CourseController) GetCourseEnrollments(c *gin.Context) {
	enrollments, err := cc.courseService.CourseEnrollments(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(enrollments, ""))
}

// Enroll godoc
// @Summary Enroll a student in a course
// @Description Students enroll themselves; staff name the student in the body. The enrollment is returned but not recorded.
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Param request body dto.EnrollRequest false "Student to enroll"
// @Success 201 {object} dto.Response{data=models.Enrollment}
// @Failure 404 {object} dto.Response "Course or student not found"
// @Failure 409 {object} dto.Response "Course is full"
// @Router /courses/{id}/enroll [post]
func (cc *CourseController) Enroll(c *gin.Context) {
	studentID, ok := cc.bindStudent(c)
	if !ok {
		return
	}

	enrollment, err := cc.courseService.Enroll(c.Request.Context(), c.Param("id"), studentID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewSuccessResponse(enrollment, "Enrolled successfully"))
}

// Drop godoc
// @Summary Drop a course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Param request body dto.EnrollRequest false "Student dropping the course"
// @Success 200 {object} dto.Response
// @Router /courses/{id}/drop [post]
func (cc *CourseController) Drop(c *gin.Context) {
	studentID, ok := cc.bindStudent(c)
	if !ok {
		return
	}

	if err := cc.courseService.Drop(c.Request.Context(), c.Param("id"), studentID); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Course dropped successfully"))
}

// bindStudent reads the optional body and resolves the acting student
func (cc *CourseController) bindStudent(c *gin.Context) (string, bool) {
	var req dto.EnrollRequest
	if c.Request.ContentLength != 0 && !middleware.BindJSON(c, &req) {
		return "", false
	}

	studentID, err := resolveStudentID(c, req.StudentID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return "", false
	}
	return studentID, true
}
