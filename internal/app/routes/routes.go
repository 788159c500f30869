package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/unidash/internal/app/controllers"
	"github.com/yigit/unidash/internal/app/models"
	"github.com/yigit/unidash/internal/app/models/dto"
	"github.com/yigit/unidash/internal/middleware"
	"github.com/yigit/unidash/internal/pkg/websocket"
)

// Controllers groups the handlers mounted by SetupRouter
type Controllers struct {
	Auth         *controllers.AuthController
	Student      *controllers.StudentController
	Course       *controllers.CourseController
	Announcement *controllers.AnnouncementController
	Payment      *controllers.PaymentController
	Navigation   *controllers.NavigationController
}

// SetupRouter configures all application routes. wsHandler may be nil when live
// notifications are disabled.
func SetupRouter(
	router *gin.Engine,
	ctrl Controllers,
	authMiddleware *middleware.AuthMiddleware,
	wsHandler *websocket.Handler,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", ctrl.Auth.Login)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	students := authenticated.Group("/students")
	{
		// Browsing the student directory is a staff feature
		students.GET("", authMiddleware.RoleRequired(models.RoleLecturer, models.RoleAdmin, models.RoleFinance), ctrl.Student.ListStudents)
		students.GET("/:id", ctrl.Student.GetStudent)
		students.GET("/:id/enrollments", ctrl.Student.GetStudentEnrollments)
		students.GET("/:id/statement", ctrl.Student.GetFinancialStatement)
	}

	courses := authenticated.Group("/courses")
	{
		courses.GET("", ctrl.Course.ListCourses)
		courses.GET("/:id", ctrl.Course.GetCourse)
		courses.GET("/:id/enrollments", ctrl.Course.GetCourseEnrollments)
		courses.POST("/:id/enroll", ctrl.Course.Enroll)
		courses.POST("/:id/drop", ctrl.Course.Drop)
	}

	authenticated.GET("/announcements", ctrl.Announcement.ListAnnouncements)

	payments := authenticated.Group("/payments")
	{
		payments.POST("", ctrl.Payment.InitiatePayment)
		payments.GET("/:id", ctrl.Payment.GetPaymentStatus)
	}

	authenticated.GET("/navigation", ctrl.Navigation.GetMenu)

	if wsHandler != nil {
		authenticated.GET("/ws/notifications", wsHandler.HandleConnection)
	}

	// Health check endpoint (public)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"status": "ok"}, ""))
	})
}
