package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/enrollment/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	userController *controllers.UserController,
	courseController *controllers.CourseController,
	enrollmentController *controllers.EnrollmentController,
	healthController *controllers.HealthController,
) {
	router.GET("/healthz", healthController.Health)

	// The root lists users, same as /users/
	router.GET("/", userController.GetAllUsers)

	users := router.Group("/users")
	{
		users.GET("/", userController.GetAllUsers)
		users.POST("/", userController.CreateUser)
		users.GET("/:netID/", userController.GetUser)
		users.POST("/:netID/", userController.UpdateUser)
		users.DELETE("/:netID/", userController.DeleteUser)

		// Enrollment
		users.POST("/:netID/course/", enrollmentController.JoinCourse)
		users.DELETE("/:netID/course/", enrollmentController.DropCourse)
	}

	courses := router.Group("/courses")
	{
		courses.GET("/", courseController.GetAllCourses)
		courses.POST("/", courseController.CreateCourse)
		courses.GET("/:courseID/", courseController.GetCourse)
		courses.POST("/:courseID/", courseController.UpdateCourse)
		courses.DELETE("/:courseID/", courseController.DeleteCourse)
	}
}
