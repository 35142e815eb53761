package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/yusuf/schoolhub/internal/app/controllers"
	"github.com/yusuf/schoolhub/internal/app/models/dto"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	courseController *controllers.CourseController,
	memberController *controllers.MemberController,
	reportController *controllers.ReportController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Course routes
	courses := v1.Group("/courses")
	{
		courses.POST("", courseController.CreateCourse)
		courses.GET("", courseController.GetAllCourses)
		courses.GET("/:id", courseController.GetCourseByID)
		courses.PUT("/:id", courseController.UpdateCourse)
		courses.DELETE("/:id", courseController.DeleteCourse)
	}

	// Member routes
	members := v1.Group("/members")
	{
		members.POST("", memberController.CreateMember)
		members.GET("", memberController.GetMembersByType)
		members.GET("/:id", memberController.GetMemberByID)
		members.PUT("/:id", memberController.UpdateMember)
		members.DELETE("/:id", memberController.DeleteMember)
	}

	// Report routes
	reports := v1.Group("/reports")
	{
		reports.GET("/members/count", reportController.GetMemberCount)
		reports.GET("/members/filter", reportController.FilterMembers)
		reports.GET("/courses/count", reportController.GetCourseCount)
		reports.GET("/courses/members", reportController.GetMembersByCourse)
		reports.GET("/groups/members", reportController.GetMembersByGroup)
		reports.GET("/groups/courses", reportController.GetGroupCourseReport)
	}

	// Health check endpoint
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
