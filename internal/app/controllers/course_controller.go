package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yusuf/schoolhub/internal/app/models"
	"github.com/yusuf/schoolhub/internal/app/models/dto"
	"github.com/yusuf/schoolhub/internal/app/services"
	"github.com/yusuf/schoolhub/internal/middleware"
)

// CourseController handles course-related endpoints
type CourseController struct {
	courseService *services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService *services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// CreateCourse handles course creation
// @Summary Create a new course
// @Description Creates a new course with the provided information
// @Tags courses
// @Accept json
// @Produce json
// @Param request body dto.CreateCourseRequest true "Course information"
// @Success 201 {object} dto.APIResponse{data=dto.CourseResponse} "Course created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	course := &models.Course{
		Name: req.Name,
		Type: models.CourseType(req.Type),
	}

	if err := c.courseService.CreateCourse(ctx, course); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      dto.NewCourseResponse(course),
		Timestamp: time.Now(),
	})
}

// GetCourseByID retrieves a course by ID
// @Summary Get course by ID
// @Description Retrieves a specific course by its ID
// @Tags courses
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse} "Course retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id} [get]
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	course, err := c.courseService.GetCourseByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.NewCourseResponse(course),
		Timestamp: time.Now(),
	})
}

// GetAllCourses retrieves all courses
// @Summary Get all courses
// @Description Retrieves a list of all courses
// @Tags courses
// @Accept json
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.CourseResponse} "Courses retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [get]
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	courses, err := c.courseService.GetAllCourses(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.NewCourseResponseList(courses),
		Timestamp: time.Now(),
	})
}

// UpdateCourse updates an existing course
// @Summary Update a course
// @Description Replaces an existing course's name and type
// @Tags courses
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Param request body dto.UpdateCourseRequest true "Updated course information"
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse} "Course updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	course := &models.Course{
		ID:   id,
		Name: req.Name,
		Type: models.CourseType(req.Type),
	}

	if err := c.courseService.UpdateCourse(ctx, course); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.NewCourseResponse(course),
		Timestamp: time.Now(),
	})
}

// DeleteCourse deletes a course
// @Summary Delete a course
// @Description Deletes an existing course by its ID; enrollment links are dropped
// @Tags courses
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Success 204 "Course deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.courseService.DeleteCourse(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// parseIDParam parses a numeric path parameter, writing a 400 response
// on failure
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name)
		errorDetail = errorDetail.WithDetails(name + " must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}
