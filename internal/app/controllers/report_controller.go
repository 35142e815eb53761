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

// ReportController handles the aggregate report endpoints
type ReportController struct {
	memberService *services.MemberService
	courseService *services.CourseService
}

// NewReportController creates a new ReportController
func NewReportController(memberService *services.MemberService, courseService *services.CourseService) *ReportController {
	return &ReportController{
		memberService: memberService,
		courseService: courseService,
	}
}

// GetMemberCount counts members by type
// @Summary Count members by type
// @Tags reports
// @Produce json
// @Param type query string true "Member type" Enums(STUDENT, TEACHER)
// @Success 200 {object} dto.APIResponse{data=dto.CountResponse} "Count retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid type parameter"
// @Router /reports/members/count [get]
func (c *ReportController) GetMemberCount(ctx *gin.Context) {
	memberType, ok := parseMemberType(ctx)
	if !ok {
		return
	}

	count, err := c.memberService.CountMembersByType(ctx, memberType)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.CountResponse{Count: count},
		Timestamp: time.Now(),
	})
}

// GetCourseCount counts courses by type
// @Summary Count courses by type
// @Tags reports
// @Produce json
// @Param type query string true "Course type" Enums(MAIN, SECONDARY)
// @Success 200 {object} dto.APIResponse{data=dto.CountResponse} "Count retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid type parameter"
// @Router /reports/courses/count [get]
func (c *ReportController) GetCourseCount(ctx *gin.Context) {
	courseType := models.CourseType(ctx.Query("type"))
	if !courseType.IsValid() {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course type")
		errorDetail = errorDetail.WithDetails("type must be one of: MAIN, SECONDARY")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	count, err := c.courseService.CountCoursesByType(ctx, courseType)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.CountResponse{Count: count},
		Timestamp: time.Now(),
	})
}

// GetMembersByCourse lists members of a type enrolled in a course
// @Summary List course members by type
// @Tags reports
// @Produce json
// @Param courseId query int true "Course ID"
// @Param type query string true "Member type" Enums(STUDENT, TEACHER)
// @Success 200 {object} dto.APIResponse{data=[]dto.MemberResponse} "Members retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid parameters"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /reports/courses/members [get]
func (c *ReportController) GetMembersByCourse(ctx *gin.Context) {
	courseID, ok := parseIDQuery(ctx, "courseId")
	if !ok {
		return
	}

	memberType, ok := parseMemberType(ctx)
	if !ok {
		return
	}

	members, err := c.memberService.FindMembersByTypeAndCourse(ctx, memberType, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.NewMemberResponseList(members),
		Timestamp: time.Now(),
	})
}

// GetMembersByGroup lists all members with a group label
// @Summary List group members
// @Tags reports
// @Produce json
// @Param group query string true "Group label"
// @Success 200 {object} dto.APIResponse{data=[]dto.MemberResponse} "Members retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing group parameter"
// @Router /reports/groups/members [get]
func (c *ReportController) GetMembersByGroup(ctx *gin.Context) {
	group := ctx.Query("group")
	if group == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Missing group parameter")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	members, err := c.memberService.FindMembersByGroup(ctx, group)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.NewMemberResponseList(members),
		Timestamp: time.Now(),
	})
}

// GetGroupCourseReport builds the combined group/course report
// @Summary Group and course report
// @Description All students of the group enrolled in the course, followed by all teachers
// @Tags reports
// @Produce json
// @Param group query string true "Group label"
// @Param courseId query int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.GroupCourseReportResponse} "Report built successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid parameters"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /reports/groups/courses [get]
func (c *ReportController) GetGroupCourseReport(ctx *gin.Context) {
	group := ctx.Query("group")
	if group == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Missing group parameter")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	courseID, ok := parseIDQuery(ctx, "courseId")
	if !ok {
		return
	}

	members, err := c.memberService.BuildGroupCourseReport(ctx, group, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.GroupCourseReportResponse{
			Group:    group,
			CourseID: courseID,
			Members:  dto.NewMemberResponseList(members),
		},
		Timestamp: time.Now(),
	})
}

// FilterMembers lists members of a type with a minimum age enrolled in a course
// @Summary Filter members by age, course and type
// @Description Members of the given type aged minAge or older enrolled in the course
// @Tags reports
// @Produce json
// @Param minAge query int true "Minimum age (inclusive)"
// @Param courseId query int true "Course ID"
// @Param type query string true "Member type" Enums(STUDENT, TEACHER)
// @Success 200 {object} dto.APIResponse{data=[]dto.MemberResponse} "Members retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid parameters"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /reports/members/filter [get]
func (c *ReportController) FilterMembers(ctx *gin.Context) {
	minAge, err := strconv.Atoi(ctx.Query("minAge"))
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid minAge")
		errorDetail = errorDetail.WithDetails("minAge must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	courseID, ok := parseIDQuery(ctx, "courseId")
	if !ok {
		return
	}

	memberType, ok := parseMemberType(ctx)
	if !ok {
		return
	}

	members, err := c.memberService.FindMembersByTypeAndMinAgeAndCourse(ctx, memberType, minAge, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.NewMemberResponseList(members),
		Timestamp: time.Now(),
	})
}

// parseIDQuery parses a numeric query parameter, writing a 400 response
// on failure
func parseIDQuery(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Query(name), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name)
		errorDetail = errorDetail.WithDetails(name + " must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}
