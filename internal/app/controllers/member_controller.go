package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yusuf/schoolhub/internal/app/models"
	"github.com/yusuf/schoolhub/internal/app/models/dto"
	"github.com/yusuf/schoolhub/internal/app/services"
	"github.com/yusuf/schoolhub/internal/middleware"
)

// MemberController handles member-related endpoints
type MemberController struct {
	memberService *services.MemberService
}

// NewMemberController creates a new MemberController
func NewMemberController(memberService *services.MemberService) *MemberController {
	return &MemberController{
		memberService: memberService,
	}
}

// CreateMember handles member creation
// @Summary Create a new member
// @Description Creates a student or teacher; courseIds must all resolve or nothing is created
// @Tags members
// @Accept json
// @Produce json
// @Param request body dto.CreateMemberRequest true "Member information"
// @Success 201 {object} dto.APIResponse{data=dto.MemberResponse} "Member created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Referenced course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /members [post]
func (c *MemberController) CreateMember(ctx *gin.Context) {
	var req dto.CreateMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	member := &models.Member{
		Name:      req.Name,
		Age:       *req.Age,
		Group:     req.Group,
		Type:      models.MemberType(req.Type),
		CourseIDs: req.CourseIDs,
	}

	if err := c.memberService.CreateMember(ctx, member); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      dto.NewMemberResponse(member),
		Timestamp: time.Now(),
	})
}

// GetMemberByID retrieves a member by ID
// @Summary Get member by ID
// @Description Retrieves a specific member by its ID
// @Tags members
// @Accept json
// @Produce json
// @Param id path int true "Member ID"
// @Success 200 {object} dto.APIResponse{data=dto.MemberResponse} "Member retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid member ID"
// @Failure 404 {object} dto.ErrorResponse "Member not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /members/{id} [get]
func (c *MemberController) GetMemberByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	member, err := c.memberService.GetMemberByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.NewMemberResponse(member),
		Timestamp: time.Now(),
	})
}

// GetMembersByType retrieves all members of a given type
// @Summary List members by type
// @Description Retrieves all members of the given type (STUDENT or TEACHER)
// @Tags members
// @Accept json
// @Produce json
// @Param type query string true "Member type" Enums(STUDENT, TEACHER)
// @Success 200 {object} dto.APIResponse{data=[]dto.MemberResponse} "Members retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid type parameter"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /members [get]
func (c *MemberController) GetMembersByType(ctx *gin.Context) {
	memberType, ok := parseMemberType(ctx)
	if !ok {
		return
	}

	members, err := c.memberService.GetMembersByType(ctx, memberType)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.NewMemberResponseList(members),
		Timestamp: time.Now(),
	})
}

// UpdateMember updates an existing member
// @Summary Update a member
// @Description Replaces a member's fields and its entire enrollment set
// @Tags members
// @Accept json
// @Produce json
// @Param id path int true "Member ID"
// @Param request body dto.UpdateMemberRequest true "Updated member information"
// @Success 200 {object} dto.APIResponse{data=dto.MemberResponse} "Member updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 404 {object} dto.ErrorResponse "Member or referenced course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /members/{id} [put]
func (c *MemberController) UpdateMember(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	member := &models.Member{
		ID:        id,
		Name:      req.Name,
		Age:       *req.Age,
		Group:     req.Group,
		Type:      models.MemberType(req.Type),
		CourseIDs: req.CourseIDs,
	}

	if err := c.memberService.UpdateMember(ctx, member); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.NewMemberResponse(member),
		Timestamp: time.Now(),
	})
}

// DeleteMember deletes a member
// @Summary Delete a member
// @Description Deletes an existing member and its enrollment links
// @Tags members
// @Accept json
// @Produce json
// @Param id path int true "Member ID"
// @Success 204 "Member deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid member ID"
// @Failure 404 {object} dto.ErrorResponse "Member not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /members/{id} [delete]
func (c *MemberController) DeleteMember(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.memberService.DeleteMember(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// parseMemberType reads and validates the required type query
// parameter, writing a 400 response on failure
func parseMemberType(ctx *gin.Context) (models.MemberType, bool) {
	memberType := models.MemberType(ctx.Query("type"))
	if !memberType.IsValid() {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid member type")
		errorDetail = errorDetail.WithDetails("type must be one of: STUDENT, TEACHER")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return "", false
	}
	return memberType, true
}
