package dto

import "github.com/yusuf/schoolhub/internal/app/models"

// NewCourseResponse maps a course entity to its response representation
func NewCourseResponse(course *models.Course) CourseResponse {
	return CourseResponse{
		ID:   course.ID,
		Name: course.Name,
		Type: string(course.Type),
	}
}

// NewCourseResponseList maps a slice of course entities
func NewCourseResponseList(courses []*models.Course) []CourseResponse {
	responses := make([]CourseResponse, 0, len(courses))
	for _, course := range courses {
		responses = append(responses, NewCourseResponse(course))
	}
	return responses
}

// NewMemberResponse maps a member entity to its response representation
func NewMemberResponse(member *models.Member) MemberResponse {
	courseIDs := member.CourseIDs
	if courseIDs == nil {
		courseIDs = []int64{}
	}
	return MemberResponse{
		ID:        member.ID,
		Name:      member.Name,
		Age:       member.Age,
		Group:     member.Group,
		Type:      string(member.Type),
		CourseIDs: courseIDs,
	}
}

// NewMemberResponseList maps a slice of member entities
func NewMemberResponseList(members []*models.Member) []MemberResponse {
	responses := make([]MemberResponse, 0, len(members))
	for _, member := range members {
		responses = append(responses, NewMemberResponse(member))
	}
	return responses
}
