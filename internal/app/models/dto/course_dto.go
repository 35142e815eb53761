package dto

// CreateCourseRequest represents course creation data
type CreateCourseRequest struct {
	Name string `json:"name" binding:"required"`
	Type string `json:"type" binding:"required,oneof=MAIN SECONDARY"`
}

// UpdateCourseRequest represents course update data; both fields are
// replaced wholesale
type UpdateCourseRequest struct {
	Name string `json:"name" binding:"required"`
	Type string `json:"type" binding:"required,oneof=MAIN SECONDARY"`
}

// CourseResponse represents course information
type CourseResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}
