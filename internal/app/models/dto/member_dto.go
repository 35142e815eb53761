package dto

// CreateMemberRequest represents member creation data. Course
// associations are carried as a set of course IDs.
type CreateMemberRequest struct {
	Name      string  `json:"name" binding:"required"`
	Age       *int    `json:"age" binding:"required,min=1"`
	Group     string  `json:"group" binding:"required"`
	Type      string  `json:"type" binding:"required,oneof=STUDENT TEACHER"`
	CourseIDs []int64 `json:"courseIds"`
}

// UpdateMemberRequest represents member update data; scalar fields and
// the whole enrollment set are replaced
type UpdateMemberRequest struct {
	Name      string  `json:"name" binding:"required"`
	Age       *int    `json:"age" binding:"required,min=1"`
	Group     string  `json:"group" binding:"required"`
	Type      string  `json:"type" binding:"required,oneof=STUDENT TEACHER"`
	CourseIDs []int64 `json:"courseIds"`
}

// MemberResponse represents member information
type MemberResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Age       int     `json:"age"`
	Group     string  `json:"group"`
	Type      string  `json:"type"`
	CourseIDs []int64 `json:"courseIds"`
}
