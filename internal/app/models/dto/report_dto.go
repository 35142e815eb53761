package dto

// GroupCourseReportResponse contains all members (students first, then
// teachers) belonging to a group and enrolled in a course
type GroupCourseReportResponse struct {
	Group    string           `json:"group"`
	CourseID int64            `json:"courseId"`
	Members  []MemberResponse `json:"members"`
}
