package models

// Member represents a school member (student or teacher) based on the
// 'members' table. The enrollment association lives in 'member_courses'
// and is owned by the member side.
type Member struct {
	ID    int64      `json:"id" db:"id" example:"1"`
	Name  string     `json:"name" db:"name" example:"John Doe"`
	Age   int        `json:"age" db:"age" example:"20"`
	Group string     `json:"group" db:"member_group" example:"A1"`
	Type  MemberType `json:"type" db:"type" example:"STUDENT"`

	// IDs of the courses the member is enrolled in (unique, no order)
	CourseIDs []int64 `json:"courseIds" db:"-"`

	// Relations (populated when needed)
	Courses []*Course `json:"courses,omitempty"`
}
