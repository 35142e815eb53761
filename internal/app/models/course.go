package models

// Course represents a course record based on the 'courses' table.
type Course struct {
	ID   int64      `json:"id" db:"id" example:"1"`
	Name string     `json:"name" db:"name" example:"Mathematics"`
	Type CourseType `json:"type" db:"type" example:"MAIN"`
}
