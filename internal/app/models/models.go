package models

// MemberType defines the kind of school member
type MemberType string

const (
	MemberTypeStudent MemberType = "STUDENT"
	MemberTypeTeacher MemberType = "TEACHER"
)

// IsValid reports whether the member type is one of the known values
func (t MemberType) IsValid() bool {
	return t == MemberTypeStudent || t == MemberTypeTeacher
}

// CourseType defines the kind of course
type CourseType string

const (
	CourseTypeMain      CourseType = "MAIN"
	CourseTypeSecondary CourseType = "SECONDARY"
)

// IsValid reports whether the course type is one of the known values
func (t CourseType) IsValid() bool {
	return t == CourseTypeMain || t == CourseTypeSecondary
}
