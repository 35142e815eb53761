package services

// Services defined in this package:
// - CourseService: CRUD and count-by-type over courses
// - MemberService: CRUD over members including enrollment resolution,
//   count-by-type, the filtered lookups and the group/course report
