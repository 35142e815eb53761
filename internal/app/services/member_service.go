package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/yusuf/schoolhub/internal/app/models"
	"github.com/yusuf/schoolhub/internal/app/repositories"
	"github.com/yusuf/schoolhub/internal/pkg/apperrors"
)

// MemberService handles member-related operations, including
// enrollment resolution and the aggregate reports
type MemberService struct {
	members repositories.MemberStore
	courses repositories.CourseStore
}

// NewMemberService creates a new member service instance
func NewMemberService(members repositories.MemberStore, courses repositories.CourseStore) *MemberService {
	return &MemberService{
		members: members,
		courses: courses,
	}
}

// validateMember validates member data before database operations
func (s *MemberService) validateMember(member *models.Member) error {
	if member == nil {
		return apperrors.NewValidationError("member is nil")
	}

	if strings.TrimSpace(member.Name) == "" {
		return apperrors.NewValidationError("member name cannot be blank")
	}

	if member.Age < 1 {
		return apperrors.NewValidationError("member age must be at least 1")
	}

	if strings.TrimSpace(member.Group) == "" {
		return apperrors.NewValidationError("member group cannot be blank")
	}

	if !member.Type.IsValid() {
		return apperrors.NewValidationError(fmt.Sprintf("invalid member type: %s", member.Type))
	}

	return nil
}

// resolveCourses resolves a set of course ids to course entities with a
// single bulk lookup. Resolution is all-or-nothing: if any id is
// missing the whole operation fails with a NotFound error naming
// exactly the unresolved ids.
func (s *MemberService) resolveCourses(ctx context.Context, courseIDs []int64) ([]*models.Course, error) {
	if len(courseIDs) == 0 {
		return nil, nil
	}

	distinct := distinctIDs(courseIDs)

	courses, err := s.courses.GetByIDs(ctx, distinct)
	if err != nil {
		return nil, fmt.Errorf("error resolving courses: %w", err)
	}

	if len(courses) != len(distinct) {
		resolved := make(map[int64]bool, len(courses))
		for _, course := range courses {
			resolved[course.ID] = true
		}

		var missing []int64
		for _, id := range distinct {
			if !resolved[id] {
				missing = append(missing, id)
			}
		}
		sort.Slice(missing, func(i, j int) bool { return missing[i] < missing[j] })

		return nil, apperrors.NewResourceNotFoundError(fmt.Sprintf("Courses not found with ids: %v", missing))
	}

	return courses, nil
}

// CreateMember creates a member with its enrollment set. Nothing is
// persisted when any requested course id does not resolve.
func (s *MemberService) CreateMember(ctx context.Context, member *models.Member) error {
	if err := s.validateMember(member); err != nil {
		return err
	}

	courses, err := s.resolveCourses(ctx, member.CourseIDs)
	if err != nil {
		return err
	}
	applyEnrollment(member, courses)

	if err := s.members.Create(ctx, member); err != nil {
		if mapped := enrollmentFailure(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("error creating member: %w", err)
	}

	return nil
}

// GetMemberByID retrieves a member by ID
func (s *MemberService) GetMemberByID(ctx context.Context, id int64) (*models.Member, error) {
	member, err := s.members.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrMemberNotFound) {
			return nil, apperrors.NewResourceNotFoundError(fmt.Sprintf("Member not found with id: %d", id))
		}
		return nil, fmt.Errorf("error retrieving member: %w", err)
	}

	return member, nil
}

// GetMembersByType retrieves all members of the given type
func (s *MemberService) GetMembersByType(ctx context.Context, memberType models.MemberType) ([]*models.Member, error) {
	members, err := s.members.GetByType(ctx, memberType)
	if err != nil {
		return nil, fmt.Errorf("error retrieving members: %w", err)
	}

	return members, nil
}

// UpdateMember replaces a member's scalar fields and its entire
// enrollment set, with the same all-or-nothing resolution rule as create
func (s *MemberService) UpdateMember(ctx context.Context, member *models.Member) error {
	if err := s.validateMember(member); err != nil {
		return err
	}

	if _, err := s.GetMemberByID(ctx, member.ID); err != nil {
		return err
	}

	courses, err := s.resolveCourses(ctx, member.CourseIDs)
	if err != nil {
		return err
	}
	applyEnrollment(member, courses)

	if err := s.members.Update(ctx, member); err != nil {
		if errors.Is(err, repositories.ErrMemberNotFound) {
			return apperrors.NewResourceNotFoundError(fmt.Sprintf("Member not found with id: %d", member.ID))
		}
		if mapped := enrollmentFailure(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("error updating member: %w", err)
	}

	return nil
}

// DeleteMember deletes a member and its enrollment links
func (s *MemberService) DeleteMember(ctx context.Context, id int64) error {
	if err := s.members.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrMemberNotFound) {
			return apperrors.NewResourceNotFoundError(fmt.Sprintf("Member not found with id: %d", id))
		}
		return fmt.Errorf("error deleting member: %w", err)
	}

	return nil
}

// CountMembersByType counts members with the given type
func (s *MemberService) CountMembersByType(ctx context.Context, memberType models.MemberType) (int64, error) {
	count, err := s.members.CountByType(ctx, memberType)
	if err != nil {
		return 0, fmt.Errorf("error counting members: %w", err)
	}

	return count, nil
}

// FindMembersByTypeAndCourse retrieves members of the given type
// enrolled in the given course. The course must exist.
func (s *MemberService) FindMembersByTypeAndCourse(ctx context.Context, memberType models.MemberType, courseID int64) ([]*models.Member, error) {
	if err := s.requireCourse(ctx, courseID); err != nil {
		return nil, err
	}

	members, err := s.members.GetByTypeAndCourse(ctx, memberType, courseID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving members by course: %w", err)
	}

	return members, nil
}

// FindMembersByGroup retrieves all members with the given group label.
// Groups are free text, so no existence check applies.
func (s *MemberService) FindMembersByGroup(ctx context.Context, group string) ([]*models.Member, error) {
	members, err := s.members.GetByGroup(ctx, group)
	if err != nil {
		return nil, fmt.Errorf("error retrieving members by group: %w", err)
	}

	return members, nil
}

// FindMembersByTypeAndGroupAndCourse retrieves members matching all
// three predicates. Course existence is not validated here; callers
// that need the check perform it themselves.
func (s *MemberService) FindMembersByTypeAndGroupAndCourse(ctx context.Context, memberType models.MemberType, group string, courseID int64) ([]*models.Member, error) {
	members, err := s.members.GetByTypeAndGroupAndCourse(ctx, memberType, group, courseID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving members by group and course: %w", err)
	}

	return members, nil
}

// FindMembersByTypeAndMinAgeAndCourse retrieves members of the given
// type, aged minAge or older, enrolled in the given course. The course
// must exist; the age boundary is inclusive.
func (s *MemberService) FindMembersByTypeAndMinAgeAndCourse(ctx context.Context, memberType models.MemberType, minAge int, courseID int64) ([]*models.Member, error) {
	if err := s.requireCourse(ctx, courseID); err != nil {
		return nil, err
	}

	members, err := s.members.GetByTypeAndMinAgeAndCourse(ctx, memberType, minAge, courseID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving members by age and course: %w", err)
	}

	return members, nil
}

// BuildGroupCourseReport collects all students of the group enrolled in
// the course followed by all teachers. The course must exist; an empty
// combined result yields an empty report, not an error.
func (s *MemberService) BuildGroupCourseReport(ctx context.Context, group string, courseID int64) ([]*models.Member, error) {
	if err := s.requireCourse(ctx, courseID); err != nil {
		return nil, err
	}

	students, err := s.FindMembersByTypeAndGroupAndCourse(ctx, models.MemberTypeStudent, group, courseID)
	if err != nil {
		return nil, err
	}

	teachers, err := s.FindMembersByTypeAndGroupAndCourse(ctx, models.MemberTypeTeacher, group, courseID)
	if err != nil {
		return nil, err
	}

	combined := make([]*models.Member, 0, len(students)+len(teachers))
	combined = append(combined, students...)
	combined = append(combined, teachers...)
	return combined, nil
}

// requireCourse fails with NotFound when the course id does not exist
func (s *MemberService) requireCourse(ctx context.Context, courseID int64) error {
	exists, err := s.courses.ExistsByID(ctx, courseID)
	if err != nil {
		return fmt.Errorf("error checking course existence: %w", err)
	}

	if !exists {
		return apperrors.NewResourceNotFoundError(fmt.Sprintf("Course not found with id: %d", courseID))
	}

	return nil
}

// enrollmentFailure translates link-level errors raised inside the
// member transaction. A course can disappear between resolution and the
// link insert; that race still reads as a missing course to the caller.
func enrollmentFailure(err error) error {
	switch {
	case errors.Is(err, repositories.ErrCourseNotFound):
		return apperrors.NewResourceNotFoundError("Course not found: a requested course was deleted during enrollment")
	case errors.Is(err, repositories.ErrDuplicateEnrollment):
		return apperrors.NewConflictError("Member is already enrolled in the course")
	}
	return nil
}

// applyEnrollment sets the member's resolved enrollment set
func applyEnrollment(member *models.Member, courses []*models.Course) {
	member.Courses = courses
	member.CourseIDs = make([]int64, 0, len(courses))
	for _, course := range courses {
		member.CourseIDs = append(member.CourseIDs, course.ID)
	}
}

// distinctIDs drops duplicate ids while keeping first-seen order
func distinctIDs(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	distinct := make([]int64, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			distinct = append(distinct, id)
		}
	}
	return distinct
}
