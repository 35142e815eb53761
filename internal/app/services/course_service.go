package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yusuf/schoolhub/internal/app/models"
	"github.com/yusuf/schoolhub/internal/app/repositories"
	"github.com/yusuf/schoolhub/internal/pkg/apperrors"
)

// CourseService handles course-related operations
type CourseService struct {
	courses repositories.CourseStore
}

// NewCourseService creates a new course service instance
func NewCourseService(courses repositories.CourseStore) *CourseService {
	return &CourseService{
		courses: courses,
	}
}

// validateCourse validates course data before database operations
func (s *CourseService) validateCourse(course *models.Course) error {
	if course == nil {
		return apperrors.NewValidationError("course is nil")
	}

	if strings.TrimSpace(course.Name) == "" {
		return apperrors.NewValidationError("course name cannot be blank")
	}

	if !course.Type.IsValid() {
		return apperrors.NewValidationError(fmt.Sprintf("invalid course type: %s", course.Type))
	}

	return nil
}

// CreateCourse creates a new course and assigns its identity
func (s *CourseService) CreateCourse(ctx context.Context, course *models.Course) error {
	if err := s.validateCourse(course); err != nil {
		return err
	}

	if err := s.courses.Create(ctx, course); err != nil {
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetCourseByID retrieves a course by ID
func (s *CourseService) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	course, err := s.courses.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCourseNotFound) {
			return nil, apperrors.NewResourceNotFoundError(fmt.Sprintf("Course not found with id: %d", id))
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return course, nil
}

// GetAllCourses retrieves all courses
func (s *CourseService) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	courses, err := s.courses.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}

	return courses, nil
}

// UpdateCourse replaces an existing course's name and type
func (s *CourseService) UpdateCourse(ctx context.Context, course *models.Course) error {
	if err := s.validateCourse(course); err != nil {
		return err
	}

	if err := s.courses.Update(ctx, course); err != nil {
		if errors.Is(err, repositories.ErrCourseNotFound) {
			return apperrors.NewResourceNotFoundError(fmt.Sprintf("Course not found with id: %d", course.ID))
		}
		return fmt.Errorf("error updating course: %w", err)
	}

	return nil
}

// DeleteCourse deletes a course by ID. Members still enrolled keep
// their other enrollments; the links to this course are dropped.
func (s *CourseService) DeleteCourse(ctx context.Context, id int64) error {
	if err := s.courses.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrCourseNotFound) {
			return apperrors.NewResourceNotFoundError(fmt.Sprintf("Course not found with id: %d", id))
		}
		return fmt.Errorf("error deleting course: %w", err)
	}

	return nil
}

// CountCoursesByType counts courses with the given type
func (s *CourseService) CountCoursesByType(ctx context.Context, courseType models.CourseType) (int64, error) {
	count, err := s.courses.CountByType(ctx, courseType)
	if err != nil {
		return 0, fmt.Errorf("error counting courses: %w", err)
	}

	return count, nil
}
