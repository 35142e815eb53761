package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yusuf/schoolhub/internal/app/models"
)

// Course error types
var (
	ErrCourseNotFound = errors.New("course not found")
)

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

// Create creates a new course
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (name, type)
		VALUES ($1, $2)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, course.Name, course.Type).Scan(&course.ID)
	if err != nil {
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `
		SELECT id, name, type
		FROM courses
		WHERE id = $1
	`

	var course models.Course
	err := r.db.QueryRow(ctx, query, id).Scan(
		&course.ID,
		&course.Name,
		&course.Type,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return &course, nil
}

// GetByIDs retrieves all courses matching the given ids in a single query
func (r *CourseRepository) GetByIDs(ctx context.Context, ids []int64) ([]*models.Course, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `
		SELECT id, name, type
		FROM courses
		WHERE id = ANY($1)
	`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses by ids: %w", err)
	}
	defer rows.Close()

	return scanCourses(rows)
}

// GetAll retrieves all courses in insertion order
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	query := `
		SELECT id, name, type
		FROM courses
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	defer rows.Close()

	return scanCourses(rows)
}

// Update updates an existing course, replacing name and type.
// Enrollment links are never touched here.
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	query := `
		UPDATE courses
		SET name = $1, type = $2
		WHERE id = $3
	`

	cmdTag, err := r.db.Exec(ctx, query, course.Name, course.Type, course.ID)
	if err != nil {
		return fmt.Errorf("error updating course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrCourseNotFound
	}

	return nil
}

// Delete deletes a course by ID. Enrollment links referencing the
// course are dropped by the ON DELETE CASCADE on member_courses.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM courses WHERE id = $1`

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrCourseNotFound
	}

	return nil
}

// CountByType counts courses with the given type
func (r *CourseRepository) CountByType(ctx context.Context, courseType models.CourseType) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM courses WHERE type = $1`, courseType).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting courses: %w", err)
	}

	return count, nil
}

// ExistsByID checks if a course exists by ID
func (r *CourseRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM courses WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking course existence: %w", err)
	}

	return exists, nil
}

// scanCourses collects course rows
func scanCourses(rows pgx.Rows) ([]*models.Course, error) {
	var courses []*models.Course
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(
			&course.ID,
			&course.Name,
			&course.Type,
		); err != nil {
			return nil, err
		}
		courses = append(courses, &course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}
