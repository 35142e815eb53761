package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yusuf/schoolhub/internal/app/models"
	"github.com/yusuf/schoolhub/internal/db"
	"github.com/yusuf/schoolhub/internal/pkg/dberrors"
)

// Member error types
var (
	ErrMemberNotFound      = errors.New("member not found")
	ErrDuplicateEnrollment = errors.New("enrollment already exists")
)

const memberColumns = `m.id, m.name, m.age, m.member_group, m.type`

// MemberRepository handles database operations for members and their
// enrollment links in member_courses
type MemberRepository struct {
	db *pgxpool.Pool
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db *pgxpool.Pool) *MemberRepository {
	return &MemberRepository{
		db: db,
	}
}

// Create inserts a member and its enrollment links in one transaction
func (r *MemberRepository) Create(ctx context.Context, member *models.Member) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		query := `
			INSERT INTO members (name, age, member_group, type)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`

		err := tx.QueryRow(ctx, query, member.Name, member.Age, member.Group, member.Type).Scan(&member.ID)
		if err != nil {
			return fmt.Errorf("error creating member: %w", err)
		}

		return insertEnrollments(ctx, tx, member.ID, member.CourseIDs)
	})
}

// GetByID retrieves a member by ID including its enrolled course ids
func (r *MemberRepository) GetByID(ctx context.Context, id int64) (*models.Member, error) {
	query := `
		SELECT ` + memberColumns + `
		FROM members m
		WHERE m.id = $1
	`

	var member models.Member
	err := r.db.QueryRow(ctx, query, id).Scan(
		&member.ID,
		&member.Name,
		&member.Age,
		&member.Group,
		&member.Type,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("error retrieving member: %w", err)
	}

	if err := r.loadCourseIDs(ctx, []*models.Member{&member}); err != nil {
		return nil, err
	}

	return &member, nil
}

// GetByType retrieves all members of the given type
func (r *MemberRepository) GetByType(ctx context.Context, memberType models.MemberType) ([]*models.Member, error) {
	query := `
		SELECT ` + memberColumns + `
		FROM members m
		WHERE m.type = $1
		ORDER BY m.id
	`

	return r.queryMembers(ctx, query, memberType)
}

// Update replaces a member's scalar fields and its entire enrollment
// set in one transaction
func (r *MemberRepository) Update(ctx context.Context, member *models.Member) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		query := `
			UPDATE members
			SET name = $1, age = $2, member_group = $3, type = $4
			WHERE id = $5
		`

		cmdTag, err := tx.Exec(ctx, query, member.Name, member.Age, member.Group, member.Type, member.ID)
		if err != nil {
			return fmt.Errorf("error updating member: %w", err)
		}

		if cmdTag.RowsAffected() == 0 {
			return ErrMemberNotFound
		}

		if _, err := tx.Exec(ctx, `DELETE FROM member_courses WHERE member_id = $1`, member.ID); err != nil {
			return fmt.Errorf("error clearing enrollments: %w", err)
		}

		return insertEnrollments(ctx, tx, member.ID, member.CourseIDs)
	})
}

// Delete deletes a member by ID; its enrollment links are dropped by
// the ON DELETE CASCADE on member_courses
func (r *MemberRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM members WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting member: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrMemberNotFound
	}

	return nil
}

// CountByType counts members with the given type
func (r *MemberRepository) CountByType(ctx context.Context, memberType models.MemberType) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM members WHERE type = $1`, memberType).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting members: %w", err)
	}

	return count, nil
}

// GetByTypeAndCourse retrieves members of the given type enrolled in the given course
func (r *MemberRepository) GetByTypeAndCourse(ctx context.Context, memberType models.MemberType, courseID int64) ([]*models.Member, error) {
	query := `
		SELECT ` + memberColumns + `
		FROM members m
		JOIN member_courses mc ON mc.member_id = m.id
		WHERE m.type = $1 AND mc.course_id = $2
		ORDER BY m.id
	`

	return r.queryMembers(ctx, query, memberType, courseID)
}

// GetByGroup retrieves all members of any type with the given group label
func (r *MemberRepository) GetByGroup(ctx context.Context, group string) ([]*models.Member, error) {
	query := `
		SELECT ` + memberColumns + `
		FROM members m
		WHERE m.member_group = $1
		ORDER BY m.id
	`

	return r.queryMembers(ctx, query, group)
}

// GetByTypeAndGroupAndCourse retrieves members matching type, group and course
func (r *MemberRepository) GetByTypeAndGroupAndCourse(ctx context.Context, memberType models.MemberType, group string, courseID int64) ([]*models.Member, error) {
	query := `
		SELECT ` + memberColumns + `
		FROM members m
		JOIN member_courses mc ON mc.member_id = m.id
		WHERE m.type = $1 AND m.member_group = $2 AND mc.course_id = $3
		ORDER BY m.id
	`

	return r.queryMembers(ctx, query, memberType, group, courseID)
}

// GetByTypeAndMinAgeAndCourse retrieves members of the given type, aged
// minAge or older, enrolled in the given course. The boundary is inclusive.
func (r *MemberRepository) GetByTypeAndMinAgeAndCourse(ctx context.Context, memberType models.MemberType, minAge int, courseID int64) ([]*models.Member, error) {
	query := `
		SELECT ` + memberColumns + `
		FROM members m
		JOIN member_courses mc ON mc.member_id = m.id
		WHERE m.type = $1 AND m.age >= $2 AND mc.course_id = $3
		ORDER BY m.id
	`

	return r.queryMembers(ctx, query, memberType, minAge, courseID)
}

// queryMembers runs a member query and loads enrollment ids for the result
func (r *MemberRepository) queryMembers(ctx context.Context, query string, args ...interface{}) ([]*models.Member, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error retrieving members: %w", err)
	}
	defer rows.Close()

	members, err := scanMembers(rows)
	if err != nil {
		return nil, err
	}

	if err := r.loadCourseIDs(ctx, members); err != nil {
		return nil, err
	}

	return members, nil
}

// loadCourseIDs populates CourseIDs for the given members with a single query
func (r *MemberRepository) loadCourseIDs(ctx context.Context, members []*models.Member) error {
	if len(members) == 0 {
		return nil
	}

	byID := make(map[int64]*models.Member, len(members))
	memberIDs := make([]int64, 0, len(members))
	for _, member := range members {
		member.CourseIDs = []int64{}
		byID[member.ID] = member
		memberIDs = append(memberIDs, member.ID)
	}

	rows, err := r.db.Query(ctx,
		`SELECT member_id, course_id FROM member_courses WHERE member_id = ANY($1) ORDER BY course_id`,
		memberIDs)
	if err != nil {
		return fmt.Errorf("error retrieving enrollments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var memberID, courseID int64
		if err := rows.Scan(&memberID, &courseID); err != nil {
			return err
		}
		if member, ok := byID[memberID]; ok {
			member.CourseIDs = append(member.CourseIDs, courseID)
		}
	}

	return rows.Err()
}

// insertEnrollments writes enrollment links for a member inside a
// transaction. The course ids were resolved before the transaction
// started, so a foreign key violation here means a course was deleted
// in between; it rolls the whole operation back as a missing course.
func insertEnrollments(ctx context.Context, tx pgx.Tx, memberID int64, courseIDs []int64) error {
	for _, courseID := range courseIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO member_courses (member_id, course_id) VALUES ($1, $2)`,
			memberID, courseID); err != nil {
			switch {
			case dberrors.IsForeignKeyViolation(err, "member_courses_course_id_fkey"):
				return ErrCourseNotFound
			case dberrors.IsUniqueViolation(err):
				return ErrDuplicateEnrollment
			}
			return fmt.Errorf("error creating enrollment: %w", err)
		}
	}
	return nil
}

// scanMembers collects member rows
func scanMembers(rows pgx.Rows) ([]*models.Member, error) {
	var members []*models.Member
	for rows.Next() {
		var member models.Member
		if err := rows.Scan(
			&member.ID,
			&member.Name,
			&member.Age,
			&member.Group,
			&member.Type,
		); err != nil {
			return nil, err
		}
		members = append(members, &member)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return members, nil
}
