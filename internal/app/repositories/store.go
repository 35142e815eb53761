package repositories

import (
	"context"

	"github.com/yusuf/schoolhub/internal/app/models"
)

// CourseStore is the persistence capability required for courses.
// Implemented by CourseRepository (PostgreSQL) and MemoryCourseStore.
type CourseStore interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetByIDs(ctx context.Context, ids []int64) ([]*models.Course, error)
	GetAll(ctx context.Context) ([]*models.Course, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
	CountByType(ctx context.Context, courseType models.CourseType) (int64, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

// MemberStore is the persistence capability required for members and
// their enrollment links. Implemented by MemberRepository (PostgreSQL)
// and MemoryMemberStore.
type MemberStore interface {
	Create(ctx context.Context, member *models.Member) error
	GetByID(ctx context.Context, id int64) (*models.Member, error)
	GetByType(ctx context.Context, memberType models.MemberType) ([]*models.Member, error)
	Update(ctx context.Context, member *models.Member) error
	Delete(ctx context.Context, id int64) error
	CountByType(ctx context.Context, memberType models.MemberType) (int64, error)
	GetByTypeAndCourse(ctx context.Context, memberType models.MemberType, courseID int64) ([]*models.Member, error)
	GetByGroup(ctx context.Context, group string) ([]*models.Member, error)
	GetByTypeAndGroupAndCourse(ctx context.Context, memberType models.MemberType, group string, courseID int64) ([]*models.Member, error)
	GetByTypeAndMinAgeAndCourse(ctx context.Context, memberType models.MemberType, minAge int, courseID int64) ([]*models.Member, error)
}
