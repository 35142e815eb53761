package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/yusuf/schoolhub/internal/app/models"
	appRepos "github.com/yusuf/schoolhub/internal/app/repositories"
	appServices "github.com/yusuf/schoolhub/internal/app/services"
)

// CreateDemoData inserts a small set of demo courses and members for
// local development. It is a no-op when any course already exists.
func CreateDemoData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	repos := appRepos.NewRepositories(dbPool)
	courseService := appServices.NewCourseService(repos.CourseRepository)
	memberService := appServices.NewMemberService(repos.MemberRepository, repos.CourseRepository)

	existing, err := courseService.GetAllCourses(ctx)
	if err != nil {
		return fmt.Errorf("failed to check existing courses: %w", err)
	}
	if len(existing) > 0 {
		lgr.Debug().Msg("Courses already present, skipping demo data")
		return nil
	}

	lgr.Info().Msg("Creating demo data...")

	math := &appModels.Course{Name: "Mathematics", Type: appModels.CourseTypeMain}
	if err := courseService.CreateCourse(ctx, math); err != nil {
		return fmt.Errorf("failed to create demo course: %w", err)
	}

	art := &appModels.Course{Name: "Art", Type: appModels.CourseTypeSecondary}
	if err := courseService.CreateCourse(ctx, art); err != nil {
		return fmt.Errorf("failed to create demo course: %w", err)
	}

	members := []*appModels.Member{
		{Name: "John Doe", Age: 20, Group: "A1", Type: appModels.MemberTypeStudent, CourseIDs: []int64{math.ID, art.ID}},
		{Name: "Jane Roe", Age: 22, Group: "A1", Type: appModels.MemberTypeStudent, CourseIDs: []int64{math.ID}},
		{Name: "Prof Smith", Age: 45, Group: "A1", Type: appModels.MemberTypeTeacher, CourseIDs: []int64{math.ID}},
	}
	for _, member := range members {
		if err := memberService.CreateMember(ctx, member); err != nil {
			return fmt.Errorf("failed to create demo member: %w", err)
		}
	}

	lgr.Info().Msg("Demo data created")
	return nil
}
