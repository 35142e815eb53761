package controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yusuf/schoolhub/internal/app/models"
	"github.com/yusuf/schoolhub/internal/app/models/dto"
)

// seedSchool populates a small fixture: two courses, three members of
// group A1 and one of B1
func seedSchool(t *testing.T, api *testAPI) (math, art *models.Course) {
	t.Helper()
	math = api.seedCourse(t, "Mathematics", models.CourseTypeMain)
	art = api.seedCourse(t, "Art", models.CourseTypeSecondary)

	api.seedMember(t, &models.Member{
		Name: "John Doe", Age: 20, Group: "A1",
		Type: models.MemberTypeStudent, CourseIDs: []int64{math.ID},
	})
	api.seedMember(t, &models.Member{
		Name: "Jane Roe", Age: 22, Group: "A1",
		Type: models.MemberTypeStudent, CourseIDs: []int64{math.ID, art.ID},
	})
	api.seedMember(t, &models.Member{
		Name: "Prof Smith", Age: 45, Group: "A1",
		Type: models.MemberTypeTeacher, CourseIDs: []int64{math.ID},
	})
	api.seedMember(t, &models.Member{
		Name: "Bob Gray", Age: 19, Group: "B1",
		Type: models.MemberTypeStudent, CourseIDs: []int64{art.ID},
	})
	return math, art
}

func TestReportController_MemberCount(t *testing.T) {
	api := newTestAPI()
	seedSchool(t, api)

	rec, env := api.request(t, http.MethodGet, "/api/v1/reports/members/count?type=STUDENT", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var count dto.CountResponse
	require.NoError(t, json.Unmarshal(env.Data, &count))
	assert.Equal(t, int64(3), count.Count)

	rec, env = api.request(t, http.MethodGet, "/api/v1/reports/members/count?type=TEACHER", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(env.Data, &count))
	assert.Equal(t, int64(1), count.Count)

	rec, _ = api.request(t, http.MethodGet, "/api/v1/reports/members/count", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReportController_CourseCount(t *testing.T) {
	api := newTestAPI()
	seedSchool(t, api)

	rec, env := api.request(t, http.MethodGet, "/api/v1/reports/courses/count?type=MAIN", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var count dto.CountResponse
	require.NoError(t, json.Unmarshal(env.Data, &count))
	assert.Equal(t, int64(1), count.Count)

	rec, _ = api.request(t, http.MethodGet, "/api/v1/reports/courses/count?type=BOGUS", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReportController_MembersByCourse(t *testing.T) {
	api := newTestAPI()
	math, _ := seedSchool(t, api)

	path := fmt.Sprintf("/api/v1/reports/courses/members?courseId=%d&type=STUDENT", math.ID)
	rec, env := api.request(t, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var members []dto.MemberResponse
	require.NoError(t, json.Unmarshal(env.Data, &members))
	require.Len(t, members, 2)
	assert.Equal(t, "John Doe", members[0].Name)
	assert.Equal(t, "Jane Roe", members[1].Name)
}

func TestReportController_MembersByCourseUnknownCourse(t *testing.T) {
	api := newTestAPI()
	seedSchool(t, api)

	rec, env := api.request(t, http.MethodGet, "/api/v1/reports/courses/members?courseId=999&type=STUDENT", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, dto.ErrorCodeResourceNotFound, env.Error.Code)
}

func TestReportController_MembersByGroup(t *testing.T) {
	api := newTestAPI()
	seedSchool(t, api)

	rec, env := api.request(t, http.MethodGet, "/api/v1/reports/groups/members?group=A1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var members []dto.MemberResponse
	require.NoError(t, json.Unmarshal(env.Data, &members))
	assert.Len(t, members, 3)

	// unknown group is an empty list, not an error
	rec, env = api.request(t, http.MethodGet, "/api/v1/reports/groups/members?group=Z9", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(env.Data, &members))
	assert.Empty(t, members)

	rec, _ = api.request(t, http.MethodGet, "/api/v1/reports/groups/members", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReportController_GroupCourseReport(t *testing.T) {
	api := newTestAPI()
	math, _ := seedSchool(t, api)

	path := fmt.Sprintf("/api/v1/reports/groups/courses?group=A1&courseId=%d", math.ID)
	rec, env := api.request(t, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var report dto.GroupCourseReportResponse
	require.NoError(t, json.Unmarshal(env.Data, &report))
	assert.Equal(t, "A1", report.Group)
	assert.Equal(t, math.ID, report.CourseID)

	// students first, then teachers
	require.Len(t, report.Members, 3)
	assert.Equal(t, "John Doe", report.Members[0].Name)
	assert.Equal(t, "Jane Roe", report.Members[1].Name)
	assert.Equal(t, "Prof Smith", report.Members[2].Name)
}

func TestReportController_GroupCourseReportEmpty(t *testing.T) {
	api := newTestAPI()
	math, _ := seedSchool(t, api)

	// a group with no enrollments in the course yields an empty report
	path := fmt.Sprintf("/api/v1/reports/groups/courses?group=C7&courseId=%d", math.ID)
	rec, env := api.request(t, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var report dto.GroupCourseReportResponse
	require.NoError(t, json.Unmarshal(env.Data, &report))
	assert.Empty(t, report.Members)
}

func TestReportController_GroupCourseReportUnknownCourse(t *testing.T) {
	api := newTestAPI()
	seedSchool(t, api)

	rec, _ := api.request(t, http.MethodGet, "/api/v1/reports/groups/courses?group=A1&courseId=999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReportController_FilterMembers(t *testing.T) {
	api := newTestAPI()
	math, _ := seedSchool(t, api)

	// minAge is inclusive: 20 keeps the 20-year-old
	path := fmt.Sprintf("/api/v1/reports/members/filter?minAge=20&courseId=%d&type=STUDENT", math.ID)
	rec, env := api.request(t, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var members []dto.MemberResponse
	require.NoError(t, json.Unmarshal(env.Data, &members))
	require.Len(t, members, 2)
	assert.Equal(t, "John Doe", members[0].Name)
	assert.Equal(t, "Jane Roe", members[1].Name)

	path = fmt.Sprintf("/api/v1/reports/members/filter?minAge=21&courseId=%d&type=STUDENT", math.ID)
	rec, env = api.request(t, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(env.Data, &members))
	require.Len(t, members, 1)
	assert.Equal(t, "Jane Roe", members[0].Name)
}

func TestReportController_FilterMembersBadParams(t *testing.T) {
	api := newTestAPI()
	math, _ := seedSchool(t, api)

	rec, _ := api.request(t, http.MethodGet, fmt.Sprintf("/api/v1/reports/members/filter?courseId=%d&type=STUDENT", math.ID), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = api.request(t, http.MethodGet, "/api/v1/reports/members/filter?minAge=20&courseId=abc&type=STUDENT", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, _ = api.request(t, http.MethodGet, fmt.Sprintf("/api/v1/reports/members/filter?minAge=20&courseId=%d", math.ID), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthEndpoint(t *testing.T) {
	api := newTestAPI()

	rec, _ := api.request(t, http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
