package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/yusuf/schoolhub/internal/app/controllers"
	"github.com/yusuf/schoolhub/internal/app/models"
	"github.com/yusuf/schoolhub/internal/app/models/dto"
	"github.com/yusuf/schoolhub/internal/app/repositories"
	"github.com/yusuf/schoolhub/internal/app/routes"
	"github.com/yusuf/schoolhub/internal/app/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testAPI struct {
	router    *gin.Engine
	courseSvc *services.CourseService
	memberSvc *services.MemberService
}

// newTestAPI wires the full controller stack against in-memory stores
func newTestAPI() *testAPI {
	members := repositories.NewMemoryMemberStore()
	courses := repositories.NewMemoryCourseStore(members)

	courseSvc := services.NewCourseService(courses)
	memberSvc := services.NewMemberService(members, courses)

	router := gin.New()
	routes.SetupRouter(
		router,
		controllers.NewCourseController(courseSvc),
		controllers.NewMemberController(memberSvc),
		controllers.NewReportController(memberSvc, courseSvc),
	)

	return &testAPI{
		router:    router,
		courseSvc: courseSvc,
		memberSvc: memberSvc,
	}
}

// envelope mirrors the response body shape for assertions; Data stays
// raw so each test can decode it into the expected payload type
type envelope struct {
	Data  json.RawMessage  `json:"data"`
	Error *dto.ErrorDetail `json:"error"`
}

func (a *testAPI) request(t *testing.T, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func (a *testAPI) seedCourse(t *testing.T, name string, courseType models.CourseType) *models.Course {
	t.Helper()
	course := &models.Course{Name: name, Type: courseType}
	require.NoError(t, a.courseSvc.CreateCourse(context.Background(), course))
	return course
}

func (a *testAPI) seedMember(t *testing.T, member *models.Member) *models.Member {
	t.Helper()
	require.NoError(t, a.memberSvc.CreateMember(context.Background(), member))
	return member
}

func intPtr(v int) *int { return &v }
