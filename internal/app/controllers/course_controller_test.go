package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yusuf/schoolhub/internal/app/models"
	"github.com/yusuf/schoolhub/internal/app/models/dto"
)

func TestCourseController_Create(t *testing.T) {
	api := newTestAPI()

	rec, env := api.request(t, http.MethodPost, "/api/v1/courses", dto.CreateCourseRequest{
		Name: "Mathematics",
		Type: "MAIN",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Nil(t, env.Error)

	var course dto.CourseResponse
	require.NoError(t, json.Unmarshal(env.Data, &course))
	assert.NotZero(t, course.ID)
	assert.Equal(t, "Mathematics", course.Name)
	assert.Equal(t, "MAIN", course.Type)
}

func TestCourseController_CreateRejectsBadPayload(t *testing.T) {
	api := newTestAPI()

	cases := []struct {
		name string
		body interface{}
	}{
		{"missing name", map[string]interface{}{"type": "MAIN"}},
		{"missing type", map[string]interface{}{"name": "Mathematics"}},
		{"bad type enum", map[string]interface{}{"name": "Mathematics", "type": "OPTIONAL"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, _ := api.request(t, http.MethodPost, "/api/v1/courses", tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestCourseController_GetByID(t *testing.T) {
	api := newTestAPI()
	course := api.seedCourse(t, "Art", models.CourseTypeSecondary)

	rec, env := api.request(t, http.MethodGet, "/api/v1/courses/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.CourseResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, course.ID, got.ID)
	assert.Equal(t, "Art", got.Name)
	assert.Equal(t, "SECONDARY", got.Type)
}

func TestCourseController_GetByIDNotFound(t *testing.T) {
	api := newTestAPI()

	rec, env := api.request(t, http.MethodGet, "/api/v1/courses/42", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, dto.ErrorCodeResourceNotFound, env.Error.Code)
	assert.Contains(t, env.Error.Message, "42")
}

func TestCourseController_GetByIDBadParam(t *testing.T) {
	api := newTestAPI()

	rec, _ := api.request(t, http.MethodGet, "/api/v1/courses/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCourseController_GetAll(t *testing.T) {
	api := newTestAPI()
	api.seedCourse(t, "Mathematics", models.CourseTypeMain)
	api.seedCourse(t, "Art", models.CourseTypeSecondary)

	rec, env := api.request(t, http.MethodGet, "/api/v1/courses", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var courses []dto.CourseResponse
	require.NoError(t, json.Unmarshal(env.Data, &courses))
	require.Len(t, courses, 2)
	assert.Equal(t, "Mathematics", courses[0].Name)
	assert.Equal(t, "Art", courses[1].Name)
}

func TestCourseController_Update(t *testing.T) {
	api := newTestAPI()
	course := api.seedCourse(t, "Mathematics", models.CourseTypeMain)

	rec, env := api.request(t, http.MethodPut, "/api/v1/courses/1", dto.UpdateCourseRequest{
		Name: "Advanced Mathematics",
		Type: "SECONDARY",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.CourseResponse
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, course.ID, got.ID)
	assert.Equal(t, "Advanced Mathematics", got.Name)
	assert.Equal(t, "SECONDARY", got.Type)
}

func TestCourseController_UpdateNotFound(t *testing.T) {
	api := newTestAPI()

	rec, env := api.request(t, http.MethodPut, "/api/v1/courses/99", dto.UpdateCourseRequest{
		Name: "Ghost",
		Type: "MAIN",
	})
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, dto.ErrorCodeResourceNotFound, env.Error.Code)
}

func TestCourseController_Delete(t *testing.T) {
	api := newTestAPI()
	api.seedCourse(t, "Mathematics", models.CourseTypeMain)

	rec, _ := api.request(t, http.MethodDelete, "/api/v1/courses/1", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec, _ = api.request(t, http.MethodGet, "/api/v1/courses/1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = api.request(t, http.MethodDelete, "/api/v1/courses/1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
