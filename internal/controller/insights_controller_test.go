package controller

import (
	"context"
	"course_insights_backend/internal/config"
	"course_insights_backend/internal/insights"
	"course_insights_backend/internal/middleware"
	"course_insights_backend/internal/model"
	"course_insights_backend/internal/service"
	"course_insights_backend/internal/util"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "controller-test-secret-controller-test"

type staticSource struct {
	records []model.FlatRecord
}

func (s *staticSource) Name() string { return "static" }

func (s *staticSource) Fetch(context.Context) ([]model.FlatRecord, error) {
	return s.records, nil
}

func fixtureRecords() []model.FlatRecord {
	slow := model.ParseDuration("02:00:00")
	fast := model.ParseDuration("00:20:00")
	return []model.FlatRecord{
		{
			ChapterID: "ch1", ChapterNo: 1, ChapterName: "Numbers", UnitID: "u1", UnitNo: 1, UnitName: "Counting",
			UserID: "s1", UserName: "Ana", UnitAccuracy: 30, UnitCompletion: 50, UnitTimeSpent: &slow,
			SequenceBuilderID: "sb1", ActivityTypeName: "Quiz", ActivityAccuracy: 30, ActivityAttempts: 5,
			ConceptID: "c1", ConceptName: "Place value", ConceptCategory: "Numbers", ConceptAccuracy: 40,
		},
		{
			ChapterID: "ch1", ChapterNo: 1, ChapterName: "Numbers", UnitID: "u1", UnitNo: 1, UnitName: "Counting",
			UserID: "s2", UserName: "Ben", UnitAccuracy: 90, UnitCompletion: 100, UnitTimeSpent: &fast,
			SequenceBuilderID: "sb1", ActivityTypeName: "Quiz", ActivityAccuracy: 90, ActivityAttempts: 5,
			ConceptID: "c1", ConceptName: "Place value", ConceptCategory: "Numbers", ConceptAccuracy: 40,
		},
	}
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupRouter(t *testing.T, records []model.FlatRecord, build bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	storage := &service.StorageService{Provider: &service.LocalStorageProvider{
		Config: &config.StorageConfig{LocalPath: t.TempDir()},
	}}
	svc := service.NewInsightsService(&staticSource{records: records}, nil, storage, insights.DefaultOptions())
	if build {
		_, err := svc.Refresh(context.Background(), true)
		require.NoError(t, err)
	}

	ctrl := NewInsightsController(svc)
	health := NewHealthController(nil, svc)

	r := gin.New()
	r.GET("/api/health", health.HealthCheck)
	api := r.Group("/api/insights", middleware.AuthMiddleware(testSecret))
	{
		api.GET("/course", ctrl.GetCourse)
		api.GET("/chapters/:chapterId", ctrl.GetChapter)
		api.GET("/chapters/:chapterId/units/:unitId", ctrl.GetUnit)
		api.GET("/students/:userId/diagnosis", ctrl.GetStudentDiagnosis)
		api.GET("/concepts/difficulty", ctrl.GetConceptDifficulty)
		api.GET("/activities/effectiveness", ctrl.GetActivityEffectiveness)

		staff := api.Group("", middleware.RoleMiddleware(model.Teacher, model.Admin))
		staff.POST("/refresh", ctrl.Refresh)
		staff.POST("/export", ctrl.Export)
	}
	return r
}

func request(t *testing.T, r http.Handler, method, path string, role model.UserRole, userID string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if role != "" {
		tok, err := util.GenerateJWT(userID, string(role), testSecret, time.Hour)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestInsightsController_Course(t *testing.T) {
	r := setupRouter(t, fixtureRecords(), true)

	code, body := request(t, r, http.MethodGet, "/api/insights/course", model.Student, "s1")
	require.Equal(t, http.StatusOK, code)

	var course model.Course
	require.NoError(t, json.Unmarshal(body.Data, &course))
	assert.Equal(t, 2, course.NoOfLearners)
	require.Len(t, course.Chapters, 1)
	assert.Equal(t, "Numbers", course.Chapters[0].Name)

	code, _ = request(t, r, http.MethodGet, "/api/insights/course", "", "")
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestInsightsController_NoSnapshot(t *testing.T) {
	r := setupRouter(t, nil, false)

	code, body := request(t, r, http.MethodGet, "/api/insights/course", model.Teacher, "t1")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, util.ErrNoData.Error(), body.Message)

	code, body = request(t, r, http.MethodPost, "/api/insights/refresh", model.Teacher, "t1")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, util.ErrNoData.Error(), body.Message)
}

func TestInsightsController_UnitFlags(t *testing.T) {
	r := setupRouter(t, fixtureRecords(), true)

	code, body := request(t, r, http.MethodGet, "/api/insights/chapters/ch1/units/u1", model.Teacher, "t1")
	require.Equal(t, http.StatusOK, code)

	var unit struct {
		AvgTimeSpent string `json:"avgTimeSpent"`
		Users        []struct {
			UserID       string `json:"userId"`
			IsStruggling bool   `json:"isStruggling"`
			TimeSpent    string `json:"timeSpent"`
		} `json:"users"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &unit))
	assert.Equal(t, "01:10:00", unit.AvgTimeSpent)
	require.Len(t, unit.Users, 2)
	assert.True(t, unit.Users[0].IsStruggling)
	assert.Equal(t, "02:00:00", unit.Users[0].TimeSpent)
	assert.False(t, unit.Users[1].IsStruggling)

	code, body = request(t, r, http.MethodGet, "/api/insights/chapters/ch1/units/nope", model.Teacher, "t1")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, util.ErrUnitNotFound.Error(), body.Message)

	code, _ = request(t, r, http.MethodGet, "/api/insights/chapters/nope", model.Teacher, "t1")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestInsightsController_Diagnosis(t *testing.T) {
	r := setupRouter(t, fixtureRecords(), true)

	code, body := request(t, r, http.MethodGet, "/api/insights/students/s1/diagnosis", model.Student, "s1")
	require.Equal(t, http.StatusOK, code)
	var diagnosis model.StudentDiagnosis
	require.NoError(t, json.Unmarshal(body.Data, &diagnosis))
	assert.Equal(t, model.PatternKnowledgeGap, diagnosis.LearningPattern)
	assert.Equal(t, []model.StrugglingConcept{{Name: "Place value", Accuracy: 40}}, diagnosis.StrugglingConcepts)

	code, _ = request(t, r, http.MethodGet, "/api/insights/students/s2/diagnosis", model.Student, "s1")
	assert.Equal(t, http.StatusForbidden, code)

	code, _ = request(t, r, http.MethodGet, "/api/insights/students/s2/diagnosis", model.Teacher, "t1")
	assert.Equal(t, http.StatusOK, code)

	code, body = request(t, r, http.MethodGet, "/api/insights/students/ghost/diagnosis", model.Admin, "a1")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, util.ErrStudentNotFound.Error(), body.Message)
}

func TestInsightsController_Rankings(t *testing.T) {
	r := setupRouter(t, fixtureRecords(), true)

	code, body := request(t, r, http.MethodGet, "/api/insights/concepts/difficulty?limit=5", model.Teacher, "t1")
	require.Equal(t, http.StatusOK, code)
	var ranked []model.ConceptDifficulty
	require.NoError(t, json.Unmarshal(body.Data, &ranked))
	require.Len(t, ranked, 1)
	assert.Equal(t, 300.0, ranked[0].DifficultyIndex)
	assert.Equal(t, model.TierMedium, ranked[0].Tier)

	code, body = request(t, r, http.MethodGet, "/api/insights/activities/effectiveness", model.Teacher, "t1")
	require.Equal(t, http.StatusOK, code)
	var rated []model.ActivityEffectiveness
	require.NoError(t, json.Unmarshal(body.Data, &rated))
	require.Len(t, rated, 1)
	assert.Equal(t, model.RatingModerate, rated[0].Rating)
}

func TestInsightsController_StaffOnlyActions(t *testing.T) {
	r := setupRouter(t, fixtureRecords(), true)

	code, _ := request(t, r, http.MethodPost, "/api/insights/refresh?force=true", model.Student, "s1")
	assert.Equal(t, http.StatusForbidden, code)

	code, body := request(t, r, http.MethodPost, "/api/insights/refresh?force=true", model.Teacher, "t1")
	require.Equal(t, http.StatusOK, code)
	var info model.SnapshotInfo
	require.NoError(t, json.Unmarshal(body.Data, &info))
	assert.Equal(t, 2, info.RecordCount)
	assert.Equal(t, 2, info.Learners)

	code, body = request(t, r, http.MethodPost, "/api/insights/export", model.Admin, "a1")
	require.Equal(t, http.StatusOK, code)
	var exported struct {
		URL string `json:"url"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &exported))
	assert.Contains(t, exported.URL, "/uploads/reports/")
}

func TestHealthController(t *testing.T) {
	r := setupRouter(t, fixtureRecords(), false)

	code, body := request(t, r, http.MethodGet, "/api/health", "", "")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(body.Data), `"ready":false`)

	r = setupRouter(t, fixtureRecords(), true)
	_, body = request(t, r, http.MethodGet, "/api/health", "", "")
	assert.Contains(t, string(body.Data), `"ready":true`)
}
