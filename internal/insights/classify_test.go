package insights_test

import (
	"course_insights_backend/internal/insights"
	"course_insights_backend/internal/model"
	"course_insights_backend/internal/util"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// activitiesFor 为学员在一个单元内生成 n 个活动，每个活动 attempts 次尝试
func activitiesFor(unit model.FlatRecord, n int, attempts float64, conceptAccuracy float64) []model.FlatRecord {
	out := make([]model.FlatRecord, 0, n)
	for i := 0; i < n; i++ {
		r := conceptRow(unit, fmt.Sprintf("A%02d", i), 50, attempts, fmt.Sprintf("c%d", i), fmt.Sprintf("Concept %02d", i), conceptAccuracy)
		out = append(out, r)
	}
	return out
}

func TestClassifyStudent_PersistenceWithoutMastery(t *testing.T) {
	var records []model.FlatRecord
	records = append(records, activitiesFor(unitRow("1", "1", "s1", 60, 100, "01:00:00"), 10, 16, 80)...)
	records = append(records, activitiesFor(unitRow("1", "2", "s1", 70, 100, "01:00:00"), 10, 16, 80)...)

	course, err := insights.Build(records, insights.DefaultOptions())
	require.NoError(t, err)

	diagnosis, err := insights.ClassifyStudent(course, "s1", insights.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 20, diagnosis.ActivityCount)
	assert.Equal(t, 320.0, diagnosis.TotalAttempts)
	assert.Equal(t, 16.0, diagnosis.AvgAttemptsPerActivity)
	assert.Equal(t, 65.0, diagnosis.AvgAccuracy)
	assert.Equal(t, 2, diagnosis.UnitCount)
	assert.Equal(t, model.PatternPersistenceWithoutMastery, diagnosis.LearningPattern)
	assert.NotEmpty(t, diagnosis.Description)
	assert.Equal(t, "Learner s1", diagnosis.UserName)
	assert.Empty(t, diagnosis.StrugglingConcepts)
}

func TestClassifyStudent_KnowledgeGap(t *testing.T) {
	records := activitiesFor(unitRow("1", "1", "s1", 45, 100, "01:00:00"), 4, 3, 80)

	course, err := insights.Build(records, insights.DefaultOptions())
	require.NoError(t, err)

	diagnosis, err := insights.ClassifyStudent(course, "s1", insights.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, model.PatternKnowledgeGap, diagnosis.LearningPattern)
}

func TestClassifyStudent_RuleOrder(t *testing.T) {
	tests := []struct {
		name     string
		accuracy float64
		attempts float64
		want     model.LearningPattern
	}{
		{"many attempts and low accuracy", 40, 20, model.PatternPersistenceWithoutMastery},
		{"many attempts and good accuracy", 75, 20, model.PatternMethodical},
		{"exactly fifteen attempts", 40, 15, model.PatternKnowledgeGap},
		{"accuracy at the gap threshold", 60, 2, model.PatternMethodical},
		{"few attempts and high accuracy", 95, 1, model.PatternMethodical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := activitiesFor(unitRow("1", "1", "s1", tt.accuracy, 100, "00:30:00"), 2, tt.attempts, 90)
			course, err := insights.Build(records, insights.DefaultOptions())
			require.NoError(t, err)

			diagnosis, err := insights.ClassifyStudent(course, "s1", insights.DefaultOptions())
			require.NoError(t, err)
			assert.Equal(t, tt.want, diagnosis.LearningPattern)
		})
	}
}

func TestClassifyStudent_NoActivities(t *testing.T) {
	course, err := insights.Build([]model.FlatRecord{unitRow("1", "1", "s1", 85, 100, "00:10:00")}, insights.DefaultOptions())
	require.NoError(t, err)

	diagnosis, err := insights.ClassifyStudent(course, "s1", insights.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 0, diagnosis.ActivityCount)
	assert.Equal(t, 0.0, diagnosis.AvgAttemptsPerActivity)
	assert.Equal(t, model.PatternMethodical, diagnosis.LearningPattern)
	assert.NotNil(t, diagnosis.StrugglingConcepts)
}

func TestClassifyStudent_StrugglingConcepts(t *testing.T) {
	unit1 := unitRow("1", "1", "s1", 70, 100, "00:30:00")
	unit2 := unitRow("1", "2", "s1", 70, 100, "00:30:00")
	peer := unitRow("1", "1", "s2", 70, 100, "00:30:00")
	records := []model.FlatRecord{
		conceptRow(unit1, "Quiz", 60, 2, "c1", "Fractions", 30),
		conceptRow(unit1, "Quiz", 60, 2, "c2", "Decimals", 85),
		conceptRow(unit1, "Drill", 60, 2, "c3", "Area", 59.5),
		conceptRow(unit2, "Quiz", 60, 2, "c1", "Fractions", 45),
		conceptRow(unit2, "Quiz", 60, 2, "c4", "Angles", 60),
		conceptRow(peer, "Quiz", 60, 2, "c5", "Volume", 10),
	}

	course, err := insights.Build(records, insights.DefaultOptions())
	require.NoError(t, err)

	diagnosis, err := insights.ClassifyStudent(course, "s1", insights.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, []model.StrugglingConcept{
		{Name: "Area", Accuracy: 59.5},
		{Name: "Fractions", Accuracy: 45},
	}, diagnosis.StrugglingConcepts)
}

func TestClassifyStudent_UnknownStudent(t *testing.T) {
	course, err := insights.Build([]model.FlatRecord{unitRow("1", "1", "s1", 85, 100, "00:10:00")}, insights.DefaultOptions())
	require.NoError(t, err)

	diagnosis, err := insights.ClassifyStudent(course, "nobody", insights.DefaultOptions())
	assert.Nil(t, diagnosis)
	assert.ErrorIs(t, err, util.ErrStudentNotFound)

	diagnosis, err = insights.ClassifyStudent(nil, "s1", insights.DefaultOptions())
	assert.Nil(t, diagnosis)
	assert.ErrorIs(t, err, util.ErrNoData)
}
