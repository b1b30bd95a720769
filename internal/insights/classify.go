package insights

import (
	"cmp"
	"course_insights_backend/internal/model"
	"course_insights_backend/internal/util"
	"iter"
	"slices"
)

// studentProfile 学习模式判定所需的学员画像
type studentProfile struct {
	avgAccuracy float64
	avgAttempts float64
}

// patternRule 学习模式规则，按顺序匹配，第一个命中的规则生效
type patternRule struct {
	pattern     model.LearningPattern
	description string
	match       func(p studentProfile) bool
}

var patternRules = []patternRule{
	{
		pattern:     model.PatternPersistenceWithoutMastery,
		description: "High number of attempts per activity without reaching solid accuracy.",
		match: func(p studentProfile) bool {
			return p.avgAttempts > PersistenceAttempts && p.avgAccuracy < PersistenceAccuracy
		},
	},
	{
		pattern:     model.PatternKnowledgeGap,
		description: "Low accuracy across units points to missing prerequisite knowledge.",
		match: func(p studentProfile) bool {
			return p.avgAccuracy < KnowledgeGapAccuracy
		},
	},
	{
		pattern:     model.PatternMethodical,
		description: "Steady pace with consistent accuracy.",
		match: func(studentProfile) bool {
			return true
		},
	},
}

func classifyPattern(p studentProfile) patternRule {
	for _, rule := range patternRules {
		if rule.match(p) {
			return rule
		}
	}
	return patternRules[len(patternRules)-1]
}

// ClassifyStudent 在已构建的层级上按需诊断单个学员：
// 遍历其在所有章节、单元下的活动表现，得出学习模式与薄弱概念。
func ClassifyStudent(course *model.Course, studentID model.ID, opts Options) (*model.StudentDiagnosis, error) {
	if course == nil {
		return nil, util.ErrNoData
	}
	opts = opts.normalized()

	diagnosis := &model.StudentDiagnosis{UserID: studentID}
	var unitAccuracies []float64
	for _, usr := range StudentEnrollments(course, studentID) {
		if diagnosis.UserName == "" {
			diagnosis.UserName = usr.UserName
		}
		unitAccuracies = append(unitAccuracies, usr.Accuracy)
		for i := range usr.Activities {
			diagnosis.TotalAttempts += usr.Activities[i].TotalAttempts
			diagnosis.ActivityCount++
		}
	}
	if len(unitAccuracies) == 0 {
		return nil, util.ErrStudentNotFound
	}
	diagnosis.UnitCount = len(unitAccuracies)

	profile := studentProfile{
		avgAccuracy: util.Average(unitAccuracies),
		avgAttempts: diagnosis.TotalAttempts / float64(max(diagnosis.ActivityCount, 1)),
	}
	rule := classifyPattern(profile)

	diagnosis.LearningPattern = rule.pattern
	diagnosis.Description = rule.description
	diagnosis.AvgAccuracy = util.Truncate(profile.avgAccuracy, opts.Precision)
	diagnosis.AvgAttemptsPerActivity = util.Truncate(profile.avgAttempts, opts.Precision)
	diagnosis.StrugglingConcepts = strugglingConcepts(
		ConceptObservations(Performances(StudentEnrollments(course, studentID))),
	)
	return diagnosis, nil
}

// strugglingConcepts 正确率低于阈值的概念，按名称去重（后出现的覆盖先出现的），结果按名称排序
func strugglingConcepts(observations iter.Seq2[*model.ActivityPerformance, *model.ElementPerformance]) []model.StrugglingConcept {
	byName := make(map[string]float64)
	for _, elem := range observations {
		if elem.Accuracy < WeakConceptAccuracy {
			byName[elem.Name] = elem.Accuracy
		}
	}

	out := make([]model.StrugglingConcept, 0, len(byName))
	for name, accuracy := range byName {
		out = append(out, model.StrugglingConcept{Name: name, Accuracy: accuracy})
	}
	slices.SortFunc(out, func(a, b model.StrugglingConcept) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return out
}
