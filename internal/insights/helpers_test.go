package insights_test

import "course_insights_backend/internal/model"

func clock(s string) *model.Duration {
	d := model.ParseDuration(s)
	return &d
}

// unitRow 构造一行 章节/单元/学员 级别的记录
func unitRow(chapter, unit, user string, accuracy, completion float64, timeSpent string) model.FlatRecord {
	r := model.FlatRecord{
		ChapterID:      model.ID("ch" + chapter),
		ChapterName:    "Chapter " + chapter,
		UnitID:         model.ID("u" + unit),
		UnitName:       "Unit " + unit,
		UserID:         model.ID(user),
		UserName:       "Learner " + user,
		UnitAccuracy:   model.Number(accuracy),
		UnitCompletion: model.Number(completion),
	}
	if timeSpent != "" {
		r.UnitTimeSpent = clock(timeSpent)
	}
	return r
}

// conceptRow 在 unitRow 的基础上附加活动与概念
func conceptRow(base model.FlatRecord, activity string, activityAccuracy, attempts float64, conceptID, conceptName string, conceptAccuracy float64) model.FlatRecord {
	base.SequenceBuilderID = model.ID("sb-" + activity)
	base.ActivityTypeID = model.ID("type-" + activity)
	base.ActivityTypeName = activity
	base.ActivityAccuracy = model.Number(activityAccuracy)
	base.ActivityAttempts = model.Number(attempts)
	base.ConceptID = model.ID(conceptID)
	base.ConceptName = conceptName
	base.ConceptCategory = "Numbers"
	base.ConceptAccuracy = model.Number(conceptAccuracy)
	return base
}
