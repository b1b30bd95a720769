package insights

import (
	"course_insights_backend/internal/model"
	"course_insights_backend/internal/util"
)

// finalize 自底向上计算汇总：学员 → 单元 → 章节 → 课程，并把累加器复制为只读输出结构。
// 诊断标记基于未截断的原始值判断，输出值再按 Options 截断。
func finalize(acc *courseAcc, opts Options) *model.Course {
	courseAvgUnitTime := courseAverageUnitTime(acc)

	course := &model.Course{
		Chapters:    make([]model.Chapter, 0, len(acc.chapters)),
		AvgUnitTime: model.Duration(int64(courseAvgUnitTime)),
	}

	learners := make(map[model.ID]struct{})
	var unitAccuracies, completions []float64
	var totalTime int64

	for _, ca := range acc.chapters {
		chapter := model.Chapter{
			ID:    ca.id,
			No:    ca.no,
			Name:  ca.name,
			Units: make([]model.Unit, 0, len(ca.units)),
		}
		chapterLearners := make(map[model.ID]struct{})
		var chapterAccuracies, chapterCompletions []float64

		for _, ua := range ca.units {
			unit, avgAccuracy := finalizeUnit(ua, courseAvgUnitTime, opts)
			chapter.Units = append(chapter.Units, unit)

			if avgAccuracy != 0 {
				unitAccuracies = append(unitAccuracies, avgAccuracy)
			}
			for _, usr := range ua.users {
				learners[usr.id] = struct{}{}
				chapterLearners[usr.id] = struct{}{}
				chapterAccuracies = append(chapterAccuracies, usr.accuracy)
				chapterCompletions = append(chapterCompletions, usr.completion)
				completions = append(completions, usr.completion)
				totalTime += usr.timeSpent
			}
		}

		chapter.NoOfLearners = len(chapterLearners)
		chapter.AvgAccuracy = util.Truncate(util.Average(chapterAccuracies), opts.SummaryPrecision)
		chapter.AvgCompletion = util.Truncate(util.Average(chapterCompletions), opts.SummaryPrecision)
		course.Chapters = append(course.Chapters, chapter)
	}

	course.NoOfLearners = len(learners)
	course.AvgAccuracy = util.Truncate(util.Average(unitAccuracies), opts.Precision)
	course.AvgCompletion = util.Truncate(util.Average(completions), opts.Precision)
	course.TotalTimeSpent = model.Duration(totalTime)
	return course
}

// courseAverageUnitTime 全课程范围内，既有学员 ID 又记录了学习时长的 user-in-unit 的平均时长（秒）
func courseAverageUnitTime(acc *courseAcc) float64 {
	var times []float64
	for _, ch := range acc.chapters {
		for _, u := range ch.units {
			for _, usr := range u.users {
				if usr.hasTime {
					times = append(times, float64(usr.timeSpent))
				}
			}
		}
	}
	return util.Average(times)
}

// finalizeUnit 返回单元结果以及未截断的平均正确率（用于课程级平均）
func finalizeUnit(ua *unitAcc, courseAvgUnitTime float64, opts Options) (model.Unit, float64) {
	var totalTime int64
	var accuracies, completions []float64
	for _, usr := range ua.users {
		totalTime += usr.timeSpent
		completions = append(completions, usr.completion)
		// 正确率为 0（或缺失）的学员不计入单元平均正确率
		if usr.accuracy > 0 {
			accuracies = append(accuracies, usr.accuracy)
		}
	}
	avgTime := util.SafeDiv(float64(totalTime), float64(len(ua.users)))
	avgAccuracy := util.Average(accuracies)

	unit := model.Unit{
		ID:            ua.id,
		No:            ua.no,
		Name:          ua.name,
		Users:         make([]model.UserInUnit, 0, len(ua.users)),
		Activities:    make([]model.Activity, 0, len(ua.activities)),
		NoOfLearners:  len(ua.users),
		AvgAccuracy:   util.Truncate(avgAccuracy, opts.SummaryPrecision),
		AvgCompletion: util.Truncate(util.Average(completions), opts.SummaryPrecision),
		AvgTimeSpent:  model.Duration(int64(avgTime)),
		IsProblematic: avgAccuracy < ProblematicAccuracy && avgTime > courseAvgUnitTime,
	}

	for _, usr := range ua.users {
		unit.Users = append(unit.Users, finalizeUser(usr, avgTime, opts))
	}
	for _, a := range ua.activities {
		unit.Activities = append(unit.Activities, model.Activity{
			ID:                    a.id,
			TypeID:                a.typeID,
			Name:                  a.name,
			PerformanceByCategory: finalizeTree(a.tree, true, opts),
		})
	}
	return unit, avgAccuracy
}

func finalizeUser(usr *userAcc, unitAvgTime float64, opts Options) model.UserInUnit {
	out := model.UserInUnit{
		UserID:       usr.id,
		UserName:     usr.name,
		Completion:   util.Truncate(usr.completion, opts.Precision),
		Accuracy:     util.Truncate(usr.accuracy, opts.Precision),
		TimeSpent:    model.Duration(usr.timeSpent),
		HasTimeSpent: usr.hasTime,
		IsStruggling: usr.accuracy < StrugglingAccuracy && float64(usr.timeSpent) > unitAvgTime,
		Activities:   make([]model.ActivityPerformance, 0, len(usr.perfs)),
	}
	for _, p := range usr.perfs {
		out.Activities = append(out.Activities, model.ActivityPerformance{
			ActivityID:            p.activityID,
			Name:                  p.name,
			Accuracy:              util.Truncate(p.accuracy, opts.Precision),
			TotalAttempts:         p.attempts,
			PerformanceByCategory: finalizeTree(p.tree, false, opts),
		})
	}
	return out
}

// finalizeTree cohort 为 true 时，元素正确率取各学员观测值的平均
func finalizeTree(t *conceptTree, cohort bool, opts Options) []model.CategoryPerformance {
	categories := make([]model.CategoryPerformance, 0, len(t.categories))
	for _, cat := range t.categories {
		cp := model.CategoryPerformance{
			Category:   cat.name,
			Components: make([]model.ComponentPerformance, 0, len(cat.components)),
		}
		for _, comp := range cat.components {
			component := model.ComponentPerformance{
				ID:       comp.id,
				Name:     comp.name,
				Elements: make([]model.ElementPerformance, 0, len(comp.elements)),
			}
			for _, e := range comp.elements {
				accuracy := e.accuracy
				if cohort {
					accuracy = util.Average(e.samples)
				}
				component.Elements = append(component.Elements, model.ElementPerformance{
					ConceptID: e.id,
					Name:      e.name,
					Accuracy:  util.Truncate(accuracy, opts.Precision),
				})
			}
			cp.Components = append(cp.Components, component)
		}
		categories = append(categories, cp)
	}
	return categories
}
