package insights

import (
	"course_insights_backend/internal/model"
	"iter"
)

// Enrollments 遍历课程内所有 user-in-unit 记录（章节、单元顺序）
func Enrollments(course *model.Course) iter.Seq2[*model.Unit, *model.UserInUnit] {
	return func(yield func(*model.Unit, *model.UserInUnit) bool) {
		if course == nil {
			return
		}
		for ci := range course.Chapters {
			units := course.Chapters[ci].Units
			for ui := range units {
				for si := range units[ui].Users {
					if !yield(&units[ui], &units[ui].Users[si]) {
						return
					}
				}
			}
		}
	}
}

// StudentEnrollments 仅遍历指定学员的 user-in-unit 记录
func StudentEnrollments(course *model.Course, studentID model.ID) iter.Seq2[*model.Unit, *model.UserInUnit] {
	return func(yield func(*model.Unit, *model.UserInUnit) bool) {
		for unit, usr := range Enrollments(course) {
			if usr.UserID != studentID {
				continue
			}
			if !yield(unit, usr) {
				return
			}
		}
	}
}

// Performances 展开一组 user-in-unit 记录下的全部活动表现
func Performances(enrollments iter.Seq2[*model.Unit, *model.UserInUnit]) iter.Seq2[*model.UserInUnit, *model.ActivityPerformance] {
	return func(yield func(*model.UserInUnit, *model.ActivityPerformance) bool) {
		for _, usr := range enrollments {
			for i := range usr.Activities {
				if !yield(usr, &usr.Activities[i]) {
					return
				}
			}
		}
	}
}

// Elements 展开分类树中的全部概念元素
func Elements(categories []model.CategoryPerformance) iter.Seq[*model.ElementPerformance] {
	return func(yield func(*model.ElementPerformance) bool) {
		for ci := range categories {
			components := categories[ci].Components
			for pi := range components {
				for ei := range components[pi].Elements {
					if !yield(&components[pi].Elements[ei]) {
						return
					}
				}
			}
		}
	}
}

// ConceptObservations 将活动表现展平为 (活动表现, 概念元素) 序列
func ConceptObservations(perfs iter.Seq2[*model.UserInUnit, *model.ActivityPerformance]) iter.Seq2[*model.ActivityPerformance, *model.ElementPerformance] {
	return func(yield func(*model.ActivityPerformance, *model.ElementPerformance) bool) {
		for _, perf := range perfs {
			for elem := range Elements(perf.PerformanceByCategory) {
				if !yield(perf, elem) {
					return
				}
			}
		}
	}
}
