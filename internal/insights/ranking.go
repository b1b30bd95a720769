package insights

import (
	"cmp"
	"course_insights_backend/internal/model"
	"course_insights_backend/internal/util"
	"slices"
)

type conceptStats struct {
	id         model.ID
	name       string
	accuracies []float64
	// 每个学员取第一个引用该概念的活动表现的尝试次数（近似值：尝试次数并未按概念记录）
	attemptsByUser map[model.ID]float64
	userOrder      []model.ID
}

// ConceptDifficulty 全体学员范围内按概念 ID 计算难度指数：
// (100 − 平均正确率) × max(平均尝试次数, 1.1)，按指数降序排列。
func ConceptDifficulty(course *model.Course, opts Options) []model.ConceptDifficulty {
	opts = opts.normalized()

	var order []*conceptStats
	byID := make(map[model.ID]*conceptStats)
	for usr, perf := range Performances(Enrollments(course)) {
		for elem := range Elements(perf.PerformanceByCategory) {
			s, ok := byID[elem.ConceptID]
			if !ok {
				s = &conceptStats{
					id:             elem.ConceptID,
					name:           elem.Name,
					attemptsByUser: make(map[model.ID]float64),
				}
				byID[s.id] = s
				order = append(order, s)
			}
			s.accuracies = append(s.accuracies, elem.Accuracy)
			if _, seen := s.attemptsByUser[usr.UserID]; !seen {
				s.attemptsByUser[usr.UserID] = perf.TotalAttempts
				s.userOrder = append(s.userOrder, usr.UserID)
			}
		}
	}

	out := make([]model.ConceptDifficulty, 0, len(order))
	for _, s := range order {
		attempts := make([]float64, 0, len(s.userOrder))
		for _, id := range s.userOrder {
			attempts = append(attempts, s.attemptsByUser[id])
		}
		avgAccuracy := util.Average(s.accuracies)
		avgAttempts := util.Average(attempts)
		index := util.Truncate(DifficultyIndex(avgAccuracy, avgAttempts), opts.DifficultyPrecision)

		out = append(out, model.ConceptDifficulty{
			ConceptID:       s.id,
			Name:            s.name,
			AvgAccuracy:     util.Truncate(avgAccuracy, opts.Precision),
			AvgAttempts:     util.Truncate(avgAttempts, opts.Precision),
			Learners:        len(s.userOrder),
			DifficultyIndex: index,
			Tier:            difficultyTier(index),
		})
	}

	slices.SortStableFunc(out, func(a, b model.ConceptDifficulty) int {
		return cmp.Compare(b.DifficultyIndex, a.DifficultyIndex)
	})
	return out
}

// DifficultyIndex 难度指数，尝试次数下限为 1.1
func DifficultyIndex(avgAccuracy, avgAttempts float64) float64 {
	return (100 - avgAccuracy) * max(avgAttempts, MinDifficultyAttempts)
}

func difficultyTier(index float64) model.DifficultyTier {
	switch {
	case index >= HighDifficultyIndex:
		return model.TierHigh
	case index >= MediumDifficultyIndex:
		return model.TierMedium
	default:
		return model.TierLow
	}
}

type activityStats struct {
	name       string
	accuracies []float64
	attempts   []float64
	learners   map[model.ID]struct{}
}

// ActivityEffectiveness 按活动名称汇总全体学员的表现并评级，保持活动首次出现顺序
func ActivityEffectiveness(course *model.Course, opts Options) []model.ActivityEffectiveness {
	opts = opts.normalized()

	var order []*activityStats
	byName := make(map[string]*activityStats)
	for usr, perf := range Performances(Enrollments(course)) {
		s, ok := byName[perf.Name]
		if !ok {
			s = &activityStats{name: perf.Name, learners: make(map[model.ID]struct{})}
			byName[s.name] = s
			order = append(order, s)
		}
		s.accuracies = append(s.accuracies, perf.Accuracy)
		s.attempts = append(s.attempts, perf.TotalAttempts)
		s.learners[usr.UserID] = struct{}{}
	}

	out := make([]model.ActivityEffectiveness, 0, len(order))
	for _, s := range order {
		avgAccuracy := util.Average(s.accuracies)
		avgAttempts := util.Average(s.attempts)
		out = append(out, model.ActivityEffectiveness{
			Name:        s.name,
			AvgAccuracy: util.Truncate(avgAccuracy, opts.Precision),
			AvgAttempts: util.Truncate(avgAttempts, opts.Precision),
			Learners:    len(s.learners),
			Rating:      rateActivity(avgAccuracy, avgAttempts),
		})
	}
	return out
}

func rateActivity(avgAccuracy, avgAttempts float64) model.EffectivenessRating {
	switch {
	case avgAccuracy < NeedsReviewAccuracy && avgAttempts > NeedsReviewAttempts:
		return model.RatingNeedsReview
	case avgAccuracy < ModerateAccuracy:
		return model.RatingModerate
	default:
		return model.RatingEffective
	}
}
