package insights

// 诊断阈值（百分比）
const (
	StrugglingAccuracy  = 50.0
	ProblematicAccuracy = 60.0
	WeakConceptAccuracy = 60.0

	PersistenceAttempts  = 15.0
	PersistenceAccuracy  = 70.0
	KnowledgeGapAccuracy = 60.0

	NeedsReviewAccuracy = 70.0
	NeedsReviewAttempts = 10.0
	ModerateAccuracy    = 80.0

	MinDifficultyAttempts = 1.1
	HighDifficultyIndex   = 600.0
	MediumDifficultyIndex = 300.0

	UncategorizedCategory = "Uncategorized"
)

// Options 控制输出数值的截断位数
type Options struct {
	// Precision 学员、课程、活动、概念层级数值的小数位
	Precision int
	// SummaryPrecision 章节、单元汇总卡片的小数位
	SummaryPrecision int
	// DifficultyPrecision 难度指数的小数位
	DifficultyPrecision int
}

func DefaultOptions() Options {
	return Options{
		Precision:           2,
		SummaryPrecision:    1,
		DifficultyPrecision: 0,
	}
}

func (o Options) normalized() Options {
	o.Precision = max(o.Precision, 0)
	o.SummaryPrecision = max(o.SummaryPrecision, 0)
	o.DifficultyPrecision = max(o.DifficultyPrecision, 0)
	return o
}
