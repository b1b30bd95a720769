package model

// LearningPattern 学员学习模式诊断结果
type LearningPattern string

const (
	PatternPersistenceWithoutMastery LearningPattern = "Persistence without Mastery"
	PatternKnowledgeGap              LearningPattern = "Knowledge Gap"
	PatternMethodical                LearningPattern = "Methodical"
)

type StudentDiagnosis struct {
	UserID                 ID                  `json:"userId"`
	UserName               string              `json:"userName"`
	LearningPattern        LearningPattern     `json:"learningPattern"`
	Description            string              `json:"description"`
	AvgAccuracy            float64             `json:"avgAccuracy"`
	AvgAttemptsPerActivity float64             `json:"avgAttemptsPerActivity"`
	TotalAttempts          float64             `json:"totalAttempts"`
	ActivityCount          int                 `json:"activityCount"`
	UnitCount              int                 `json:"unitCount"`
	StrugglingConcepts     []StrugglingConcept `json:"strugglingConcepts"`
}

type StrugglingConcept struct {
	Name     string  `json:"name"`
	Accuracy float64 `json:"accuracy"`
}

// DifficultyTier 概念难度分档
type DifficultyTier string

const (
	TierHigh   DifficultyTier = "High"
	TierMedium DifficultyTier = "Medium"
	TierLow    DifficultyTier = "Low"
)

type ConceptDifficulty struct {
	ConceptID       ID             `json:"conceptId"`
	Name            string         `json:"name"`
	AvgAccuracy     float64        `json:"avgAccuracy"`
	AvgAttempts     float64        `json:"avgAttempts"`
	Learners        int            `json:"learners"`
	DifficultyIndex float64        `json:"difficultyIndex"`
	Tier            DifficultyTier `json:"tier"`
}

// EffectivenessRating 活动效果评级
type EffectivenessRating string

const (
	RatingNeedsReview EffectivenessRating = "Needs Review"
	RatingModerate    EffectivenessRating = "Moderate"
	RatingEffective   EffectivenessRating = "Effective"
)

type ActivityEffectiveness struct {
	Name        string              `json:"name"`
	AvgAccuracy float64             `json:"avgAccuracy"`
	AvgAttempts float64             `json:"avgAttempts"`
	Learners    int                 `json:"learners"`
	Rating      EffectivenessRating `json:"rating"`
}
