package model

import "time"

// InsightsReport 导出到对象存储的完整分析报告
type InsightsReport struct {
	SnapshotID            string                  `json:"snapshotId"`
	BuiltAt               time.Time               `json:"builtAt"`
	RecordCount           int                     `json:"recordCount"`
	Course                *Course                 `json:"course"`
	ConceptDifficulty     []ConceptDifficulty     `json:"conceptDifficulty"`
	ActivityEffectiveness []ActivityEffectiveness `json:"activityEffectiveness"`
}

// SnapshotInfo 当前快照的元信息
type SnapshotInfo struct {
	ID          string    `json:"id"`
	BuiltAt     time.Time `json:"builtAt"`
	RecordCount int       `json:"recordCount"`
	Chapters    int       `json:"chapters"`
	Learners    int       `json:"learners"`
}
