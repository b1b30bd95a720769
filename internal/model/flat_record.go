package model

// FlatRecord 学习事件宽表中的一行。字段稀疏：某一粒度的 ID 缺失即表示该行不包含这一层级的事件。
type FlatRecord struct {
	ChapterID   ID     `json:"chapterId"`
	ChapterNo   Number `json:"chapterNo"`
	ChapterName string `json:"chapterName"`

	UnitID   ID     `json:"unitId"`
	UnitNo   Number `json:"unitNo"`
	UnitName string `json:"unitName"`

	ActivityTypeID    ID     `json:"activityTypeId"`
	ActivityTypeName  string `json:"activityTypeName"`
	SequenceBuilderID ID     `json:"sequenceBuilderId"`

	ConceptID         ID     `json:"conceptId"`
	ConceptName       string `json:"conceptName"`
	ConceptCategory   string `json:"conceptCategory"`
	ParentConceptID   ID     `json:"parentConceptId"`
	ParentConceptName string `json:"parentConceptName"`

	UserID   ID     `json:"userId"`
	UserName string `json:"userName"`

	UnitCompletion Number    `json:"unitCompletion"`
	UnitAccuracy   Number    `json:"unitAccuracy"`
	UnitTimeSpent  *Duration `json:"unitTimeSpent"`

	ActivityAccuracy Number `json:"activityAccuracy"`
	ActivityAttempts Number `json:"activityAttempts"`

	ConceptAccuracy Number `json:"conceptAccuracy"`
}

// ActivityKey 活动实例标识：优先使用 sequenceBuilderId，缺失时退回 activityTypeId
func (r *FlatRecord) ActivityKey() ID {
	if !r.SequenceBuilderID.Empty() {
		return r.SequenceBuilderID
	}
	return r.ActivityTypeID
}
