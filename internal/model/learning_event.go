package model

import "time"

// LearningEvent 学习事件宽表在数据库中的存储形式（learning_events 表），字段与 FlatRecord 一一对应
type LearningEvent struct {
	BaseModel
	ChapterID   string  `gorm:"size:64;index" json:"chapterId"`
	ChapterNo   float64 `gorm:"default:0" json:"chapterNo"`
	ChapterName string  `gorm:"size:255" json:"chapterName"`

	UnitID   string  `gorm:"size:64;index" json:"unitId"`
	UnitNo   float64 `gorm:"default:0" json:"unitNo"`
	UnitName string  `gorm:"size:255" json:"unitName"`

	ActivityTypeID    string `gorm:"size:64" json:"activityTypeId"`
	ActivityTypeName  string `gorm:"size:255" json:"activityTypeName"`
	SequenceBuilderID string `gorm:"size:64" json:"sequenceBuilderId"`

	ConceptID         string `gorm:"size:64" json:"conceptId"`
	ConceptName       string `gorm:"size:255" json:"conceptName"`
	ConceptCategory   string `gorm:"size:255" json:"conceptCategory"`
	ParentConceptID   string `gorm:"size:64" json:"parentConceptId"`
	ParentConceptName string `gorm:"size:255" json:"parentConceptName"`

	UserID   string `gorm:"size:64;index" json:"userId"`
	UserName string `gorm:"size:255" json:"userName"`

	UnitCompletion float64 `gorm:"default:0" json:"unitCompletion"`
	UnitAccuracy   float64 `gorm:"default:0" json:"unitAccuracy"`
	UnitTimeSpent  *string `gorm:"size:32" json:"unitTimeSpent"` // "H:M:S"，NULL 表示未记录

	ActivityAccuracy float64 `gorm:"default:0" json:"activityAccuracy"`
	ActivityAttempts float64 `gorm:"default:0" json:"activityAttempts"`
	ConceptAccuracy  float64 `gorm:"default:0" json:"conceptAccuracy"`

	ObservedAt time.Time `gorm:"index" json:"observedAt"`
}

func (LearningEvent) TableName() string {
	return "learning_events"
}

// ToFlatRecord 转换为构建层级所需的宽表行
func (e *LearningEvent) ToFlatRecord() FlatRecord {
	r := FlatRecord{
		ChapterID:         ID(e.ChapterID),
		ChapterNo:         Number(e.ChapterNo),
		ChapterName:       e.ChapterName,
		UnitID:            ID(e.UnitID),
		UnitNo:            Number(e.UnitNo),
		UnitName:          e.UnitName,
		ActivityTypeID:    ID(e.ActivityTypeID),
		ActivityTypeName:  e.ActivityTypeName,
		SequenceBuilderID: ID(e.SequenceBuilderID),
		ConceptID:         ID(e.ConceptID),
		ConceptName:       e.ConceptName,
		ConceptCategory:   e.ConceptCategory,
		ParentConceptID:   ID(e.ParentConceptID),
		ParentConceptName: e.ParentConceptName,
		UserID:            ID(e.UserID),
		UserName:          e.UserName,
		UnitCompletion:    Number(e.UnitCompletion),
		UnitAccuracy:      Number(e.UnitAccuracy),
		ActivityAccuracy:  Number(e.ActivityAccuracy),
		ActivityAttempts:  Number(e.ActivityAttempts),
		ConceptAccuracy:   Number(e.ConceptAccuracy),
	}
	if e.UnitTimeSpent != nil {
		d := ParseDuration(*e.UnitTimeSpent)
		r.UnitTimeSpent = &d
	}
	return r
}

// NewLearningEvent 由宽表行生成数据库记录（导入脚本使用）
func NewLearningEvent(r FlatRecord, observedAt time.Time) *LearningEvent {
	e := &LearningEvent{
		ChapterID:         string(r.ChapterID),
		ChapterNo:         r.ChapterNo.Float(),
		ChapterName:       r.ChapterName,
		UnitID:            string(r.UnitID),
		UnitNo:            r.UnitNo.Float(),
		UnitName:          r.UnitName,
		ActivityTypeID:    string(r.ActivityTypeID),
		ActivityTypeName:  r.ActivityTypeName,
		SequenceBuilderID: string(r.SequenceBuilderID),
		ConceptID:         string(r.ConceptID),
		ConceptName:       r.ConceptName,
		ConceptCategory:   r.ConceptCategory,
		ParentConceptID:   string(r.ParentConceptID),
		ParentConceptName: r.ParentConceptName,
		UserID:            string(r.UserID),
		UserName:          r.UserName,
		UnitCompletion:    r.UnitCompletion.Float(),
		UnitAccuracy:      r.UnitAccuracy.Float(),
		ActivityAccuracy:  r.ActivityAccuracy.Float(),
		ActivityAttempts:  r.ActivityAttempts.Float(),
		ConceptAccuracy:   r.ConceptAccuracy.Float(),
		ObservedAt:        observedAt,
	}
	if r.UnitTimeSpent != nil {
		s := r.UnitTimeSpent.String()
		e.UnitTimeSpent = &s
	}
	return e
}
