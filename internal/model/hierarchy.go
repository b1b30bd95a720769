package model

// Course 课程层级结果，由 insights.Build 一次性构建，构建完成后只读
type Course struct {
	Chapters       []Chapter `json:"chapters"`
	NoOfLearners   int       `json:"noOfLearners"`
	AvgAccuracy    float64   `json:"avgAccuracy"`
	AvgCompletion  float64   `json:"avgCompletion"`
	TotalTimeSpent Duration  `json:"totalTimeSpent"`
	AvgUnitTime    Duration  `json:"avgUnitTime"` // 全课程 user-in-unit 平均学习时长，用于判定问题单元
}

// Chapter 章节汇总，平均值基于章节内所有 user-in-unit 记录（不按单元加权）
type Chapter struct {
	ID            ID      `json:"id"`
	No            float64 `json:"no"`
	Name          string  `json:"name"`
	Units         []Unit  `json:"units"`
	NoOfLearners  int     `json:"noOfLearners"`
	AvgAccuracy   float64 `json:"avgAccuracy"`
	AvgCompletion float64 `json:"avgCompletion"`
}

type Unit struct {
	ID            ID           `json:"id"`
	No            float64      `json:"no"`
	Name          string       `json:"name"`
	Users         []UserInUnit `json:"users"`
	Activities    []Activity   `json:"activities"`
	NoOfLearners  int          `json:"noOfLearners"`
	AvgAccuracy   float64      `json:"avgAccuracy"` // 仅统计正确率 > 0 的学员
	AvgCompletion float64      `json:"avgCompletion"`
	AvgTimeSpent  Duration     `json:"avgTimeSpent"`
	IsProblematic bool         `json:"isProblematic"`
}

type UserInUnit struct {
	UserID       ID                    `json:"userId"`
	UserName     string                `json:"userName"`
	Completion   float64               `json:"completion"`
	Accuracy     float64               `json:"accuracy"`
	TimeSpent    Duration              `json:"timeSpent"`
	HasTimeSpent bool                  `json:"-"`
	IsStruggling bool                  `json:"isStruggling"`
	Activities   []ActivityPerformance `json:"activities"`
}

// Activity 单元内活动的全体学员视图
type Activity struct {
	ID                    ID                    `json:"id"`
	TypeID                ID                    `json:"typeId"`
	Name                  string                `json:"name"`
	PerformanceByCategory []CategoryPerformance `json:"performanceByCategory"`
}

// ActivityPerformance 某个学员在某个活动上的表现
type ActivityPerformance struct {
	ActivityID            ID                    `json:"activityId"`
	Name                  string                `json:"name"`
	Accuracy              float64               `json:"accuracy"`
	TotalAttempts         float64               `json:"totalAttempts"`
	PerformanceByCategory []CategoryPerformance `json:"performanceByCategory"`
}

type CategoryPerformance struct {
	Category   string                 `json:"category"`
	Components []ComponentPerformance `json:"components"`
}

type ComponentPerformance struct {
	ID       ID                   `json:"id"`
	Name     string               `json:"name"`
	Elements []ElementPerformance `json:"elements"`
}

type ElementPerformance struct {
	ConceptID ID      `json:"conceptId"`
	Name      string  `json:"name"`
	Accuracy  float64 `json:"accuracy"`
}

// FindChapter 按 ID 查找章节
func (c *Course) FindChapter(id ID) (*Chapter, bool) {
	for i := range c.Chapters {
		if c.Chapters[i].ID == id {
			return &c.Chapters[i], true
		}
	}
	return nil, false
}

// FindUnit 按 ID 查找章节下的单元
func (ch *Chapter) FindUnit(id ID) (*Unit, bool) {
	for i := range ch.Units {
		if ch.Units[i].ID == id {
			return &ch.Units[i], true
		}
	}
	return nil, false
}
