package repository

import (
	"context"
	"course_insights_backend/internal/model"
	"fmt"

	"gorm.io/gorm"
)

const eventBatchSize = 500

type EventRepository struct {
	DB *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{DB: db}
}

// Migrate 创建或更新 learning_events 表
func (r *EventRepository) Migrate() error {
	return r.DB.AutoMigrate(&model.LearningEvent{})
}

// FindAll 按写入顺序返回全部学习事件，顺序决定构建时"首次出现"的语义
func (r *EventRepository) FindAll(ctx context.Context) ([]model.LearningEvent, error) {
	var events []model.LearningEvent
	err := r.DB.WithContext(ctx).Order("id ASC").Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("query learning events: %w", err)
	}
	return events, nil
}

func (r *EventRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.LearningEvent{}).Count(&count).Error
	return count, err
}

// CreateBatch 分批写入，保持传入顺序
func (r *EventRepository) CreateBatch(ctx context.Context, events []*model.LearningEvent) error {
	if len(events) == 0 {
		return nil
	}
	return r.DB.WithContext(ctx).CreateInBatches(events, eventBatchSize).Error
}

// Truncate 软删除全部记录，用于整表重新导入
func (r *EventRepository) Truncate(ctx context.Context) error {
	return r.DB.WithContext(ctx).Where("1 = 1").Delete(&model.LearningEvent{}).Error
}
