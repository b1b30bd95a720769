package service

import (
	"bytes"
	"context"
	"course_insights_backend/internal/insights"
	"course_insights_backend/internal/model"
	"course_insights_backend/internal/repository"
	"course_insights_backend/internal/util"
	"course_insights_backend/pkg/logger"
	"course_insights_backend/pkg/monitoring"
	"course_insights_backend/pkg/tracing"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Snapshot 一次构建的结果。Course 构建后只读；诊断与排行按需计算并缓存在快照内，重建时随快照一起丢弃
type Snapshot struct {
	ID          string
	BuiltAt     time.Time
	RecordCount int
	Source      string
	Course      *model.Course

	seq        uint64
	opts       insights.Options
	diagnoses  sync.Map // model.ID -> *model.StudentDiagnosis
	difficulty func() []model.ConceptDifficulty
	activities func() []model.ActivityEffectiveness
}

func newSnapshot(course *model.Course, recordCount int, source string, opts insights.Options) *Snapshot {
	snap := &Snapshot{
		ID:          uuid.New().String(),
		BuiltAt:     time.Now(),
		RecordCount: recordCount,
		Source:      source,
		Course:      course,
		opts:        opts,
	}
	snap.difficulty = sync.OnceValue(func() []model.ConceptDifficulty {
		return insights.ConceptDifficulty(course, opts)
	})
	snap.activities = sync.OnceValue(func() []model.ActivityEffectiveness {
		return insights.ActivityEffectiveness(course, opts)
	})
	return snap
}

func (s *Snapshot) diagnose(studentID model.ID) (*model.StudentDiagnosis, error) {
	if cached, ok := s.diagnoses.Load(studentID); ok {
		return cached.(*model.StudentDiagnosis), nil
	}
	diagnosis, err := insights.ClassifyStudent(s.Course, studentID, s.opts)
	if err != nil {
		return nil, err
	}
	actual, _ := s.diagnoses.LoadOrStore(studentID, diagnosis)
	return actual.(*model.StudentDiagnosis), nil
}

func (s *Snapshot) Info() model.SnapshotInfo {
	return model.SnapshotInfo{
		ID:          s.ID,
		BuiltAt:     s.BuiltAt,
		RecordCount: s.RecordCount,
		Chapters:    len(s.Course.Chapters),
		Learners:    s.Course.NoOfLearners,
	}
}

type InsightsService struct {
	source  repository.RecordSource
	cache   repository.RecordCache
	storage *StorageService

	mu   sync.RWMutex
	opts insights.Options

	current atomic.Pointer[Snapshot]
	builds  atomic.Uint64
	group   singleflight.Group
}


func NewInsightsService(source repository.RecordSource, cache repository.RecordCache, storage *StorageService, opts insights.Options) *InsightsService {
	if cache == nil {
		cache = repository.NopRecordCache{}
	}
	return &InsightsService{
		source:  source,
		cache:   cache,
		storage: storage,
		opts:    opts,
	}
}

// Refresh 重新拉取宽表并构建快照。同类并发调用合并为一次构建，构建不随单个调用方取消而中断；
// 先开始的构建晚于后开始的构建完成时被丢弃。数据为空时保留上一次的快照并返回 util.ErrNoData。
func (s *InsightsService) Refresh(ctx context.Context, force bool) (*Snapshot, error) {
	key := "refresh"
	if force {
		key = "refresh:force"
	}
	ch := s.group.DoChan(key, func() (interface{}, error) {
		return s.rebuild(context.WithoutCancel(ctx), force)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Shared {
			logger.Log.Debug("Refresh coalesced with an in-flight build", zap.Bool("force", force))
		}
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Snapshot), nil
	}
}

func (s *InsightsService) rebuild(ctx context.Context, force bool) (*Snapshot, error) {
	ctx, span := tracing.Start(ctx, "InsightsService.Refresh")
	defer span.End()
	span.SetAttributes(attribute.Bool("insights.force", force))

	seq := s.builds.Add(1)
	start := time.Now()
	defer func() {
		monitoring.SnapshotBuildDuration.Observe(time.Since(start).Seconds())
	}()

	records, origin, err := s.loadRecords(ctx, force)
	if err != nil {
		monitoring.SnapshotBuilds.WithLabelValues("error").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Log.Error("Failed to load learning records", zap.String("source", s.source.Name()), zap.Error(err))
		return nil, err
	}

	opts := s.Options()
	course, err := insights.Build(records, opts)
	if errors.Is(err, util.ErrNoData) {
		monitoring.SnapshotBuilds.WithLabelValues("no_data").Inc()
		logger.Log.Warn("Record source returned no rows, keeping previous snapshot", zap.String("source", origin))
		return nil, err
	}
	if err != nil {
		monitoring.SnapshotBuilds.WithLabelValues("error").Inc()
		span.RecordError(err)
		return nil, err
	}

	snap := newSnapshot(course, len(records), origin, opts)
	snap.seq = seq
	if current, stored := s.publish(snap); !stored {
		monitoring.SnapshotBuilds.WithLabelValues("stale").Inc()
		logger.Log.Info("Discarding build that finished after a newer snapshot",
			zap.String("snapshot", snap.ID),
			zap.String("current", current.ID),
		)
		return current, nil
	}

	monitoring.SnapshotBuilds.WithLabelValues("success").Inc()
	monitoring.SnapshotRecords.Set(float64(len(records)))
	monitoring.SnapshotLearners.Set(float64(course.NoOfLearners))
	span.SetAttributes(
		attribute.String("insights.snapshot_id", snap.ID),
		attribute.Int("insights.records", len(records)),
	)

	logger.Log.Info("Insights snapshot built",
		zap.String("snapshot", snap.ID),
		zap.String("source", origin),
		zap.Int("records", len(records)),
		zap.Int("chapters", len(course.Chapters)),
		zap.Int("learners", course.NoOfLearners),
		zap.Duration("elapsed", time.Since(start)),
	)
	return snap, nil
}

// publish 仅当 snap 比当前快照开始得更晚时替换，返回替换后的当前快照
func (s *InsightsService) publish(snap *Snapshot) (*Snapshot, bool) {
	for {
		current := s.current.Load()
		if current != nil && current.seq > snap.seq {
			return current, false
		}
		if s.current.CompareAndSwap(current, snap) {
			return snap, true
		}
	}
}

// loadRecords 优先读缓存，force 时直接访问数据源。返回记录及其实际来源
func (s *InsightsService) loadRecords(ctx context.Context, force bool) ([]model.FlatRecord, string, error) {
	if force {
		if err := s.cache.Invalidate(ctx); err != nil {
			logger.Log.Warn("Failed to invalidate record cache", zap.Error(err))
		}
	} else {
		records, ok, err := s.cache.Get(ctx)
		switch {
		case err != nil:
			monitoring.RecordCacheLookups.WithLabelValues("error").Inc()
			logger.Log.Warn("Record cache unavailable", zap.Error(err))
		case ok:
			monitoring.RecordCacheLookups.WithLabelValues("hit").Inc()
			return records, "cache", nil
		default:
			monitoring.RecordCacheLookups.WithLabelValues("miss").Inc()
		}
	}

	fetchCtx, span := tracing.Start(ctx, "RecordSource.Fetch")
	records, err := s.source.Fetch(fetchCtx)
	span.End()
	if err != nil {
		return nil, "", err
	}

	if len(records) > 0 {
		if err := s.cache.Set(ctx, records); err != nil {
			logger.Log.Warn("Failed to cache learning records", zap.Error(err))
		}
	}
	return records, s.source.Name(), nil
}

// Run 按固定间隔刷新，直到 ctx 结束
func (s *InsightsService) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.Refresh(ctx, false); err != nil && !errors.Is(err, util.ErrNoData) {
				logger.Log.Error("Scheduled refresh failed", zap.Error(err))
			}
		}
	}
}

func (s *InsightsService) Options() insights.Options {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.opts
}

// UpdateOptions 新的截断位数在下一次构建时生效
func (s *InsightsService) UpdateOptions(opts insights.Options) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.opts != opts {
		logger.Log.Info("Insights options updated",
			zap.Int("precision", opts.Precision),
			zap.Int("summary_precision", opts.SummaryPrecision),
			zap.Int("difficulty_precision", opts.DifficultyPrecision),
		)
	}
	s.opts = opts
}

// Snapshot 当前快照，尚未成功构建时返回 util.ErrSnapshotNotReady
func (s *InsightsService) Snapshot() (*Snapshot, error) {
	snap := s.current.Load()
	if snap == nil {
		return nil, util.ErrSnapshotNotReady
	}
	return snap, nil
}

func (s *InsightsService) Course() (*model.Course, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	return snap.Course, nil
}

func (s *InsightsService) Chapter(chapterID model.ID) (*model.Chapter, error) {
	course, err := s.Course()
	if err != nil {
		return nil, err
	}
	chapter, ok := course.FindChapter(chapterID)
	if !ok {
		return nil, util.ErrChapterNotFound
	}
	return chapter, nil
}

func (s *InsightsService) Unit(chapterID, unitID model.ID) (*model.Unit, error) {
	chapter, err := s.Chapter(chapterID)
	if err != nil {
		return nil, err
	}
	unit, ok := chapter.FindUnit(unitID)
	if !ok {
		return nil, util.ErrUnitNotFound
	}
	return unit, nil
}

func (s *InsightsService) DiagnoseStudent(studentID model.ID) (*model.StudentDiagnosis, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	return snap.diagnose(studentID)
}

// ConceptDifficulty 难度排行，limit <= 0 表示全部
func (s *InsightsService) ConceptDifficulty(limit int) ([]model.ConceptDifficulty, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	ranked := snap.difficulty()
	if limit > 0 && limit < len(ranked) {
		ranked = ranked[:limit:limit]
	}
	return ranked, nil
}

func (s *InsightsService) ActivityEffectiveness() ([]model.ActivityEffectiveness, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	return snap.activities(), nil
}

// ExportReport 将当前快照的完整报告以 JSON 上传到存储，返回访问地址
func (s *InsightsService) ExportReport(ctx context.Context) (string, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return "", err
	}

	ctx, span := tracing.Start(ctx, "InsightsService.ExportReport")
	defer span.End()

	report := model.InsightsReport{
		SnapshotID:            snap.ID,
		BuiltAt:               snap.BuiltAt,
		RecordCount:           snap.RecordCount,
		Course:                snap.Course,
		ConceptDifficulty:     snap.difficulty(),
		ActivityEffectiveness: snap.activities(),
	}
	body, err := json.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("encode report: %w", err)
	}

	filename := fmt.Sprintf("reports/insights-%s-%s.json", snap.BuiltAt.Format("20060102150405"), snap.ID[:8])
	url, err := s.storage.Upload(ctx, filename, bytes.NewReader(body), int64(len(body)), util.MimeJSON)
	if err != nil {
		span.RecordError(err)
		return "", fmt.Errorf("upload report: %w", err)
	}

	logger.Log.Info("Insights report exported", zap.String("snapshot", snap.ID), zap.String("file", filename))
	return url, nil
}
