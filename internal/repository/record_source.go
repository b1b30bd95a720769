package repository

import (
	"context"
	"course_insights_backend/internal/config"
	"course_insights_backend/internal/model"
	"course_insights_backend/internal/util"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// RecordSource 学习事件宽表的来源，每次调用返回完整的表
type RecordSource interface {
	Name() string
	Fetch(ctx context.Context) ([]model.FlatRecord, error)
}

// ObjectReader 按 key 读取对象存储中的文件
type ObjectReader interface {
	Download(ctx context.Context, filename string) (io.ReadCloser, error)
}

// NewRecordSource 按配置创建数据源
func NewRecordSource(cfg *config.SourceConfig, events *EventRepository, objects ObjectReader) (RecordSource, error) {
	switch cfg.Type {
	case util.SourceHTTP:
		return NewHTTPRecordSource(cfg.URL, cfg.Timeout()), nil
	case util.SourceObject:
		if objects == nil {
			return nil, fmt.Errorf("object source requires a storage provider")
		}
		return &ObjectRecordSource{Reader: objects, Key: cfg.ObjectKey}, nil
	case util.SourceDatabase:
		if events == nil {
			return nil, fmt.Errorf("database source requires a database connection")
		}
		return &DatabaseRecordSource{Events: events}, nil
	default:
		return nil, fmt.Errorf("%w: %q", util.ErrUnknownSource, cfg.Type)
	}
}

// DecodeRecords 解析 JSON 数组形式的宽表。单个字段格式错误不会导致整表失败
func DecodeRecords(r io.Reader) ([]model.FlatRecord, error) {
	var records []model.FlatRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode flat records: %w", err)
	}
	return records, nil
}

// HTTPRecordSource 从学习平台的导出接口拉取宽表
type HTTPRecordSource struct {
	URL    string
	Client *http.Client
}

func NewHTTPRecordSource(url string, timeout time.Duration) *HTTPRecordSource {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPRecordSource{
		URL:    url,
		Client: &http.Client{Timeout: timeout},
	}
}

func (s *HTTPRecordSource) Name() string { return util.SourceHTTP }

func (s *HTTPRecordSource) Fetch(ctx context.Context) ([]model.FlatRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", util.MimeJSON)

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch records: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("fetch records: status %d: %s", resp.StatusCode, string(body))
	}

	return DecodeRecords(resp.Body)
}

// ObjectRecordSource 从对象存储（local/minio/oss）读取导出的 JSON 文件
type ObjectRecordSource struct {
	Reader ObjectReader
	Key    string
}

func (s *ObjectRecordSource) Name() string { return util.SourceObject }

func (s *ObjectRecordSource) Fetch(ctx context.Context) ([]model.FlatRecord, error) {
	rc, err := s.Reader.Download(ctx, s.Key)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", s.Key, err)
	}
	defer rc.Close()

	return DecodeRecords(rc)
}

// DatabaseRecordSource 读取 learning_events 表
type DatabaseRecordSource struct {
	Events *EventRepository
}

func (s *DatabaseRecordSource) Name() string { return util.SourceDatabase }

func (s *DatabaseRecordSource) Fetch(ctx context.Context) ([]model.FlatRecord, error) {
	events, err := s.Events.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	records := make([]model.FlatRecord, 0, len(events))
	for i := range events {
		records = append(records, events[i].ToFlatRecord())
	}
	return records, nil
}
