package util

import "errors"

var (
	ErrNoData           = errors.New("no learning data available")
	ErrSnapshotNotReady = errors.New("insights snapshot not ready")
	ErrStudentNotFound  = errors.New("student not found")
	ErrChapterNotFound  = errors.New("chapter not found")
	ErrUnitNotFound     = errors.New("unit not found")
	ErrUnknownSource    = errors.New("unknown record source type")
	ErrPermissionDenied = errors.New("permission denied")
)
