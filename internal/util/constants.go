package util

const (
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageOSS   = "oss"
)

// 学习事件数据源类型
const (
	SourceHTTP     = "http"
	SourceObject   = "object"
	SourceDatabase = "database"
)

const (
	MimeJSON = "application/json"
)
