package models

import "time"

// Attachment ties an object-storage key to a task. The payload itself
// lives in the S3-compatible backend; clients move bytes through
// presigned URLs and never through this server.
type Attachment struct {
	ID         string
	TaskID     string
	FileName   string
	StorageKey string
	CreatedAt  time.Time
}
