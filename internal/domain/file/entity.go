package file

import (
	"time"
)

type (
	ID         uint64
	SharedFile struct {
		ID          ID
		Code        string
		DeleteToken string

		OriginalName string
		ContentType  string
		SizeBytes    uint64
		Data         []byte

		UploadedAt    time.Time
		DownloadCount uint64
	}
	SharedFiles []*SharedFile
)
