package file

import (
	"time"
)

type (
	SharedFile struct {
		ID          uint64
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
