package file

import (
	"time"
)

type (
	// SharedFile is the public metadata view. The delete token is never part
	// of it; only UploadResponse carries the token, exactly once.
	SharedFile struct {
		Code          string    `json:"code"`
		OriginalName  string    `json:"original_name"`
		ContentType   string    `json:"content_type"`
		SizeBytes     uint64    `json:"size_bytes"`
		UploadedAt    time.Time `json:"uploaded_at"`
		DownloadCount uint64    `json:"download_count"`
	}
	SharedFiles []SharedFile

	UploadResponse struct {
		Code         string    `json:"code"`
		DeleteToken  string    `json:"delete_token"`
		OriginalName string    `json:"original_name"`
		ContentType  string    `json:"content_type"`
		SizeBytes    uint64    `json:"size_bytes"`
		UploadedAt   time.Time `json:"uploaded_at"`
	}

	// AdminSharedFile exposes the internal id used by the admin delete route.
	AdminSharedFile struct {
		ID uint64 `json:"id"`
		SharedFile
	}
	AdminSharedFiles []AdminSharedFile
	ResponseData     struct {
		Data AdminSharedFiles `json:"data"`
	}
)
