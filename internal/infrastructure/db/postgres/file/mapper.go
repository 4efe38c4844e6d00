package file

import (
	domain "filedrop-api/internal/domain/file"
)

func fromDBModel(model *SharedFile) *domain.SharedFile {
	var f = &domain.SharedFile{
		ID:          domain.ID(model.ID),
		Code:        model.Code,
		DeleteToken: model.DeleteToken,

		OriginalName: model.OriginalName,
		ContentType:  model.ContentType,
		SizeBytes:    model.SizeBytes,
		Data:         model.Data,

		UploadedAt:    model.UploadedAt,
		DownloadCount: model.DownloadCount,
	}

	return f
}

func fromDBModels(models *SharedFiles) domain.SharedFiles {
	fs := make(domain.SharedFiles, len(*models))
	for idx, f := range *models {
		fs[idx] = fromDBModel(f)
	}

	return fs
}
