package file

import (
	domain "filedrop-api/internal/domain/file"
)

func ToResponseSharedFile(fDomain domain.SharedFile) SharedFile {
	var f = SharedFile{
		Code:          fDomain.Code,
		OriginalName:  fDomain.OriginalName,
		ContentType:   fDomain.ContentType,
		SizeBytes:     fDomain.SizeBytes,
		UploadedAt:    fDomain.UploadedAt,
		DownloadCount: fDomain.DownloadCount,
	}

	return f
}

func ToUploadResponse(fDomain domain.SharedFile) UploadResponse {
	return UploadResponse{
		Code:         fDomain.Code,
		DeleteToken:  fDomain.DeleteToken,
		OriginalName: fDomain.OriginalName,
		ContentType:  fDomain.ContentType,
		SizeBytes:    fDomain.SizeBytes,
		UploadedAt:   fDomain.UploadedAt,
	}
}

func ToAdminResponseSharedFile(fDomain domain.SharedFile) AdminSharedFile {
	return AdminSharedFile{
		ID:         uint64(fDomain.ID),
		SharedFile: ToResponseSharedFile(fDomain),
	}
}

func ToAdminResponseSharedFiles(fsDomain domain.SharedFiles) AdminSharedFiles {
	fs := make(AdminSharedFiles, len(fsDomain))
	for idx, f := range fsDomain {
		fs[idx] = ToAdminResponseSharedFile(*f)
	}

	return fs
}
