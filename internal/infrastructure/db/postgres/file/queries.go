package file

const (
	SelectFileByID = `
		SELECT id, code, delete_token, original_name, content_type, size_bytes, data, uploaded_at, download_count
		FROM shared_files
		WHERE id = $1
	`
	SelectFileByCode = `
		SELECT id, code, delete_token, original_name, content_type, size_bytes, data, uploaded_at, download_count
		FROM shared_files
		WHERE code = $1
	`
	SelectFileByCodeAndToken = `
		SELECT id, code, delete_token, original_name, content_type, size_bytes, data, uploaded_at, download_count
		FROM shared_files
		WHERE code = $1 AND delete_token = $2
	`
	SelectFilesMetadata = `
		SELECT id, code, original_name, content_type, size_bytes, uploaded_at, download_count
		FROM shared_files
		ORDER BY uploaded_at DESC
	`
	SelectCodeExists  = `SELECT EXISTS (SELECT 1 FROM shared_files WHERE code = $1)`
	SelectTokenExists = `SELECT EXISTS (SELECT 1 FROM shared_files WHERE delete_token = $1)`
	InsertFile        = `
		INSERT INTO shared_files (code, delete_token, original_name, content_type, size_bytes, data)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING
		  id, code, delete_token, original_name, content_type, size_bytes, uploaded_at, download_count
	`
	IncrementDownloadCountByID = `
		UPDATE shared_files
		SET download_count = download_count + 1
		WHERE id = $1
	`
	DeleteFileByID = `DELETE FROM shared_files WHERE id = $1`
)
