package admin

const (
	SelectAdminByUsername = `
		SELECT id, username, password_hash, created_at
		FROM admin_users
		WHERE username = $1
	`
	InsertAdmin = `
		INSERT INTO admin_users (username, password_hash)
		VALUES ($1, $2)
		RETURNING id, username, password_hash, created_at
	`
)
