package authRepository

const (
	queryCreateUser = `
		INSERT INTO users (
			id, name, email, password, role, phone,
			is_verified, voice_registered, created_at, updated_at
		) VALUES (
			:id, :name, :email, :password, :role, :phone,
			:is_verified, :voice_registered, :created_at, :updated_at
		)
	`

	queryGetUserByID = `
		SELECT
			id, name, email, password, role, phone,
			is_verified, voice_registered, created_at, updated_at
		FROM users
		WHERE id = :id
	`

	queryGetUserByEmail = `
		SELECT
			id, name, email, password, role, phone,
			is_verified, voice_registered, created_at, updated_at
		FROM users
		WHERE email = :email
	`

	queryUpdateUser = `
		UPDATE users
		SET
			name = :name,
			email = :email,
			password = :password,
			role = :role,
			phone = :phone,
			is_verified = :is_verified,
			voice_registered = :voice_registered,
			updated_at = :updated_at
		WHERE id = :id
	`
)
