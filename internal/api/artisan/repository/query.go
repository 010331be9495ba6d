package artisanRepository

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

	queryEmailExists = `
		SELECT COUNT(*)
		FROM users
		WHERE email = :email
	`

	queryCreateArtisan = `
		INSERT INTO artisans (
			id, user_id, business_name, description, specialties,
			experience, region_state, region_city, cultural_background,
			website, instagram, facebook, is_verified, rating_average,
			rating_count, total_sales, voice_registered,
			registration_language, joined_at, created_at, updated_at
		) VALUES (
			:id, :user_id, :business_name, :description, :specialties,
			:experience, :region_state, :region_city, :cultural_background,
			:website, :instagram, :facebook, :is_verified, :rating_average,
			:rating_count, :total_sales, :voice_registered,
			:registration_language, :joined_at, :created_at, :updated_at
		)
	`

	queryGetArtisanByID = `
		SELECT
			id, user_id, business_name, description, specialties,
			experience, region_state, region_city, cultural_background,
			website, instagram, facebook, is_verified, rating_average,
			rating_count, total_sales, voice_registered,
			registration_language, joined_at, created_at, updated_at
		FROM artisans
		WHERE id = :id
	`

	queryGetArtisans = `
		SELECT
			id, user_id, business_name, description, specialties,
			experience, region_state, region_city, cultural_background,
			website, instagram, facebook, is_verified, rating_average,
			rating_count, total_sales, voice_registered,
			registration_language, joined_at, created_at, updated_at
		FROM artisans
		WHERE (:specialty = '' OR specialties LIKE '%' || :specialty || '%')
		ORDER BY joined_at DESC
		LIMIT :limit OFFSET :offset
	`

	queryCountArtisans = `
		SELECT COUNT(*)
		FROM artisans
		WHERE (:specialty = '' OR specialties LIKE '%' || :specialty || '%')
	`
)
