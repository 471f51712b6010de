package profileRepository

const (
	queryUpsertSkinProfile = `
		INSERT INTO user_skin_profiles (
			id,
			user_id,
			skin_type,
			skin_tone,
			acne_severity,
			pore_size,
			sensitivity_level,
			primary_concerns,
			pre_existing_conditions,
			allergies,
			diet_type,
			water_intake,
			sleep_hours,
			sun_exposure,
			routine_frequency,
			routine_type,
			skin_goals,
			created_at,
			updated_at
		) VALUES (
			:id,
			:user_id,
			:skin_type,
			:skin_tone,
			:acne_severity,
			:pore_size,
			:sensitivity_level,
			:primary_concerns,
			:pre_existing_conditions,
			:allergies,
			:diet_type,
			:water_intake,
			:sleep_hours,
			:sun_exposure,
			:routine_frequency,
			:routine_type,
			:skin_goals,
			:created_at,
			:updated_at
		)
		ON CONFLICT (user_id) DO UPDATE SET
			skin_type = :skin_type,
			skin_tone = :skin_tone,
			acne_severity = :acne_severity,
			pore_size = :pore_size,
			sensitivity_level = :sensitivity_level,
			primary_concerns = :primary_concerns,
			pre_existing_conditions = :pre_existing_conditions,
			allergies = :allergies,
			diet_type = :diet_type,
			water_intake = :water_intake,
			sleep_hours = :sleep_hours,
			sun_exposure = :sun_exposure,
			routine_frequency = :routine_frequency,
			routine_type = :routine_type,
			skin_goals = :skin_goals,
			updated_at = :updated_at
	`

	queryGetSkinProfileByUserID = `
		SELECT
			id,
			user_id,
			skin_type,
			skin_tone,
			acne_severity,
			pore_size,
			sensitivity_level,
			primary_concerns,
			pre_existing_conditions,
			allergies,
			diet_type,
			water_intake,
			sleep_hours,
			sun_exposure,
			routine_frequency,
			routine_type,
			skin_goals,
			created_at,
			updated_at
		FROM user_skin_profiles
		WHERE user_id = :user_id
	`

	queryCreateImage = `
		INSERT INTO user_images (
			id,
			user_id,
			storage_path,
			bucket,
			created_at
		) VALUES (
			:id,
			:user_id,
			:storage_path,
			:bucket,
			:created_at
		)
	`

	queryGetImageByID = `
		SELECT
			id,
			user_id,
			storage_path,
			bucket,
			created_at
		FROM user_images
		WHERE id = :id
	`

	queryGetImagesByUserID = `
		SELECT
			id,
			user_id,
			storage_path,
			bucket,
			created_at
		FROM user_images
		WHERE user_id = :user_id
		ORDER BY created_at DESC
	`

	queryGetLatestImageByUserID = `
		SELECT
			id,
			user_id,
			storage_path,
			bucket,
			created_at
		FROM user_images
		WHERE user_id = :user_id
		ORDER BY created_at DESC
		LIMIT 1
	`

	queryDeleteImage = `
		DELETE FROM user_images
		WHERE id = :id
	`
)
