package authRepository

const (
	queryCreateUser = `
INSERT INTO users (id, email, username, password, created_at)
VALUES (:id, :email, :username, :password, :created_at)`

	queryGetByID = `
SELECT id, email, username, password, profile_photo_url, is_verified, created_at, updated_at
FROM users
    WHERE id = :id`

	queryGetByEmail = `
SELECT id, email, username, password, profile_photo_url, is_verified, created_at, updated_at
FROM users
    WHERE email = :email`

	queryGetByUsername = `
SELECT id, email, username, password, profile_photo_url, is_verified, created_at, updated_at
FROM users
    WHERE username = :username`

	queryUpdateUser = `
UPDATE users
SET username = :username,
    is_verified = :is_verified,
    updated_at = :updated_at
WHERE id = :id`

	queryUpdateUserPassword = `
UPDATE users
SET password = :password,
    updated_at = :updated_at
WHERE email = :email`

	queryUpdateVerifiedStatus = `
UPDATE users
SET is_verified = :is_verified,
    updated_at = :updated_at
WHERE id = :id`

	queryUpdateProfilePhoto = `
UPDATE users
SET profile_photo_url = :profile_photo_url,
    updated_at = :updated_at
WHERE id = :id`

	queryDeleteUser = `
DELETE FROM users
WHERE id = :id`
)
