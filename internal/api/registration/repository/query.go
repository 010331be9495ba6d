package registrationRepository

const (
	queryCreateSession = `
		INSERT INTO registration_sessions (
			id, language, current_step, status, answers,
			password_hash, retry_count, attempt_id, attempt_step,
			attempt_expires_at, created_at, last_activity
		) VALUES (
			:id, :language, :current_step, :status, :answers,
			:password_hash, :retry_count, :attempt_id, :attempt_step,
			:attempt_expires_at, :created_at, :last_activity
		)
	`

	queryGetSessionByID = `
		SELECT
			id, language, current_step, status, answers,
			password_hash, retry_count, attempt_id, attempt_step,
			attempt_expires_at, created_at, last_activity
		FROM registration_sessions
		WHERE id = :id
	`

	queryUpdateSession = `
		UPDATE registration_sessions
		SET
			current_step = :current_step,
			status = :status,
			answers = :answers,
			password_hash = :password_hash,
			retry_count = :retry_count,
			attempt_id = :attempt_id,
			attempt_step = :attempt_step,
			attempt_expires_at = :attempt_expires_at,
			last_activity = :last_activity
		WHERE id = :id
	`

	queryDeleteOldSessions = `
		DELETE FROM registration_sessions
		WHERE last_activity < :cutoff_time
		AND status != 'submitted'
	`

	queryCreateAttempt = `
		INSERT INTO registration_attempts (
			id, session_id, step, transcript, normalized,
			accepted, error_code, audio_file, created_at
		) VALUES (
			:id, :session_id, :step, :transcript, :normalized,
			:accepted, :error_code, :audio_file, :created_at
		)
	`

	queryGetAttemptsBySessionID = `
		SELECT
			id, session_id, step, transcript, normalized,
			accepted, error_code, audio_file, created_at
		FROM registration_attempts
		WHERE session_id = :session_id
		ORDER BY created_at ASC
	`
)
