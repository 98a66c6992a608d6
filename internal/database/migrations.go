package database

import "database/sql"

func migrate(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		avatar_url TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS trips (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		base_currency CHAR(3) NOT NULL,
		start_date DATE,
		end_date DATE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS trip_members (
		id BIGSERIAL PRIMARY KEY,
		trip_id BIGINT NOT NULL REFERENCES trips(id),
		user_id BIGINT NOT NULL REFERENCES users(id),
		status TEXT NOT NULL DEFAULT 'INVITED',
		role TEXT NOT NULL DEFAULT 'MEMBER',
		joined_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (trip_id, user_id)
	);

	CREATE TABLE IF NOT EXISTS expenses (
		id BIGSERIAL PRIMARY KEY,
		trip_id BIGINT NOT NULL REFERENCES trips(id),
		payer_id BIGINT NOT NULL REFERENCES users(id),
		description TEXT NOT NULL,
		amount NUMERIC(12,2) NOT NULL,
		currency CHAR(3) NOT NULL,
		exchange_rate NUMERIC(12,6) NOT NULL DEFAULT 1,
		base_amount NUMERIC(12,2) NOT NULL,
		split_type TEXT NOT NULL,
		expense_date DATE NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS expense_splits (
		id BIGSERIAL PRIMARY KEY,
		expense_id BIGINT NOT NULL REFERENCES expenses(id),
		user_id BIGINT NOT NULL REFERENCES users(id),
		amount NUMERIC(12,2) NOT NULL,
		percentage NUMERIC(5,2) NOT NULL
	);

	CREATE TABLE IF NOT EXISTS notifications (
		id BIGSERIAL PRIMARY KEY,
		recipient_id BIGINT NOT NULL REFERENCES users(id),
		message TEXT NOT NULL,
		is_read BOOLEAN NOT NULL DEFAULT FALSE,
		related_entity_type TEXT,
		related_entity_id BIGINT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_trip_members_user ON trip_members(user_id);
	CREATE INDEX IF NOT EXISTS idx_expenses_trip ON expenses(trip_id);
	CREATE INDEX IF NOT EXISTS idx_expense_splits_expense ON expense_splits(expense_id);
	CREATE INDEX IF NOT EXISTS idx_notifications_recipient ON notifications(recipient_id, is_read);
	`

	_, err := db.Exec(schema)
	return err
}
