package db

func (db *DB) initSchema() error {
	schema := `
	-- Raw catalog as delivered by the scraper, one row per section,
	-- replaced wholesale on every import
	CREATE TABLE IF NOT EXISTS raw_sections (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		position INTEGER NOT NULL,
		code TEXT NOT NULL,
		name TEXT,
		section TEXT,
		time TEXT,
		location TEXT,
		instructor TEXT,
		exam_period_id TEXT,
		hours INTEGER DEFAULT 0,
		type TEXT,
		status TEXT,
		campus TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_raw_sections_code ON raw_sections(code);
	CREATE INDEX IF NOT EXISTS idx_raw_sections_position ON raw_sections(position);

	-- Named schedule sets
	CREATE TABLE IF NOT EXISTS schedules (
		schedule_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		position INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	-- Selected sections per schedule, position keeps selection order
	CREATE TABLE IF NOT EXISTS schedule_sections (
		schedule_id TEXT NOT NULL,
		section_id TEXT NOT NULL,
		position INTEGER NOT NULL,
		PRIMARY KEY (schedule_id, section_id),
		FOREIGN KEY (schedule_id) REFERENCES schedules(schedule_id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_schedule_sections_schedule ON schedule_sections(schedule_id);

	-- Small single-value state (active schedule pointer)
	CREATE TABLE IF NOT EXISTS app_state (
		key TEXT PRIMARY KEY,
		value TEXT
	);

	-- Per-course color overrides, survive catalog re-imports
	CREATE TABLE IF NOT EXISTS color_overrides (
		code TEXT PRIMARY KEY,
		color TEXT NOT NULL
	);

	-- User display settings, stored as one JSON blob
	CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT
	);
	`

	_, err := db.conn.Exec(schema)
	return err
}
