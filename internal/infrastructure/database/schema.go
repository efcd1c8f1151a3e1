package database

// Schema của bảng employees cho từng driver.
// Đây là bootstrap khi khởi động, không phải migration tooling.
const (
	PostgresSchema = `
CREATE TABLE IF NOT EXISTS employees (
    id    BIGSERIAL PRIMARY KEY,
    name  VARCHAR(100) NOT NULL,
    value BIGINT NOT NULL DEFAULT 0
);`

	SQLiteSchema = `
CREATE TABLE IF NOT EXISTS employees (
    id    INTEGER PRIMARY KEY AUTOINCREMENT,
    name  TEXT NOT NULL,
    value INTEGER NOT NULL DEFAULT 0
);`
)
