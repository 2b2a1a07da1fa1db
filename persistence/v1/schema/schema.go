package schema

import "fmt"

// Dialects with a known schema. ramsql is only used by tests.
const (
	DialectMySQL  = "mysql"
	DialectSQLite = "sqlite"
	DialectRamSQL = "ramsql"
)

var schemas = map[string]string{
	DialectMySQL: `CREATE TABLE IF NOT EXISTS notes (
    id VARCHAR(36) NOT NULL PRIMARY KEY,
    content TEXT NOT NULL,
    createdAt DATETIME(6) NOT NULL,
    INDEX notes_createdAt (createdAt)
)`,
	DialectSQLite: `CREATE TABLE IF NOT EXISTS notes (
    id TEXT NOT NULL PRIMARY KEY,
    content TEXT NOT NULL,
    createdAt DATETIME NOT NULL
)`,
	DialectRamSQL: `CREATE TABLE notes (
    id TEXT PRIMARY KEY,
    content TEXT,
    createdAt TIMESTAMP
)`,
}

var dropSchemas = map[string]string{
	DialectMySQL:  `DROP TABLE IF EXISTS notes`,
	DialectSQLite: `DROP TABLE IF EXISTS notes`,
	DialectRamSQL: `DROP TABLE notes`,
}

func statement(statements map[string]string, dialect string) (string, error) {
	stmt, ok := statements[dialect]
	if !ok {
		return "", fmt.Errorf("unknown dialect %q", dialect)
	}
	return stmt, nil
}
