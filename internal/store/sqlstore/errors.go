package sqlstore

import (
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// isUniqueViolation reports whether err is a SQLite UNIQUE constraint failure.
func isUniqueViolation(err error) bool {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	if sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE {
		return true
	}
	return sqliteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT && strings.Contains(sqliteErr.Error(), "UNIQUE")
}

// newID returns a fresh identifier in the same 24-char hex shape MongoDB assigns,
// so ids are interchangeable between backends.
func newID() string {
	return primitive.NewObjectID().Hex()
}
