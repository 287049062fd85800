package database

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// # Error Codes Reference
//
// Apply and verify failures are mapped to a short message and a suggested
// action so the operator can tell a re-run apart from a schema mismatch.
//
//	DB001 - Duplicate key: the seed data is already loaded
//	        SQLSTATE 23505, pattern "duplicate key"
//	DB002 - Foreign key: a referenced row does not exist
//	        SQLSTATE 23503, pattern "violates foreign key"
//	DB003 - Missing table: the migrations have not been run
//	        SQLSTATE 42P01, pattern "does not exist"
//	DB004 - Missing column: the destination schema is older than the script
//	        SQLSTATE 42703
//	DB005 - Invalid value: a value does not fit the column type or enum
//	        SQLSTATE 22P02, 23514
//	DB006 - Connection refused: unable to reach the database
//	        pattern "connection refused"
//	DB007 - Timeout: the run exceeded DB_APPLY_TIMEOUT
//	        pattern "deadline exceeded", "timeout"
//	DB008 - Deadlock: another session held conflicting locks
//	        SQLSTATE 40P01
//	ERR000 - Unknown error: check the logs for the underlying error

// UserMessage is an operator-facing description of a database failure.
type UserMessage struct {
	Message string // What happened
	Action  string // What to do about it
	Code    string // Stable reference code
}

var (
	msgDuplicate = UserMessage{
		Message: "The seed data is already loaded",
		Action:  "The script is not idempotent; reset the tables or apply to a fresh database",
		Code:    "DB001",
	}
	msgForeignKey = UserMessage{
		Message: "A referenced record does not exist",
		Action:  "Check that parent rows are inserted before their children",
		Code:    "DB002",
	}
	msgMissingTable = UserMessage{
		Message: "A destination table does not exist",
		Action:  "Run the schema migrations before applying the seed script",
		Code:    "DB003",
	}
	msgMissingColumn = UserMessage{
		Message: "A destination column does not exist",
		Action:  "Update the schema migrations to match the seed script",
		Code:    "DB004",
	}
	msgInvalidValue = UserMessage{
		Message: "A value does not fit its column",
		Action:  "Check status and role values against the destination enums",
		Code:    "DB005",
	}
	msgRefused = UserMessage{
		Message: "Unable to connect to database",
		Action:  "Check DATABASE_URL and that the server is running",
		Code:    "DB006",
	}
	msgTimeout = UserMessage{
		Message: "Operation timed out",
		Action:  "Raise DB_APPLY_TIMEOUT or try again",
		Code:    "DB007",
	}
	msgDeadlock = UserMessage{
		Message: "Database was busy with conflicting operations",
		Action:  "Please try again",
		Code:    "DB008",
	}

	// defaultMessage is returned when nothing matches.
	defaultMessage = UserMessage{
		Message: "An unexpected database error occurred",
		Action:  "Check the logs for the underlying error",
		Code:    "ERR000",
	}
)

// sqlStateMessages maps PostgreSQL SQLSTATE codes to messages.
var sqlStateMessages = map[string]UserMessage{
	"23505": msgDuplicate,
	"23503": msgForeignKey,
	"42P01": msgMissingTable,
	"42703": msgMissingColumn,
	"22P02": msgInvalidValue,
	"23514": msgInvalidValue,
	"40P01": msgDeadlock,
}

// errorPatterns are matched case-insensitively against the error text when
// the error carries no SQLSTATE. The first match wins.
var errorPatterns = []struct {
	pattern string
	msg     UserMessage
}{
	{"duplicate key", msgDuplicate},
	{"violates foreign key", msgForeignKey},
	{"does not exist", msgMissingTable},
	{"connection refused", msgRefused},
	{"deadline exceeded", msgTimeout},
	{"timeout", msgTimeout},
	{"deadlock", msgDeadlock},
}

// MapError converts a database error to an operator-facing message. A
// *pgconn.PgError anywhere in the chain is matched by SQLSTATE first.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if msg, ok := sqlStateMessages[pgErr.Code]; ok {
			return msg
		}
	}

	errStr := strings.ToLower(err.Error())
	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}
	return defaultMessage
}

// FormatUserError renders err as "Message (Code: XXX). Action".
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// IsKnown reports whether err maps to a specific message rather than the
// ERR000 fallback.
func IsKnown(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}
