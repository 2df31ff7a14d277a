package helpers

import "database/sql"

// GetNullString converts a string pointer to sql.NullString.
// A nil pointer becomes SQL NULL.
func GetNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// GetNullInt64 converts an int64 pointer to sql.NullInt64.
// A nil pointer becomes SQL NULL; zero stays a valid zero.
func GetNullInt64(i *int64) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *i, Valid: true}
}

// Int64OrDefault dereferences i, falling back to def when nil
func Int64OrDefault(i *int64, def int64) int64 {
	if i == nil {
		return def
	}
	return *i
}

// StringOrDefault dereferences s, falling back to def when nil
func StringOrDefault(s *string, def string) string {
	if s == nil {
		return def
	}
	return *s
}
