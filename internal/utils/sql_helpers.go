package utils

import (
	"database/sql"
)

// StringToNullString convertit une string en sql.NullString (vide = NULL)
func StringToNullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
