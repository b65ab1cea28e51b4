package repositories

import (
	"database/sql"
)

func nullString(src *string) sql.NullString {
	if src == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *src, Valid: true}
}

func nullInt(src *int) sql.NullInt64 {
	if src == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*src), Valid: true}
}

func nullToPtr(ns sql.NullString) *string {
	if ns.Valid {
		val := ns.String
		return &val
	}
	return nil
}

func nullIntToPtr(ni sql.NullInt64) *int {
	if ni.Valid {
		val := int(ni.Int64)
		return &val
	}
	return nil
}
