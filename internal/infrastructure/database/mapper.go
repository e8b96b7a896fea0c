package database

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// pgtypeTextToPtr returns the string when Valid, else nil.
func pgtypeTextToPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}

// ptrToPgtypeText maps nil to SQL NULL.
func ptrToPgtypeText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

// pgtypeDateToTime returns t.Time when Valid, else zero time.
func pgtypeDateToTime(t pgtype.Date) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}

func timeToPgtypeDate(t time.Time) pgtype.Date {
	return pgtype.Date{Time: t, Valid: true}
}
