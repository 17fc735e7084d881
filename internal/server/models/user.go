package models

import "time"

// User is the stored account record. It is immutable after creation: there
// is no update or delete path.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	DisplayName  string
	CreatedAt    time.Time
}
