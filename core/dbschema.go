package core

import "time"

// RevokedClient is the persistent record behind the revocation cache.
// A client is revoked for every token issued before RevokedAt.
type RevokedClient struct {
	ClientID  string    `json:"client_id" gorm:"primaryKey;type:text"`
	RevokedAt time.Time `json:"revoked_at" gorm:"type:timestamp with time zone"`
}

// AuditLog is one metering record for a served data-plane request
type AuditLog struct {
	ID        string    `json:"id" gorm:"primaryKey;type:text"`
	UserID    string    `json:"userid" gorm:"type:text;index"`
	Iid       string    `json:"iid" gorm:"type:text"`
	Role      string    `json:"role" gorm:"type:text"`
	Endpoint  string    `json:"endpoint" gorm:"type:text"`
	Method    string    `json:"method" gorm:"type:text"`
	Timestamp time.Time `json:"timestamp" gorm:"type:timestamp with time zone;index"`
}
