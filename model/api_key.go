package model

// ApiKey is the authentication key a user presents in the api-key header.
// Lookup is by exact, case-sensitive match on Key.
type ApiKey struct {
	Id  int    `gorm:"primaryKey"`
	Key string `gorm:"not null;uniqueIndex"`
}
