package model

import "time"

/*

User is a data model for a registered reader

Id: primary key, textual id in the form NN-NNNNNNN (two digits, dash, seven
digits), generated at signup
CreatedAt: time when entity is created

Name: user's display name
Email: unique, one account per address
PasswordHash: stored at signup, never serialized to clients

Preferences: categories this user is interested in, "many-to-many" relation
through the user_preferences join table

*/
type User struct {
	Id           string `gorm:"primaryKey"`
	CreatedAt    time.Time
	Name         string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	Preferences  []*Category `json:"preferences" gorm:"many2many:user_preferences;"`
}
