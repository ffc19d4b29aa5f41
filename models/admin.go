// admin.go - Defines the Admin model for the database

package models // Declares the package name

type Admin struct { // Admin struct represents the admin account in the database
	ID       uint   `gorm:"primaryKey" json:"id"`            // Unique admin ID (primary key)
	Username string `gorm:"unique;not null" json:"username"` // Admin username (must be unique, cannot be null)
	Password string `gorm:"not null" json:"-"`               // Bcrypt hash, never serialized
}
