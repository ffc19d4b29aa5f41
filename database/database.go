// database.go - Handles database connection and setup

package database // Declares the package name

import ( // Import required packages
	"strings" // For DSN inspection

	"employee-backend/models" // Admin, Employee and counter models

	"gorm.io/driver/sqlite" // SQLite driver for GORM
	"gorm.io/gorm"          // GORM ORM
)

var DB *gorm.DB // Global variable to hold the database connection (pointer to gorm.DB)

func Connect(dbPath string) error { // Connect opens the database and runs migrations
	dsn := dbPath
	if !strings.Contains(dsn, "?") {
		// Make contending writers wait for the lock instead of failing with
		// SQLITE_BUSY; concurrent employee creations hit the counter row.
		dsn += "?_busy_timeout=5000"
	}

	var err error
	DB, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{ // Open SQLite DB
		TranslateError: true, // Map driver errors onto gorm sentinels (gorm.ErrDuplicatedKey)
	})
	if err != nil {
		return err
	}

	// Auto-migrate the models (create tables if needed)
	return DB.AutoMigrate(
		&models.Admin{},
		&models.Employee{},
		&models.EmployeeCounter{},
	)
}
