// counter.go - Atomic allocation of sequential employee numbers

package database

import (
	"employee-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NextEmployeeID returns the next sequential employee number, starting at 1.
// Uniqueness under concurrent creations rests on a single store-side
// read-modify-write: the counter row is bumped with one UPDATE and the new
// value is read back through RETURNING, so no read-then-write window exists.
func NextEmployeeID() (int, error) {
	// Lazily create the counter row at 0; ON CONFLICT makes the first two
	// concurrent callers agree on who seeds it.
	seed := models.EmployeeCounter{ID: 1, EmployeeID: 0}
	if err := DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&seed).Error; err != nil {
		return 0, err
	}

	var counter models.EmployeeCounter
	res := DB.Model(&counter).
		Clauses(clause.Returning{}).
		Where("id = ?", 1).
		Update("employee_id", gorm.Expr("employee_id + ?", 1))
	if res.Error != nil {
		return 0, res.Error
	}
	return counter.EmployeeID, nil
}
