package models

// EmployeeCounter is the singleton row holding the last issued employee number.
// It is created lazily on the first allocation and only ever mutated through an
// atomic increment in the database package.
type EmployeeCounter struct {
	ID         uint `gorm:"primaryKey"` // Always 1, there is exactly one row
	EmployeeID int  `gorm:"not null"`   // Last employee number handed out
}
