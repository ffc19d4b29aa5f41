// employee.go - Defines the Employee model and its field enumerations

package models // Declares the package name

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"regexp"
	"time"
)

// Fixed enumerations for employee fields. Anything outside these sets is a
// validation error before the record ever reaches storage.
var (
	Designations = []string{"HR", "Manager", "Sales"}
	Genders      = []string{"Male", "Female"}
	Courses      = []string{"MCA", "BCA", "BSC"}

	mobilePattern = regexp.MustCompile(`^\d{10}$`) // Exactly 10 digits
)

// CourseList stores the course enrollments as a JSON-encoded text column,
// since SQLite has no native array type.
type CourseList []string

func (c CourseList) Value() (driver.Value, error) { // driver.Valuer for GORM writes
	return json.Marshal(c)
}

func (c *CourseList) Scan(value interface{}) error { // sql.Scanner for GORM reads
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	case nil:
		*c = nil
		return nil
	default:
		return fmt.Errorf("cannot scan %T into CourseList", value)
	}
}

type Employee struct { // Employee struct represents an employee record in the database
	ID          uint       `gorm:"primaryKey" json:"id"`                   // Internal identifier (primary key)
	EmployeeID  int        `gorm:"uniqueIndex;not null" json:"employeeId"` // Human-facing sequential number, immutable once assigned
	Name        string     `gorm:"not null" json:"name"`                   // Employee name
	Email       string     `gorm:"uniqueIndex;not null" json:"email"`      // Email (must be unique)
	MobileNo    string     `gorm:"not null" json:"mobileNo"`               // 10-digit mobile number
	Designation string     `gorm:"not null" json:"designation"`            // One of Designations
	Gender      string     `gorm:"not null" json:"gender"`                 // One of Genders
	Course      CourseList `gorm:"type:text;not null" json:"course"`       // Non-empty subset of Courses
	Image       string     `gorm:"not null" json:"image"`                  // URL on the external image host
	CreatedDate time.Time  `gorm:"autoCreateTime" json:"createdDate"`      // When the record was created
}

// ValidMobileNo reports whether s is a well-formed 10-digit mobile number.
func ValidMobileNo(s string) bool {
	return mobilePattern.MatchString(s)
}

// ValidDesignation reports whether s is one of the allowed designations.
func ValidDesignation(s string) bool {
	return contains(Designations, s)
}

// ValidGender reports whether s is one of the allowed genders.
func ValidGender(s string) bool {
	return contains(Genders, s)
}

// ValidCourses reports whether cs is non-empty and every entry is an allowed course.
func ValidCourses(cs []string) bool {
	if len(cs) == 0 {
		return false
	}
	for _, c := range cs {
		if !contains(Courses, c) {
			return false
		}
	}
	return true
}

func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
