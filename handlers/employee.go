// employee.go - Handles employee CRUD operations

package handlers // Declares the package name

import ( // Import required packages
	"encoding/json"  // For the JSON-array course encoding
	"errors"         // For sentinel error checks
	"mime/multipart" // For the uploaded file handle
	"net/http"       // HTTP status codes
	"strconv"        // For parsing the :id parameter
	"strings"        // For form field cleanup

	"employee-backend/config"   // Project config (image folder)
	"employee-backend/database" // Database connection and ID allocation
	"employee-backend/models"   // Employee model and enumerations
	"employee-backend/uploader" // External image host client

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // For gorm error sentinels
)

// parseCourses reads the course selection from the multipart form. The client
// may send a repeated field, a single JSON array, or a comma-separated string;
// all three encodings occur in the wild, so all three are accepted.
func parseCourses(c *gin.Context) []string {
	values := c.PostFormArray("course")
	if len(values) == 1 {
		raw := strings.TrimSpace(values[0])
		if strings.HasPrefix(raw, "[") {
			var parsed []string
			if err := json.Unmarshal([]byte(raw), &parsed); err == nil {
				values = parsed
			}
		} else if strings.Contains(raw, ",") {
			values = strings.Split(raw, ",")
		}
	}
	courses := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			courses = append(courses, v)
		}
	}
	return courses
}

// employeeForm holds the validated scalar fields of a create/edit request.
type employeeForm struct {
	Name        string
	Email       string
	MobileNo    string
	Designation string
	Gender      string
	Course      []string
}

// bindEmployeeForm reads and validates the multipart form fields shared by
// create and edit. Returns false after writing the 400 response on failure,
// so no validation error ever reaches storage.
func bindEmployeeForm(c *gin.Context) (employeeForm, bool) {
	form := employeeForm{
		Name:        strings.TrimSpace(c.PostForm("name")),
		Email:       strings.TrimSpace(c.PostForm("email")),
		MobileNo:    strings.TrimSpace(c.PostForm("mobileNo")),
		Designation: strings.TrimSpace(c.PostForm("designation")),
		Gender:      strings.TrimSpace(c.PostForm("gender")),
		Course:      parseCourses(c),
	}

	if form.Name == "" || form.Email == "" || form.MobileNo == "" ||
		form.Designation == "" || form.Gender == "" || len(form.Course) == 0 {
		respondError(c, http.StatusBadRequest, "All fields are required")
		return form, false
	}
	if !models.ValidMobileNo(form.MobileNo) {
		respondError(c, http.StatusBadRequest, "Mobile number must be exactly 10 digits")
		return form, false
	}
	if !models.ValidDesignation(form.Designation) {
		respondError(c, http.StatusBadRequest, "Invalid designation: "+form.Designation)
		return form, false
	}
	if !models.ValidGender(form.Gender) {
		respondError(c, http.StatusBadRequest, "Invalid gender: "+form.Gender)
		return form, false
	}
	if !models.ValidCourses(form.Course) {
		respondError(c, http.StatusBadRequest, "Invalid course(s): "+strings.Join(form.Course, ", "))
		return form, false
	}
	return form, true
}

// uploadEmployeeImage pushes the submitted file to the external image host and
// returns the durable URL.
func uploadEmployeeImage(c *gin.Context, fileName string, file multipart.File) (string, error) {
	defer file.Close()
	return uploader.Upload(c.Request.Context(), file, fileName, config.Load().ImageFolder)
}

func CreateEmployee(c *gin.Context) { // Handler for employee creation
	// STEP 1: Validate the form fields and the image before touching storage
	form, ok := bindEmployeeForm(c)
	if !ok {
		return
	}
	fileHeader, err := c.FormFile("employeeImage")
	if err != nil {
		respondError(c, http.StatusBadRequest, "Employee image is required")
		return
	}

	// STEP 2: Reject duplicate emails up front (unique index is the backstop)
	var existing models.Employee
	if err := database.DB.Where("email = ?", form.Email).First(&existing).Error; err == nil {
		respondError(c, http.StatusConflict, "Employee with this email already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(c, http.StatusInternalServerError, "Employee not created")
		return
	}

	// STEP 3: Upload the image to the external host
	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Image upload failed")
		return
	}
	imageURL, err := uploadEmployeeImage(c, fileHeader.Filename, file)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Image upload failed")
		return
	}

	// STEP 4: Allocate the next sequential employee number
	employeeID, err := database.NextEmployeeID()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Employee not created")
		return
	}

	// STEP 5: Persist the record
	employee := models.Employee{
		EmployeeID:  employeeID,
		Name:        form.Name,
		Email:       form.Email,
		MobileNo:    form.MobileNo,
		Designation: form.Designation,
		Gender:      form.Gender,
		Course:      form.Course,
		Image:       imageURL,
	}
	if err := database.DB.Create(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			respondError(c, http.StatusConflict, "Employee with this email already exists")
			return
		}
		respondError(c, http.StatusInternalServerError, "Employee not created")
		return
	}

	respond(c, http.StatusCreated, "Employee created successfully", employee)
}

func GetAllEmployee(c *gin.Context) { // Handler listing all employees
	var employees []models.Employee
	if err := database.DB.Find(&employees).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Could not fetch employees")
		return
	}
	respond(c, http.StatusOK, "All employees fetched successfully", employees)
}

func GetEmployeeByID(c *gin.Context) { // Handler fetching one employee by internal identifier
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid employee identifier")
		return
	}
	var employee models.Employee
	if err := database.DB.First(&employee, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "Employee not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Could not fetch employee")
		return
	}
	respond(c, http.StatusOK, "Employee retrieved successfully", employee)
}

func EditEmployee(c *gin.Context) { // Handler for in-place employee updates
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid employee identifier")
		return
	}

	// STEP 1: The record must exist before anything is validated against it
	var employee models.Employee
	if err := database.DB.First(&employee, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "Employee does not exist")
			return
		}
		respondError(c, http.StatusInternalServerError, "Employee not updated")
		return
	}

	// STEP 2: Same field validation as create; a rejected update leaves the
	// stored record untouched
	form, ok := bindEmployeeForm(c)
	if !ok {
		return
	}

	// STEP 3: The new email must not belong to a different record
	var other models.Employee
	err = database.DB.Where("email = ? AND id <> ?", form.Email, employee.ID).First(&other).Error
	if err == nil {
		respondError(c, http.StatusConflict, "Employee with this email already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(c, http.StatusInternalServerError, "Employee not updated")
		return
	}

	// STEP 4: Replace the image only when a new file was sent
	if fileHeader, err := c.FormFile("employeeImage"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Image upload failed")
			return
		}
		imageURL, err := uploadEmployeeImage(c, fileHeader.Filename, file)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "Image upload failed")
			return
		}
		employee.Image = imageURL
	}

	// STEP 5: Replace fields in place; EmployeeID is immutable once assigned
	employee.Name = form.Name
	employee.Email = form.Email
	employee.MobileNo = form.MobileNo
	employee.Designation = form.Designation
	employee.Gender = form.Gender
	employee.Course = form.Course

	if err := database.DB.Save(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			respondError(c, http.StatusConflict, "Employee with this email already exists")
			return
		}
		respondError(c, http.StatusInternalServerError, "Employee not updated")
		return
	}

	respond(c, http.StatusOK, "Employee updated successfully", employee)
}

func DeleteEmployee(c *gin.Context) { // Handler for permanent employee deletion
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid employee identifier")
		return
	}
	var employee models.Employee
	if err := database.DB.First(&employee, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "Employee not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Employee not deleted")
		return
	}
	if err := database.DB.Delete(&employee).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "Employee not deleted")
		return
	}
	respond(c, http.StatusOK, "Employee deleted successfully", nil)
}
