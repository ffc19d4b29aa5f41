// employee_test.go - Tests for the employee CRUD handlers
// The external image host is stubbed with an httptest server.

package handlers

import (
	"bytes"             // For building request bodies
	"encoding/json"     // For encoding/decoding JSON
	"fmt"               // For response stubs
	"mime/multipart"    // For building multipart forms
	"net/http"          // HTTP status codes
	"net/http/httptest" // HTTP test helpers
	"os"                // For file operations
	"testing"           // Go's testing package

	"employee-backend/database"   // Database connection
	"employee-backend/middleware" // Auth guard and token issuing
	"employee-backend/models"     // Employee model
	"employee-backend/uploader"   // Image host client under test configuration

	"github.com/gin-gonic/gin"           // Gin web framework
	"github.com/stretchr/testify/assert" // For assertions
)

// newImageHost stubs the external image host, answering every upload with a
// stable URL
func newImageHost(t *testing.T) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"success":true,"data":{"url":"https://img.example.com/%s.png"}}`, r.FormValue("folder"))
	}))
	t.Cleanup(srv.Close)
	return srv
}

// setupEmployeeTest prepares a fresh DB, a stubbed image host, a router with
// the guarded employee routes, and a valid admin token
func setupEmployeeTest(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	_ = os.Remove("test_employee.db")
	assert.NoError(t, database.Connect("test_employee.db"))

	uploader.Init(newImageHost(t).URL, "testkey")

	r := gin.Default()
	auth := r.Group("/api/v1")
	auth.Use(middleware.AuthMiddleware())
	auth.POST("/createEmployee", CreateEmployee)
	auth.GET("/getAllEmployee", GetAllEmployee)
	auth.GET("/getEmployeeById/:id", GetEmployeeByID)
	auth.POST("/editEmployee/:id", EditEmployee)
	auth.DELETE("/deleteEmployee/:id", DeleteEmployee)

	token, err := middleware.GenerateToken(1, "admin")
	assert.NoError(t, err)
	return r, token
}

// employeeFields returns a valid baseline form, which individual tests mutate
func employeeFields(name, email string) map[string]string {
	return map[string]string{
		"name":        name,
		"email":       email,
		"mobileNo":    "1234567890",
		"designation": "HR",
		"gender":      "Male",
	}
}

// buildForm assembles a multipart body with the given scalar fields, repeated
// course fields, and optionally an image file
func buildForm(t *testing.T, fields map[string]string, courses []string, withImage bool) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		assert.NoError(t, writer.WriteField(key, value))
	}
	for _, course := range courses {
		assert.NoError(t, writer.WriteField("course", course))
	}
	if withImage {
		part, err := writer.CreateFormFile("employeeImage", "avatar.png")
		assert.NoError(t, err)
		_, err = part.Write([]byte("fake png bytes"))
		assert.NoError(t, err)
	}
	assert.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func doForm(router *gin.Engine, token, method, path string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)
	return w
}

func doGet(router *gin.Engine, token, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)
	return w
}

func decodeEmployee(t *testing.T, w *httptest.ResponseRecorder) models.Employee {
	t.Helper()
	var resp envelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	var employee models.Employee
	assert.NoError(t, json.Unmarshal(resp.Data, &employee))
	return employee
}

// TestCreateEmployeeAssignsSequentialIDs tests that created employees get
// employee numbers 1, 2, ... in creation order
func TestCreateEmployeeAssignsSequentialIDs(t *testing.T) {
	router, token := setupEmployeeTest(t)

	body, contentType := buildForm(t, employeeFields("Alice", "alice@example.com"), []string{"MCA"}, true)
	w := doForm(router, token, "POST", "/api/v1/createEmployee", body, contentType)
	assert.Equal(t, 201, w.Code)
	first := decodeEmployee(t, w)
	assert.Equal(t, 1, first.EmployeeID)
	assert.NotEmpty(t, first.Image)

	body, contentType = buildForm(t, employeeFields("Bob", "bob@example.com"), []string{"BCA", "BSC"}, true)
	w = doForm(router, token, "POST", "/api/v1/createEmployee", body, contentType)
	assert.Equal(t, 201, w.Code)
	second := decodeEmployee(t, w)
	assert.Equal(t, 2, second.EmployeeID)
}

// TestCreateEmployeeValidation tests that malformed input never reaches storage
func TestCreateEmployeeValidation(t *testing.T) {
	router, token := setupEmployeeTest(t)

	// Missing image
	body, contentType := buildForm(t, employeeFields("Alice", "alice@example.com"), []string{"MCA"}, false)
	w := doForm(router, token, "POST", "/api/v1/createEmployee", body, contentType)
	assert.Equal(t, 400, w.Code)

	// Bad mobile number
	fields := employeeFields("Alice", "alice@example.com")
	fields["mobileNo"] = "12345"
	body, contentType = buildForm(t, fields, []string{"MCA"}, true)
	w = doForm(router, token, "POST", "/api/v1/createEmployee", body, contentType)
	assert.Equal(t, 400, w.Code)

	// Unknown designation
	fields = employeeFields("Alice", "alice@example.com")
	fields["designation"] = "Intern"
	body, contentType = buildForm(t, fields, []string{"MCA"}, true)
	w = doForm(router, token, "POST", "/api/v1/createEmployee", body, contentType)
	assert.Equal(t, 400, w.Code)

	// Empty course list
	body, contentType = buildForm(t, employeeFields("Alice", "alice@example.com"), nil, true)
	w = doForm(router, token, "POST", "/api/v1/createEmployee", body, contentType)
	assert.Equal(t, 400, w.Code)

	// Nothing was stored
	w = doGet(router, token, "/api/v1/getAllEmployee")
	assert.Equal(t, 200, w.Code)
	var resp envelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	var all []models.Employee
	assert.NoError(t, json.Unmarshal(resp.Data, &all))
	assert.Len(t, all, 0)
}

// TestCreateEmployeeDuplicateEmail tests the email uniqueness constraint
func TestCreateEmployeeDuplicateEmail(t *testing.T) {
	router, token := setupEmployeeTest(t)

	body, contentType := buildForm(t, employeeFields("Alice", "alice@example.com"), []string{"MCA"}, true)
	w := doForm(router, token, "POST", "/api/v1/createEmployee", body, contentType)
	assert.Equal(t, 201, w.Code)

	body, contentType = buildForm(t, employeeFields("Other Alice", "alice@example.com"), []string{"BCA"}, true)
	w = doForm(router, token, "POST", "/api/v1/createEmployee", body, contentType)
	assert.Equal(t, 409, w.Code)
}

// TestCreateEmployeeImageHostDown tests that an image host failure surfaces as 500
func TestCreateEmployeeImageHostDown(t *testing.T) {
	router, token := setupEmployeeTest(t)

	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(broken.Close)
	uploader.Init(broken.URL, "testkey")

	body, contentType := buildForm(t, employeeFields("Alice", "alice@example.com"), []string{"MCA"}, true)
	w := doForm(router, token, "POST", "/api/v1/createEmployee", body, contentType)
	assert.Equal(t, 500, w.Code)
}

// TestEditEmployee tests in-place updates, course re-validation, and the
// immutability of the employee number
func TestEditEmployee(t *testing.T) {
	router, token := setupEmployeeTest(t)

	body, contentType := buildForm(t, employeeFields("Alice", "alice@example.com"), []string{"MCA"}, true)
	w := doForm(router, token, "POST", "/api/v1/createEmployee", body, contentType)
	assert.Equal(t, 201, w.Code)
	created := decodeEmployee(t, w)

	path := fmt.Sprintf("/api/v1/editEmployee/%d", created.ID)

	// Valid edit replaces the course list, employee number stays put
	body, contentType = buildForm(t, employeeFields("Alice", "alice@example.com"), []string{"BCA", "BSC"}, false)
	w = doForm(router, token, "POST", path, body, contentType)
	assert.Equal(t, 200, w.Code)
	updated := decodeEmployee(t, w)
	assert.Equal(t, models.CourseList{"BCA", "BSC"}, updated.Course)
	assert.Equal(t, created.EmployeeID, updated.EmployeeID)

	// An out-of-enumeration course is rejected and the record is unchanged
	body, contentType = buildForm(t, employeeFields("Alice", "alice@example.com"), []string{"PHD"}, false)
	w = doForm(router, token, "POST", path, body, contentType)
	assert.Equal(t, 400, w.Code)

	w = doGet(router, token, fmt.Sprintf("/api/v1/getEmployeeById/%d", created.ID))
	assert.Equal(t, 200, w.Code)
	stored := decodeEmployee(t, w)
	assert.Equal(t, models.CourseList{"BCA", "BSC"}, stored.Course)

	// Editing a nonexistent identifier is a 404
	body, contentType = buildForm(t, employeeFields("Ghost", "ghost@example.com"), []string{"MCA"}, false)
	w = doForm(router, token, "POST", "/api/v1/editEmployee/9999", body, contentType)
	assert.Equal(t, 404, w.Code)
}

// TestEditEmployeeEmailConflict tests that an edit cannot steal another
// record's email
func TestEditEmployeeEmailConflict(t *testing.T) {
	router, token := setupEmployeeTest(t)

	body, contentType := buildForm(t, employeeFields("Alice", "alice@example.com"), []string{"MCA"}, true)
	w := doForm(router, token, "POST", "/api/v1/createEmployee", body, contentType)
	assert.Equal(t, 201, w.Code)

	body, contentType = buildForm(t, employeeFields("Bob", "bob@example.com"), []string{"BCA"}, true)
	w = doForm(router, token, "POST", "/api/v1/createEmployee", body, contentType)
	assert.Equal(t, 201, w.Code)
	bob := decodeEmployee(t, w)

	body, contentType = buildForm(t, employeeFields("Bob", "alice@example.com"), []string{"BCA"}, false)
	w = doForm(router, token, "POST", fmt.Sprintf("/api/v1/editEmployee/%d", bob.ID), body, contentType)
	assert.Equal(t, 409, w.Code)
}

// TestDeleteEmployee tests hard deletion and the NotFound path
func TestDeleteEmployee(t *testing.T) {
	router, token := setupEmployeeTest(t)

	// Deleting a nonexistent identifier leaves the store unchanged
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/api/v1/deleteEmployee/42", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)
	assert.Equal(t, 404, w.Code)

	body, contentType := buildForm(t, employeeFields("Alice", "alice@example.com"), []string{"MCA"}, true)
	w2 := doForm(router, token, "POST", "/api/v1/createEmployee", body, contentType)
	assert.Equal(t, 201, w2.Code)
	alice := decodeEmployee(t, w2)

	body, contentType = buildForm(t, employeeFields("Bob", "bob@example.com"), []string{"BCA"}, true)
	w2 = doForm(router, token, "POST", "/api/v1/createEmployee", body, contentType)
	assert.Equal(t, 201, w2.Code)
	bob := decodeEmployee(t, w2)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("DELETE", fmt.Sprintf("/api/v1/deleteEmployee/%d", bob.ID), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)
	assert.Equal(t, 200, w.Code)

	// Only the first employee remains
	w = doGet(router, token, "/api/v1/getAllEmployee")
	assert.Equal(t, 200, w.Code)
	var resp envelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	var all []models.Employee
	assert.NoError(t, json.Unmarshal(resp.Data, &all))
	assert.Len(t, all, 1)
	assert.Equal(t, alice.ID, all[0].ID)
}

// TestGetEmployeeByIDNotFound tests the NotFound path for single-record reads
func TestGetEmployeeByIDNotFound(t *testing.T) {
	router, token := setupEmployeeTest(t)

	w := doGet(router, token, "/api/v1/getEmployeeById/42")
	assert.Equal(t, 404, w.Code)
}
