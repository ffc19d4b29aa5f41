// auth.go - Handles admin signup and login

package handlers // Declares the package name

import ( // Import required packages
	"errors"   // For sentinel error checks
	"net/http" // HTTP status codes

	"employee-backend/database"   // Database connection
	"employee-backend/middleware" // Token issuing
	"employee-backend/models"     // Admin model

	"github.com/gin-gonic/gin"   // Gin web framework
	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // For gorm.ErrRecordNotFound
)

type SignupInput struct { // Struct for signup input
	Username string `json:"username" binding:"required"` // Username (required)
	Password string `json:"password" binding:"required"` // Password (required)
}

type LoginInput struct { // Struct for login input
	Username string `json:"username" binding:"required"` // Username (required)
	Password string `json:"password" binding:"required"` // Password (required)
}

func Signup(c *gin.Context) { // Handler for admin registration
	var input SignupInput
	if err := c.ShouldBindJSON(&input); err != nil { // Parse JSON input
		respondError(c, http.StatusBadRequest, "Username and password are required")
		return
	}

	// Reject duplicate usernames up front
	var existing models.Admin
	if err := database.DB.Where("username = ?", input.Username).First(&existing).Error; err == nil {
		respondError(c, http.StatusBadRequest, "Admin already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(c, http.StatusInternalServerError, "Admin not registered, please try again")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost) // Hash password
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Admin not registered, please try again")
		return
	}

	admin := models.Admin{Username: input.Username, Password: string(hash)}
	if err := database.DB.Create(&admin).Error; err != nil { // Save admin to DB
		// Unique constraint backstop for a signup racing the check above
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			respondError(c, http.StatusBadRequest, "Admin already exists")
			return
		}
		respondError(c, http.StatusInternalServerError, "Admin not registered, please try again")
		return
	}

	respond(c, http.StatusOK, "Admin created successfully", admin)
}

func Login(c *gin.Context) { // Handler for admin login
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil { // Parse JSON input
		respondError(c, http.StatusBadRequest, "Username and password are required")
		return
	}

	// Same failure message for unknown username and wrong password, so a
	// caller cannot probe which usernames exist.
	var admin models.Admin
	if err := database.DB.Where("username = ?", input.Username).First(&admin).Error; err != nil {
		respondError(c, http.StatusUnauthorized, "Invalid username or password")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(input.Password)); err != nil {
		respondError(c, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	token, err := middleware.GenerateToken(admin.ID, admin.Username) // Issue JWT
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Login failed, please try again later")
		return
	}

	respond(c, http.StatusOK, "Logged in successfully", gin.H{
		"token": token,
		"user":  admin,
	})
}
