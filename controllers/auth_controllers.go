package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/muthulakshmimuthu313-dot/smart-buspass-application/models"
	"github.com/muthulakshmimuthu313-dot/smart-buspass-application/services"
	"github.com/muthulakshmimuthu313-dot/smart-buspass-application/utils"
)

type AuthController struct {
	Sessions *services.SessionStore
}

func NewAuthController(sessions *services.SessionStore) *AuthController {
	return &AuthController{Sessions: sessions}
}

// Login menerima id+password apa pun yang tidak kosong (atau mode demo tanpa
// input) dan selalu berhasil dengan profil mock. Student id dari form
// disubstitusikan ke profil.
func (ac *AuthController) Login(c *gin.Context) {
	var req struct {
		ID       string `json:"id"`
		Password string `json:"password"`
		Demo     bool   `json:"demo"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !req.Demo && (req.ID == "" || req.Password == "") {
		utils.RespondError(c, http.StatusBadRequest, errors.New("id and password are required"))
		return
	}

	studentID := req.ID
	if req.Demo {
		studentID = "DEMO_STUDENT"
	}

	user := models.NewMockUser(studentID)
	if err := ac.Sessions.SetUser(user); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	token, err := utils.GenerateToken(user.ID, user.StudentID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("login for student %s", user.StudentID)

	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{
		"token":       token,
		"user":        user,
		"redirect_to": "/",
	})
}

// Logout mengosongkan sesi dan menghapus seluruh isi store.
func (ac *AuthController) Logout(c *gin.Context) {
	if err := ac.Sessions.Logout(); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Logged out", gin.H{
		"redirect_to": "/login",
	})
}

// GetProfile mengembalikan user dari sesi yang aktif.
func (ac *AuthController) GetProfile(c *gin.Context) {
	user := ac.Sessions.User()
	if user == nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("no active session"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Profile data", user)
}
