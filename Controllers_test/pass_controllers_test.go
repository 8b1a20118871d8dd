package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/muthulakshmimuthu313-dot/smart-buspass-application/controllers"
	"github.com/muthulakshmimuthu313-dot/smart-buspass-application/database"
	"github.com/muthulakshmimuthu313-dot/smart-buspass-application/models"
	"github.com/muthulakshmimuthu313-dot/smart-buspass-application/services"
	"github.com/muthulakshmimuthu313-dot/smart-buspass-application/utils"
)

func setupTestSessionForPasses() *services.SessionStore {
	db, err := database.Open(":memory:")
	if err != nil {
		panic("failed to connect database")
	}
	sessions := services.NewSessionStore(database.NewKVStore(db))
	// Seed user mock supaya Issue tidak menolak
	if err := sessions.SetUser(models.NewMockUser("STU102456")); err != nil {
		panic(err)
	}
	return sessions
}

func setupPassRouter(sessions *services.SessionStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	passes := services.NewPassService(sessions, services.NewGatewayService(0))
	passCtrl := controllers.NewPassController(sessions, passes)
	router.POST("/passes", passCtrl.ApplyPass)
	router.POST("/passes/renew", passCtrl.RenewPass)
	router.GET("/pass", passCtrl.GetPass)
	router.GET("/pass/pdf", passCtrl.DownloadPassPDF)
	return router
}

func TestApplyAndGetPass(t *testing.T) {
	utils.InitLogger()
	sessions := setupTestSessionForPasses()
	router := setupPassRouter(sessions)

	payload := map[string]interface{}{
		"routeFrom": "Anna Nagar",
		"routeTo":   "Guindy",
		"duration":  3,
	}
	payloadBytes, err := json.Marshal(payload)
	assert.NoError(t, err)

	req, err := http.NewRequest("POST", "/passes", bytes.NewBuffer(payloadBytes))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	var createResp map[string]interface{}
	err = json.Unmarshal(w.Body.Bytes(), &createResp)
	assert.NoError(t, err)
	assert.Equal(t, "Pass issued", createResp["message"])
	data := createResp["data"].(map[string]interface{})
	assert.Equal(t, "/pass", data["redirect_to"])
	payment := data["payment"].(map[string]interface{})
	assert.Equal(t, float64(1500), payment["amount"])

	// Uji GET Pass
	req, err = http.NewRequest("GET", "/pass", nil)
	assert.NoError(t, err)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var getResp map[string]interface{}
	err = json.Unmarshal(w.Body.Bytes(), &getResp)
	assert.NoError(t, err)
	assert.Equal(t, "Pass detail", getResp["message"])
	getData := getResp["data"].(map[string]interface{})
	assert.Equal(t, "ACTIVE", getData["status"])
}

func TestGetPassWithoutOneRedirectsToApply(t *testing.T) {
	utils.InitLogger()
	sessions := setupTestSessionForPasses()
	router := setupPassRouter(sessions)

	req, _ := http.NewRequest("GET", "/pass", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "/apply", data["redirect_to"])
}

func TestApplyRejectsInvalidDuration(t *testing.T) {
	utils.InitLogger()
	sessions := setupTestSessionForPasses()
	router := setupPassRouter(sessions)

	payload := map[string]interface{}{
		"routeFrom": "Anna Nagar",
		"routeTo":   "Guindy",
		"duration":  5,
	}
	payloadBytes, _ := json.Marshal(payload)
	req, _ := http.NewRequest("POST", "/passes", bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRenewWithoutPassRedirectsToApply(t *testing.T) {
	utils.InitLogger()
	sessions := setupTestSessionForPasses()
	router := setupPassRouter(sessions)

	payload := map[string]interface{}{"duration": 1}
	payloadBytes, _ := json.Marshal(payload)
	req, _ := http.NewRequest("POST", "/passes/renew", bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "/apply", data["redirect_to"])
}

func TestDownloadPassPDF(t *testing.T) {
	utils.InitLogger()
	sessions := setupTestSessionForPasses()
	router := setupPassRouter(sessions)

	payload := map[string]interface{}{
		"routeFrom": "Tambaram",
		"routeTo":   "Velachery",
		"duration":  1,
	}
	payloadBytes, _ := json.Marshal(payload)
	req, _ := http.NewRequest("POST", "/passes", bytes.NewBuffer(payloadBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	req, _ = http.NewRequest("GET", "/pass/pdf", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "SmartPass_")
	assert.NotEmpty(t, w.Body.Bytes())
}
