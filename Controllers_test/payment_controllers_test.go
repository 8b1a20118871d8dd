package Controllers_test

import (
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

func setupTestSessionForPayments() *services.SessionStore {
	db, err := database.Open(":memory:")
	if err != nil {
		panic("failed to connect database")
	}
	sessions := services.NewSessionStore(database.NewKVStore(db))
	if err := sessions.SetUser(models.NewMockUser("STU102456")); err != nil {
		panic(err)
	}
	// Seed ledger: pembayaran lama dulu, lalu yang terbaru
	seed := []models.PaymentRecord{
		{ID: "PAY000001", Date: "01/01/2025", Amount: 500, Type: models.PaymentTypeNew, Status: models.PaymentStatusSuccessful, PassID: "SB0000001"},
		{ID: "PAY000002", Date: "01/02/2025", Amount: 900, Type: models.PaymentTypeRenewal, Status: models.PaymentStatusSuccessful, PassID: "SB0000001"},
	}
	for _, p := range seed {
		if err := sessions.PrependPayment(p); err != nil {
			panic(err)
		}
	}
	return sessions
}

func setupPaymentRouter(sessions *services.SessionStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	paymentCtrl := controllers.NewPaymentController(sessions)
	receiptCtrl := controllers.NewReceiptController(sessions)
	router.GET("/payments", paymentCtrl.GetPayments)
	router.GET("/payments/:payment_id/receipt", receiptCtrl.DownloadReceipt)
	return router
}

func TestGetPaymentsDefaultFilter(t *testing.T) {
	utils.InitLogger()
	sessions := setupTestSessionForPayments()
	router := setupPaymentRouter(sessions)

	req, err := http.NewRequest("GET", "/payments", nil)
	assert.NoError(t, err)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	err = json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.Equal(t, "Payment history", resp["message"])
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "All", data["filter"])
	assert.Equal(t, float64(2), data["count"])
	assert.Equal(t, float64(1400), data["total"])

	payments := data["payments"].([]interface{})
	first := payments[0].(map[string]interface{})
	// Terbaru dulu
	assert.Equal(t, "PAY000002", first["id"])
}

func TestGetPaymentsFilteredByType(t *testing.T) {
	utils.InitLogger()
	sessions := setupTestSessionForPayments()
	router := setupPaymentRouter(sessions)

	req, _ := http.NewRequest("GET", "/payments?type=Renewal", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["count"])
	assert.Equal(t, float64(900), data["total"])
}

func TestGetPaymentsRejectsUnknownFilter(t *testing.T) {
	utils.InitLogger()
	sessions := setupTestSessionForPayments()
	router := setupPaymentRouter(sessions)

	req, _ := http.NewRequest("GET", "/payments?type=Refund", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDownloadReceipt(t *testing.T) {
	utils.InitLogger()
	sessions := setupTestSessionForPayments()
	router := setupPaymentRouter(sessions)

	req, _ := http.NewRequest("GET", "/payments/PAY000001/receipt", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "attachment; filename=Receipt_PAY000001.txt", w.Header().Get("Content-Disposition"))

	body := w.Body.String()
	assert.Contains(t, body, "SMARTBUS PASS - PAYMENT RECEIPT")
	assert.Contains(t, body, "Transaction ID: PAY000001")
	assert.Contains(t, body, "Amount Paid   : ₹500")
}

func TestDownloadReceiptUnknownID(t *testing.T) {
	utils.InitLogger()
	sessions := setupTestSessionForPayments()
	router := setupPaymentRouter(sessions)

	req, _ := http.NewRequest("GET", "/payments/PAYNOPE00/receipt", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
