package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/muthulakshmimuthu313-dot/smart-buspass-application/models"
	"github.com/muthulakshmimuthu313-dot/smart-buspass-application/services"
	"github.com/muthulakshmimuthu313-dot/smart-buspass-application/utils"
)

type PaymentController struct {
	Sessions *services.SessionStore
}

func NewPaymentController(sessions *services.SessionStore) *PaymentController {
	return &PaymentController{Sessions: sessions}
}

// GetPayments mengembalikan ledger pembayaran (terbaru dulu), difilter per
// jenis, plus jumlah transaksi dan total nominal hasil filter.
func (pc *PaymentController) GetPayments(c *gin.Context) {
	filter := c.DefaultQuery("type", models.PaymentFilterAll)
	switch filter {
	case models.PaymentFilterAll, models.PaymentTypeNew, models.PaymentTypeRenewal:
	default:
		utils.RespondError(c, http.StatusBadRequest,
			fmt.Errorf("unknown payment type filter %q", filter))
		return
	}

	filtered := models.FilterPayments(pc.Sessions.Payments(), filter)

	utils.RespondJSON(c, http.StatusOK, "Payment history", gin.H{
		"filter":   filter,
		"payments": filtered,
		"count":    len(filtered),
		"total":    models.TotalAmount(filtered),
	})
}
