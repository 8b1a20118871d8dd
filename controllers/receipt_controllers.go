package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/muthulakshmimuthu313-dot/smart-buspass-application/services"
	"github.com/muthulakshmimuthu313-dot/smart-buspass-application/utils"
)

type ReceiptController struct {
	Sessions *services.SessionStore
}

func NewReceiptController(sessions *services.SessionStore) *ReceiptController {
	return &ReceiptController{Sessions: sessions}
}

// DownloadReceipt merender satu payment record sebagai struk teks dan
// mengirimkannya sebagai file unduhan Receipt_<id>.txt.
func (rc *ReceiptController) DownloadReceipt(c *gin.Context) {
	paymentID := c.Param("payment_id")

	for _, p := range rc.Sessions.Payments() {
		if p.ID == paymentID {
			c.Header("Content-Disposition", "attachment; filename="+services.ReceiptFilename(p))
			c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(services.FormatReceipt(p)))
			return
		}
	}

	utils.RespondError(c, http.StatusNotFound, fmt.Errorf("payment %s not found", paymentID))
}
