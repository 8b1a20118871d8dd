package services

import (
	"fmt"
	"strings"

	"github.com/muthulakshmimuthu313-dot/smart-buspass-application/models"
	"github.com/muthulakshmimuthu313-dot/smart-buspass-application/utils"
)

const receiptDivider = "------------------------------------------"

// FormatReceipt renders a payment record as the fixed-layout plain-text
// receipt. Layoutnya harus byte-stable: output diuji secara literal dan
// dipakai sebagai file unduhan.
func FormatReceipt(p models.PaymentRecord) string {
	lines := []string{
		receiptDivider,
		"       SMARTBUS PASS - PAYMENT RECEIPT",
		receiptDivider,
		"Transaction ID: " + p.ID,
		"Pass ID       : " + p.PassID,
		"Date          : " + p.Date,
		"Payment Type  : " + p.Type + " Pass",
		"Amount Paid   : " + utils.FormatRupee(p.Amount),
		"Status        : " + p.Status,
		receiptDivider,
		"Thank you for using SmartBus!",
		"This is a computer generated receipt.",
		receiptDivider,
	}
	return strings.Join(lines, "\n")
}

// ReceiptFilename returns the suggested download name for a receipt.
func ReceiptFilename(p models.PaymentRecord) string {
	return fmt.Sprintf("Receipt_%s.txt", p.ID)
}
