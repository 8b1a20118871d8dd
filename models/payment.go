package models

// Jenis dan status transaksi pembayaran.
const (
	PaymentTypeNew     = "New"
	PaymentTypeRenewal = "Renewal"

	PaymentStatusSuccessful = "Successful"
	PaymentStatusFailed     = "Failed"
)

// PaymentFilterAll is the identity filter for the payment ledger.
const PaymentFilterAll = "All"

// PaymentRecord is one immutable entry in the session payment ledger.
// Amount is in whole rupees. PassID references the pass the payment paid
// for; records are never created without one in the normal flow.
//
// "Failed" is representable but never produced: the simulated gateway
// always succeeds.
type PaymentRecord struct {
	ID     string `json:"id"`
	Date   string `json:"date"` // dd/mm/yyyy
	Amount int    `json:"amount"`
	Type   string `json:"type"`   // New | Renewal
	Status string `json:"status"` // Successful | Failed
	PassID string `json:"passId"`
}

// FilterPayments returns the records matching the given type, preserving
// relative order. "All" (or empty) returns the full set unchanged.
func FilterPayments(payments []PaymentRecord, paymentType string) []PaymentRecord {
	if paymentType == "" || paymentType == PaymentFilterAll {
		return payments
	}
	filtered := make([]PaymentRecord, 0, len(payments))
	for _, p := range payments {
		if p.Type == paymentType {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// TotalAmount sums the Amount field over the given records.
func TotalAmount(payments []PaymentRecord) int {
	total := 0
	for _, p := range payments {
		total += p.Amount
	}
	return total
}
