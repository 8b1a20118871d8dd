package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func mixedLedger() []PaymentRecord {
	// Terbaru dulu, seperti urutan ledger sebenarnya
	return []PaymentRecord{
		{ID: "PAY000003", Amount: 450, Type: PaymentTypeNew, Status: PaymentStatusSuccessful, PassID: "SB0000003"},
		{ID: "PAY000002", Amount: 900, Type: PaymentTypeRenewal, Status: PaymentStatusSuccessful, PassID: "SB0000001"},
		{ID: "PAY000001", Amount: 500, Type: PaymentTypeNew, Status: PaymentStatusSuccessful, PassID: "SB0000001"},
	}
}

func TestFilterPaymentsAllIsIdentity(t *testing.T) {
	ledger := mixedLedger()
	assert.Equal(t, ledger, FilterPayments(ledger, PaymentFilterAll))
}

func TestFilterPaymentsByTypePreservesOrder(t *testing.T) {
	ledger := mixedLedger()

	renewals := FilterPayments(ledger, PaymentTypeRenewal)
	assert.Len(t, renewals, 1)
	assert.Equal(t, "PAY000002", renewals[0].ID)

	newOnes := FilterPayments(ledger, PaymentTypeNew)
	assert.Len(t, newOnes, 2)
	assert.Equal(t, "PAY000003", newOnes[0].ID)
	assert.Equal(t, "PAY000001", newOnes[1].ID)
}

func TestTotalAmountOfFilteredSubset(t *testing.T) {
	ledger := mixedLedger()

	assert.Equal(t, 1850, TotalAmount(ledger))
	assert.Equal(t, 900, TotalAmount(FilterPayments(ledger, PaymentTypeRenewal)))
	assert.Equal(t, 950, TotalAmount(FilterPayments(ledger, PaymentTypeNew)))
	assert.Equal(t, 0, TotalAmount(nil))
}
