package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/muthulakshmimuthu313-dot/smart-buspass-application/utils"
)

// GatewayService mensimulasikan round-trip ke payment gateway. Tidak ada
// gateway sungguhan: transaksi selalu berhasil setelah delay tetap.
// No cancellation, no retry, no failure path.
type GatewayService struct {
	delay time.Duration
}

func NewGatewayService(delay time.Duration) *GatewayService {
	return &GatewayService{delay: delay}
}

// ChargeResult is what a real gateway would return for a captured payment.
type ChargeResult struct {
	ReferenceID string
	PaidAt      time.Time
}

// Charge blocks for the configured latency and returns a successful result.
func (s *GatewayService) Charge(amount int, purpose string) ChargeResult {
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	result := ChargeResult{
		ReferenceID: uuid.NewString(),
		PaidAt:      time.Now(),
	}
	utils.InfoLogger.Printf("gateway charge %s for %s (ref=%s)",
		utils.FormatRupee(amount), purpose, result.ReferenceID)
	return result
}
