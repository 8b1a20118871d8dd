package services

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/muthulakshmimuthu313-dot/smart-buspass-application/models"
	"github.com/muthulakshmimuthu313-dot/smart-buspass-application/utils"
)

// Tarif per bulan dalam rupee. Renewal punya tarif unit sendiri (diskon ₹50
// sudah termasuk di tarifnya), bukan diturunkan dari tarif pass baru.
const (
	NewPassRatePerMonth = 500
	RenewalRatePerMonth = 450
)

var (
	ErrNotLoggedIn          = errors.New("no user in session")
	ErrNoActivePass         = errors.New("no existing pass to renew")
	ErrSubmissionInProgress = errors.New("a submission is already in progress")
)

// PassService menangani issuance dan renewal bus pass.
//
// submitting is the idle/submitting flag of the original form: one submission
// at a time, released when the simulated payment completes.
type PassService struct {
	sessions   *SessionStore
	gateway    *GatewayService
	submitting atomic.Bool
}

func NewPassService(sessions *SessionStore, gateway *GatewayService) *PassService {
	return &PassService{
		sessions: sessions,
		gateway:  gateway,
	}
}

// Submitting reports whether a submission is currently in flight.
func (s *PassService) Submitting() bool {
	return s.submitting.Load()
}

// Issue charges the mock gateway and creates a new pass plus its payment
// record. Any existing pass is replaced without an active-pass check. The
// photo uploaded on the application form is preview-only and never reaches
// the pass record.
func (s *PassService) Issue(routeFrom, routeTo string, months int) (*models.BusPass, *models.PaymentRecord, error) {
	user := s.sessions.User()
	if user == nil {
		return nil, nil, ErrNotLoggedIn
	}
	if !s.submitting.CompareAndSwap(false, true) {
		return nil, nil, ErrSubmissionInProgress
	}
	defer s.submitting.Store(false)

	amount := months * NewPassRatePerMonth
	charge := s.gateway.Charge(amount, "new pass application")

	now := time.Now()
	passID := utils.NewPassID()
	pass := &models.BusPass{
		ID:         passID,
		UserID:     user.ID,
		RouteFrom:  routeFrom,
		RouteTo:    routeTo,
		IssueDate:  utils.FormatDate(now),
		ExpiryDate: utils.FormatDate(utils.AddMonths(now, months)),
		Status:     models.PassStatusActive,
		QRCode:     fmt.Sprintf("PASS_%s_%s", passID, user.StudentID),
	}
	payment := &models.PaymentRecord{
		ID:     utils.NewPaymentID(),
		Date:   utils.FormatDate(now),
		Amount: amount,
		Type:   models.PaymentTypeNew,
		Status: models.PaymentStatusSuccessful,
		PassID: passID,
	}

	if err := s.sessions.SetPass(pass); err != nil {
		return nil, nil, err
	}
	if err := s.sessions.PrependPayment(*payment); err != nil {
		return nil, nil, err
	}

	utils.InfoLogger.Printf("issued pass %s (%s -> %s, %d months, ref=%s)",
		passID, routeFrom, routeTo, months, charge.ReferenceID)
	return pass, payment, nil
}

// Renew extends the existing pass. The new expiry is computed from the
// stored expiry date; if that date does not parse, the base silently falls
// back to today instead of failing. Status is forced back to Active.
//
// The stored pass is never mutated in place: concurrent readers hold the
// same pointer, so the update is built on a copy and swapped in via SetPass.
func (s *PassService) Renew(months int) (*models.BusPass, *models.PaymentRecord, error) {
	current := s.sessions.Pass()
	if current == nil {
		return nil, nil, ErrNoActivePass
	}
	if !s.submitting.CompareAndSwap(false, true) {
		return nil, nil, ErrSubmissionInProgress
	}
	defer s.submitting.Store(false)

	amount := months * RenewalRatePerMonth
	charge := s.gateway.Charge(amount, "pass renewal")

	updated := *current
	base, err := utils.ParseDate(updated.ExpiryDate)
	if err != nil {
		base = time.Now()
		utils.InfoLogger.Printf("stored expiry %q unreadable, renewing pass %s from today",
			updated.ExpiryDate, updated.ID)
	}
	updated.ExpiryDate = utils.FormatDate(utils.AddMonths(base, months))
	updated.Status = models.PassStatusActive

	payment := &models.PaymentRecord{
		ID:     utils.NewPaymentID(),
		Date:   utils.FormatDate(time.Now()),
		Amount: amount,
		Type:   models.PaymentTypeRenewal,
		Status: models.PaymentStatusSuccessful,
		PassID: updated.ID,
	}

	if err := s.sessions.SetPass(&updated); err != nil {
		return nil, nil, err
	}
	if err := s.sessions.PrependPayment(*payment); err != nil {
		return nil, nil, err
	}

	utils.InfoLogger.Printf("renewed pass %s until %s (%d months, ref=%s)",
		updated.ID, updated.ExpiryDate, months, charge.ReferenceID)
	return &updated, payment, nil
}
