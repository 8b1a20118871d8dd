package services

import (
	"encoding/json"
	"sync"

	"github.com/muthulakshmimuthu313-dot/smart-buspass-application/database"
	"github.com/muthulakshmimuthu313-dot/smart-buspass-application/models"
	"github.com/muthulakshmimuthu313-dot/smart-buspass-application/utils"
)

// Kunci penyimpanan, sama persis dengan aplikasi mobile lama.
const (
	KeyUser     = "sbp_user"
	KeyPass     = "sbp_pass"
	KeyPayments = "sbp_payments"
)

// SessionStore holds the single user session: current user, current pass and
// the payment ledger. Every mutation is mirrored synchronously to the
// key-value store; a nil user or pass removes its key instead of storing an
// empty marker. The app serves one session at a time, like the original
// single-browser front end.
type SessionStore struct {
	mu       sync.Mutex
	kv       *database.KVStore
	user     *models.User
	pass     *models.BusPass
	payments []models.PaymentRecord
}

func NewSessionStore(kv *database.KVStore) *SessionStore {
	return &SessionStore{
		kv:       kv,
		payments: []models.PaymentRecord{},
	}
}

// Restore loads persisted session state on startup. Missing keys default to
// absent (user, pass) or an empty ledger. A value that fails to parse is
// logged and treated as absent; the shape itself is otherwise trusted.
func (s *SessionStore) Restore() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if raw, ok, err := s.kv.Get(KeyUser); err != nil {
		return err
	} else if ok {
		var user models.User
		if err := json.Unmarshal([]byte(raw), &user); err != nil {
			utils.ErrorLogger.Printf("discarding unreadable %s: %v", KeyUser, err)
		} else {
			s.user = &user
		}
	}

	if raw, ok, err := s.kv.Get(KeyPass); err != nil {
		return err
	} else if ok {
		var pass models.BusPass
		if err := json.Unmarshal([]byte(raw), &pass); err != nil {
			utils.ErrorLogger.Printf("discarding unreadable %s: %v", KeyPass, err)
		} else {
			s.pass = &pass
		}
	}

	s.payments = []models.PaymentRecord{}
	if raw, ok, err := s.kv.Get(KeyPayments); err != nil {
		return err
	} else if ok {
		var payments []models.PaymentRecord
		if err := json.Unmarshal([]byte(raw), &payments); err != nil {
			utils.ErrorLogger.Printf("discarding unreadable %s: %v", KeyPayments, err)
		} else if payments != nil {
			s.payments = payments
		}
	}

	return nil
}

func (s *SessionStore) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

func (s *SessionStore) Pass() *models.BusPass {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pass
}

// Payments returns a copy of the ledger, newest first.
func (s *SessionStore) Payments() []models.PaymentRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.PaymentRecord(nil), s.payments...)
}

// SetUser replaces the session user and mirrors it. A nil user removes the
// persisted key.
func (s *SessionStore) SetUser(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
	if user == nil {
		return s.kv.Delete(KeyUser)
	}
	return s.persist(KeyUser, user)
}

// SetPass replaces (or clears) the session pass and mirrors it. Issuance
// always replaces an existing pass; there is no active-pass check.
func (s *SessionStore) SetPass(pass *models.BusPass) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pass = pass
	if pass == nil {
		return s.kv.Delete(KeyPass)
	}
	return s.persist(KeyPass, pass)
}

// PrependPayment inserts a record at the front of the ledger, keeping
// newest-first order, and mirrors the whole list.
func (s *SessionStore) PrependPayment(payment models.PaymentRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments = append([]models.PaymentRecord{payment}, s.payments...)
	return s.persist(KeyPayments, s.payments)
}

// Logout resets the in-memory session and wipes the persistent store.
func (s *SessionStore) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.pass = nil
	s.payments = []models.PaymentRecord{}
	return s.kv.Clear()
}

// persist mirrors one value as JSON. Caller must hold the lock.
func (s *SessionStore) persist(key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.kv.Set(key, string(raw))
}
