package models

// PassStatus adalah status berlaku dari sebuah bus pass.
type PassStatus string

const (
	PassStatusActive  PassStatus = "ACTIVE"
	PassStatusExpired PassStatus = "EXPIRED"
	PassStatusPending PassStatus = "PENDING"
)

// BusPass represents a time-bounded transit authorization for one user and
// one route. Issuance creates it, renewal updates ExpiryDate and Status in
// place, logout destroys it. At most one pass exists per session.
//
// EXPIRED and PENDING are representable for forward-compatibility (an expiry
// sweep could produce them) but no code path here sets them.
type BusPass struct {
	ID         string     `json:"id"`
	UserID     string     `json:"userId"`
	RouteFrom  string     `json:"routeFrom"`
	RouteTo    string     `json:"routeTo"`
	IssueDate  string     `json:"issueDate"`  // dd/mm/yyyy
	ExpiryDate string     `json:"expiryDate"` // dd/mm/yyyy
	Status     PassStatus `json:"status"`
	QRCode     string     `json:"qrCode"` // opaque payload: PASS_<passId>_<studentId>
}
