// Package access decides which applications a principal may see or review.
package access

import "errors"

var (
	ErrForbidden       = errors.New("access denied")
	ErrUnauthenticated = errors.New("authentication required")
)

type Role string

const (
	RoleStudent Role = "student"
	RoleOfficer Role = "officer"
)

// Principal is the acting user as resolved by the auth layer. ConstituencyID is the
// reviewer binding; it is trusted as given.
type Principal struct {
	UserID         string
	Username       string
	Role           Role
	SuperAdmin     bool
	ConstituencyID *uint64
}

type ScopeKind int

const (
	ScopeNone ScopeKind = iota
	ScopeAll
	ScopeConstituency
	ScopeStudent
)

func (k ScopeKind) String() string {
	switch k {
	case ScopeAll:
		return "all"
	case ScopeConstituency:
		return "constituency"
	case ScopeStudent:
		return "student"
	default:
		return "none"
	}
}

// Scope is the slice of applications a principal is allowed to touch.
type Scope struct {
	Kind           ScopeKind
	ConstituencyID uint64
	StudentID      string
}

// ScopeFor resolves the visibility scope. Anything unrecognised falls through to ScopeNone.
func ScopeFor(p *Principal) Scope {
	switch {
	case p == nil || p.UserID == "":
		return Scope{Kind: ScopeNone}
	case p.SuperAdmin:
		return Scope{Kind: ScopeAll}
	case p.ConstituencyID != nil && *p.ConstituencyID != 0:
		return Scope{Kind: ScopeConstituency, ConstituencyID: *p.ConstituencyID}
	case p.Role == RoleStudent:
		return Scope{Kind: ScopeStudent, StudentID: p.UserID}
	default:
		// staff without a binding
		return Scope{Kind: ScopeNone}
	}
}

// Permits reports whether a record owned by studentID in constituencyID is inside the scope.
func (s Scope) Permits(constituencyID uint64, studentID string) bool {
	switch s.Kind {
	case ScopeAll:
		return true
	case ScopeConstituency:
		return constituencyID != 0 && constituencyID == s.ConstituencyID
	case ScopeStudent:
		return studentID != "" && studentID == s.StudentID
	default:
		return false
	}
}

// CanReview is stricter than Permits: students never review, even their own record.
func (s Scope) CanReview(constituencyID uint64) bool {
	switch s.Kind {
	case ScopeAll:
		return true
	case ScopeConstituency:
		return constituencyID != 0 && constituencyID == s.ConstituencyID
	default:
		return false
	}
}
