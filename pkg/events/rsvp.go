package events

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidRSVP       = errors.New("invalid rsvp")
	ErrEventFull         = errors.New("event is full")
	ErrAlreadyRegistered = errors.New("already registered for this event")
	ErrRSVPDisabled      = errors.New("rsvp is not available")
)

const (
	InvestorYes = "yes"
	InvestorNo  = "no"
)

type RSVPRequest struct {
	FirstName           string `json:"first_name" binding:"required"`
	LastName            string `json:"last_name" binding:"required"`
	Email               string `json:"email" binding:"required,email"`
	Company             string `json:"company"`
	Role                string `json:"role"`
	IsInvestor          string `json:"is_investor" binding:"required,oneof=yes no"`
	FundName            string `json:"fund_name"`
	DietaryRestrictions string `json:"dietary_restrictions"`
	Questions           string `json:"questions"`
}

// Validate enforces the rules struct tags cannot express.
func (r RSVPRequest) Validate() error {
	if strings.TrimSpace(r.FirstName) == "" {
		return fmt.Errorf("%w: first name is required", ErrInvalidRSVP)
	}
	if strings.TrimSpace(r.LastName) == "" {
		return fmt.Errorf("%w: last name is required", ErrInvalidRSVP)
	}
	if r.IsInvestor != InvestorYes && r.IsInvestor != InvestorNo {
		return fmt.Errorf("%w: is_investor must be yes or no", ErrInvalidRSVP)
	}
	if r.IsInvestor == InvestorYes && strings.TrimSpace(r.FundName) == "" {
		return fmt.Errorf("%w: fund name is required for investors", ErrInvalidRSVP)
	}
	return nil
}

type RSVP struct {
	ID                  string    `json:"id"`
	EventID             string    `json:"event_id"`
	FirstName           string    `json:"first_name"`
	LastName            string    `json:"last_name"`
	Email               string    `json:"email"`
	Company             string    `json:"company,omitempty"`
	Role                string    `json:"role,omitempty"`
	IsInvestor          bool      `json:"is_investor"`
	FundName            string    `json:"fund_name,omitempty"`
	DietaryRestrictions string    `json:"dietary_restrictions,omitempty"`
	Questions           string    `json:"questions,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
}
