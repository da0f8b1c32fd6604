package domain

import (
	"time"

	"github.com/google/uuid"
)

// Submission is a single salary contribution. UserID and TokenHash are both
// nullable but at least one is set at creation. UserID transitions from nil
// to a value exactly once (identity migration) and is otherwise immutable.
// Submissions are never deleted.
type Submission struct {
	ID              uuid.UUID
	Company         string
	JobTitle        string
	Location        string
	BaseSalary      Money
	Bonus           Money
	Stock           Money
	UserID          *uuid.UUID
	TokenHash       *string
	SubmittedAt     time.Time
	AccessExpiresAt time.Time
}

// TotalCompensation is base + bonus + stock.
func (s *Submission) TotalCompensation() Money {
	return s.BaseSalary + s.Bonus + s.Stock
}
