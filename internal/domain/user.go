package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// User is a login account.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// Customer holds the store profile and ucoin balance of a user.
type Customer struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	LastName   string
	FirstName  string
	Patronymic string
	Balance    int
	Role       Role
	CreatedAt  time.Time
}

// Name joins the customer's name parts.
func (c *Customer) Name() FullName {
	n := FullName{Last: c.LastName, First: c.FirstName, Patronymic: c.Patronymic}
	n.Raw = n.String()
	return n
}

// IncreaseBalance adds delta ucoins.
func (c *Customer) IncreaseBalance(delta int) error {
	if delta < 0 {
		return NewValidationError("delta", fmt.Sprintf("must be >= 0, got %d", delta))
	}
	c.Balance += delta
	return nil
}

// DecreaseBalance removes delta ucoins. The balance never goes below zero.
func (c *Customer) DecreaseBalance(delta int) error {
	if delta < 0 {
		return NewValidationError("delta", fmt.Sprintf("must be >= 0, got %d", delta))
	}
	if c.Balance < delta {
		return fmt.Errorf("customer %s: balance %d, write-off %d: %w", c.ID, c.Balance, delta, ErrNegativeBalance)
	}
	c.Balance -= delta
	return nil
}

// BalanceOperation is one stored replenishment or write-off.
type BalanceOperation struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	AdminID   *uuid.UUID
	Kind      OperationKind
	Comment   string
	Count     int
	CreatedAt time.Time
}
