// Package customer persists store users, their customer profiles and
// ucoin balance operations.
package customer

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/ucoins-backend/internal/adapter/postgres"
	"github.com/heartmarshall/ucoins-backend/internal/domain"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var customerColumns = []string{
	"c.id", "c.user_id", "c.last_name", "c.first_name", "c.patronymic", "c.balance", "c.role", "c.created_at",
}

// Repo is the PostgreSQL store for users, customers and balance operations.
// Every method runs on the transaction in ctx when there is one.
type Repo struct {
	db postgres.Querier
}

// New creates a new customer repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// CreateUser inserts a login account. A taken username maps to domain.ErrAlreadyExists.
func (r *Repo) CreateUser(ctx context.Context, u *domain.User) error {
	sql, args, err := psql.Insert("users").
		Columns("id", "username", "password_hash", "created_at").
		Values(u.ID, u.Username, u.PasswordHash, u.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert user: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "user", u.Username)
	}
	return nil
}

// CreateCustomer inserts a customer profile for an existing user.
func (r *Repo) CreateCustomer(ctx context.Context, c *domain.Customer) error {
	sql, args, err := psql.Insert("customers").
		Columns("id", "user_id", "last_name", "first_name", "patronymic", "balance", "role", "created_at").
		Values(c.ID, c.UserID, c.LastName, c.FirstName, c.Patronymic, c.Balance, string(c.Role), c.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert customer: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "customer", c.ID)
	}
	return nil
}

// AddOperations inserts balance operations in one statement and returns the
// number of rows written.
func (r *Repo) AddOperations(ctx context.Context, ops []domain.BalanceOperation) (int64, error) {
	if len(ops) == 0 {
		return 0, nil
	}

	query := psql.Insert("balance_operations").
		Columns("id", "user_id", "admin_id", "kind", "comment", "count", "created_at")
	for _, op := range ops {
		query = query.Values(op.ID, op.UserID, op.AdminID, string(op.Kind), op.Comment, op.Count, op.CreatedAt)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert balance operations: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "balance_operation", ops[0].UserID)
	}
	return tag.RowsAffected(), nil
}

// UserExists reports whether a user with the given ID is stored.
func (r *Repo) UserExists(ctx context.Context, id uuid.UUID) (bool, error) {
	sql, args, err := psql.Select("1").
		Prefix("SELECT EXISTS (").
		From("users").
		Where(squirrel.Eq{"id": id}).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build user exists: %w", err)
	}

	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "user", id)
	}
	return exists, nil
}

// GetByUsername returns the customer profile of the user with the given username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.Customer, error) {
	sql, args, err := psql.Select(customerColumns...).
		From("customers c").
		Join("users u ON u.id = c.user_id").
		Where(squirrel.Eq{"u.username": username}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get customer: %w", err)
	}

	var (
		c    domain.Customer
		role string
	)
	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(
		&c.ID, &c.UserID, &c.LastName, &c.FirstName, &c.Patronymic, &c.Balance, &role, &c.CreatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "customer", username)
	}
	c.Role = domain.Role(role)
	return &c, nil
}
