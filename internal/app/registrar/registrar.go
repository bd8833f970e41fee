// Package registrar creates store accounts for the subjects of a parse report
// and records their ucoin history as balance operations.
package registrar

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/ucoins-backend/internal/domain"
	"github.com/heartmarshall/ucoins-backend/pkg/ctxutil"
)

// customerRepo defines the persistence the registrar needs.
type customerRepo interface {
	CreateUser(ctx context.Context, u *domain.User) error
	CreateCustomer(ctx context.Context, c *domain.Customer) error
	AddOperations(ctx context.Context, ops []domain.BalanceOperation) (int64, error)
	UserExists(ctx context.Context, id uuid.UUID) (bool, error)
}

// txManager defines the transaction manager interface needed by the registrar.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// reportWriter stores the list of failed subjects.
type reportWriter interface {
	WriteFile(path string, v any) error
}

// Result holds registration statistics.
type Result struct {
	Registered int
	// Checked counts subjects that passed validation in a dry run.
	Checked    int
	Operations int64
	Failed     []domain.SubjectError
	ErrorsPath string
}

// Registrar registers report subjects one transaction at a time.
type Registrar struct {
	log  *slog.Logger
	repo customerRepo
	tx   txManager
	cfg  Config
	hash func(password string) (string, error)
	now  func() time.Time
}

// New creates a Registrar.
func New(log *slog.Logger, repo customerRepo, tx txManager, cfg Config) *Registrar {
	return &Registrar{
		log:  log,
		repo: repo,
		tx:   tx,
		cfg:  cfg,
		hash: func(password string) (string, error) {
			h, err := bcrypt.GenerateFromPassword([]byte(password), cfg.PasswordHashCost)
			return string(h), err
		},
		now: time.Now,
	}
}

// Register stores every report. A subject that cannot be stored is added to
// Result.Failed and the rest continue; only a missing operator or a cancelled
// context stops the run.
//
// The operator from ctxutil.OperatorIDFromCtx, if any, is recorded as the
// admin of every balance operation.
func (r *Registrar) Register(ctx context.Context, reports []domain.SubjectReport) (Result, error) {
	var adminID *uuid.UUID
	if id, ok := ctxutil.OperatorIDFromCtx(ctx); ok {
		if !r.cfg.DryRun {
			exists, err := r.repo.UserExists(ctx, id)
			if err != nil {
				return Result{}, fmt.Errorf("check operator: %w", err)
			}
			if !exists {
				return Result{}, fmt.Errorf("operator %s: %w", id, domain.ErrNotFound)
			}
		}
		adminID = &id
	}

	res := Result{Failed: make([]domain.SubjectError, 0)}
	for i, rep := range reports {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		n, err := r.registerOne(ctx, rep, adminID)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return res, err
			}
			fail := domain.SubjectError{Subject: subjectName(rep.Name), Reason: failureReason(err), Row: i + 1}
			r.log.WarnContext(ctx, "subject not registered",
				slog.String("run_id", ctxutil.RunIDFromCtx(ctx)),
				slog.String("subject", fail.Subject),
				slog.String("reason", fail.Reason),
				slog.String("error", err.Error()))
			res.Failed = append(res.Failed, fail)
			continue
		}

		res.Operations += n
		if r.cfg.DryRun {
			res.Checked++
		} else {
			res.Registered++
		}
	}

	return res, nil
}

func (r *Registrar) registerOne(ctx context.Context, rep domain.SubjectReport, adminID *uuid.UUID) (int64, error) {
	if err := rep.Validate(); err != nil {
		return 0, err
	}
	name, err := rep.Name.ToFullName()
	if err != nil {
		return 0, err
	}

	now := r.now()
	username := name.Username()
	user := &domain.User{ID: uuid.New(), Username: username, CreatedAt: now}
	customer := &domain.Customer{
		ID:         uuid.New(),
		UserID:     user.ID,
		LastName:   name.Last,
		FirstName:  name.First,
		Patronymic: name.Patronymic,
		Role:       domain.Role(r.cfg.Role),
		CreatedAt:  now,
	}

	ops := make([]domain.BalanceOperation, 0, len(rep.Replenishments)+len(rep.WriteOffs))
	for _, e := range rep.Replenishments {
		if err := customer.IncreaseBalance(e.Count); err != nil {
			return 0, err
		}
		ops = append(ops, operation(user.ID, adminID, domain.OperationReplenish, e, now))
	}
	for _, e := range rep.WriteOffs {
		if err := customer.DecreaseBalance(e.Count); err != nil {
			return 0, err
		}
		ops = append(ops, operation(user.ID, adminID, domain.OperationWriteOff, e, now))
	}

	if r.cfg.DryRun {
		return int64(len(ops)), nil
	}

	// The initial password is the username.
	user.PasswordHash, err = r.hash(username)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	var written int64
	err = r.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := r.repo.CreateUser(txCtx, user); err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		if err := r.repo.CreateCustomer(txCtx, customer); err != nil {
			return fmt.Errorf("create customer: %w", err)
		}
		n, err := r.repo.AddOperations(txCtx, ops)
		if err != nil {
			return fmt.Errorf("add balance operations: %w", err)
		}
		written = n
		return nil
	})
	if err != nil {
		return 0, err
	}

	r.log.DebugContext(ctx, "subject registered",
		slog.String("user_id", user.ID.String()),
		slog.String("username", username),
		slog.Int("balance", customer.Balance))
	return written, nil
}

func operation(userID uuid.UUID, adminID *uuid.UUID, kind domain.OperationKind, e domain.EntryReport, now time.Time) domain.BalanceOperation {
	return domain.BalanceOperation{
		ID:        uuid.New(),
		UserID:    userID,
		AdminID:   adminID,
		Kind:      kind,
		Comment:   e.Reason,
		Count:     e.Count,
		CreatedAt: now,
	}
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrAlreadyExists):
		return domain.ReasonAlreadyExists
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrMalformedName),
		errors.Is(err, domain.ErrNegativeBalance):
		return domain.ReasonInvalidReport
	default:
		return domain.ReasonRegistrationFail
	}
}

func subjectName(p domain.NameParts) string {
	if p.FullName != "" {
		return p.FullName
	}
	return strings.Join(strings.Fields(strings.Join([]string{p.LastName, p.FirstName, p.Patronymic}, " ")), " ")
}

// Run registers the reports and writes the failed subjects next to the report file.
func Run(ctx context.Context, cfg *Config, reports []domain.SubjectReport, repo customerRepo, tx txManager, out reportWriter, log *slog.Logger) (Result, error) {
	res, err := New(log, repo, tx, *cfg).Register(ctx, reports)
	if err != nil {
		return res, err
	}

	res.ErrorsPath = filepath.Join(filepath.Dir(cfg.ReportPath), cfg.ErrorsFile)
	if err := out.WriteFile(res.ErrorsPath, res.Failed); err != nil {
		return res, fmt.Errorf("write registration errors: %w", err)
	}

	log.InfoContext(ctx, "ucoins-register complete",
		slog.String("run_id", ctxutil.RunIDFromCtx(ctx)),
		slog.Bool("dry_run", cfg.DryRun),
		slog.Int("subjects", len(reports)),
		slog.Int("registered", res.Registered),
		slog.Int("checked", res.Checked),
		slog.Int64("operations", res.Operations),
		slog.Int("failed", len(res.Failed)),
		slog.String("error_list", res.ErrorsPath),
	)
	return res, nil
}
