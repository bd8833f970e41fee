package ucoins

import (
	"log/slog"

	"github.com/heartmarshall/ucoins-backend/internal/domain"
)

// assemble turns walker output into the run result. Subjects are visited in
// sheet order, so both Reports and Errors keep encounter order.
func assemble(subjects []subject, warnings []domain.Warning, log *slog.Logger) domain.RunResult {
	res := domain.NewRunResult()
	res.Warnings = warnings

	for _, s := range subjects {
		if s.err != nil {
			res.Errors = append(res.Errors, *s.err)
			continue
		}

		report, err := s.ledger.Report()
		if err != nil {
			log.Warn("subject rejected",
				slog.Int("row", s.row),
				slog.String("subject", s.ledger.Name.String()),
				slog.Int("balance", s.ledger.Balance()),
			)
			res.Errors = append(res.Errors, domain.SubjectError{
				Subject: s.ledger.Name.String(),
				Reason:  domain.ReasonNegativeBalance,
				Row:     s.row,
			})
			continue
		}
		res.Reports = append(res.Reports, report)
	}

	return res
}
