package api

import (
	"hydro-command/internal/pkg/errs"
)

func isValidation(err error) bool {
	return errs.Is(err, errs.ErrDomainValidation)
}

func deviceParam(raw string) *string {
	if raw == "" {
		return nil
	}
	return &raw
}
