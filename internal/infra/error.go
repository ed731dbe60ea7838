package infra

import (
	"errors"
	"log/slog"

	"checkout-orchestrator/internal/pkg/errs"
)

type ErrorKind string

// Error is returned by every infra adapter so the usecase layer can branch on Kind
// without knowing which backend (Stripe, Redis, memory) produced it.
type Error struct {
	Kind ErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e Error) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e Error) Unwrap() error {
	return e.err
}

func WrapErr(slogger *slog.Logger, kind ErrorKind, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}

	slogger.Error("Infra error: "+msg, logArgs...)

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return Error{Kind: kind, msg: msg, err: err}
}

func NewErr(kind ErrorKind, msg string) error {
	return Error{Kind: kind, msg: msg}
}

func IsKind(err error, kind ErrorKind) bool {
	var e Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindNotFound     ErrorKind = "NOT_FOUND"
	KindUnavailable  ErrorKind = "UNAVAILABLE"
	KindRejected     ErrorKind = "REJECTED"
	KindContract     ErrorKind = "CONTRACT"
	KindStoreFailure ErrorKind = "STORE_FAILURE"
)
