package handlers

import (
	"errors"
	"net/http"
	"strings"

	"auditqc/pkg"
)

// mapCoreError projects the error taxonomy onto HTTP. The validation branch
// keeps the specific message (e.g. "stepId is required") because it is the
// caller's input being rejected, not an internal detail.
func mapCoreError(err error) *pkg.AppError {
	var upstreamErr *pkg.UpstreamStatusError
	switch {
	case errors.Is(err, pkg.ErrValidation):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", validationMessage(err), http.StatusBadRequest)
	case errors.Is(err, pkg.ErrUnauthorized):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
	case errors.Is(err, pkg.ErrConflict):
		return pkg.NewDomainErrorSimple("VERSION_CONFLICT", "The entity changed since it was last read; reload it and reapply the edit", http.StatusConflict)
	case errors.Is(err, pkg.ErrNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Entity not found", http.StatusNotFound)
	case errors.As(err, &upstreamErr):
		return pkg.NewDomainError("UPSTREAM_ERROR", upstreamErr.Message, err, upstreamErr.StatusCode)
	case errors.Is(err, pkg.ErrBadGateway):
		return pkg.NewDomainErrorSimple("BAD_GATEWAY", "QC backend unreachable", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func validationMessage(err error) string {
	msg := strings.TrimPrefix(err.Error(), pkg.ErrValidation.Error()+": ")
	if msg == "" {
		return "Invalid request"
	}
	return msg
}
