package errors

import (
	"context"
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// sanitize returns the error message, collapsed to a generic category in
// production so driver internals never reach clients
func sanitize(err error) string {
	if err == nil {
		return ""
	}

	if os.Getenv("ENVIRONMENT") != "production" {
		return err.Error()
	}

	// typed classification first
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return "database operation failed"
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return "resource not found"
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return "request timed out"
	}

	if errors.Is(err, context.Canceled) {
		return "request canceled"
	}

	// fallback to string matching for unknown error types
	msg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(msg, "timeout") || strings.Contains(msg, "deadline"):
		return "request timed out"
	case strings.Contains(msg, "not found") || strings.Contains(msg, "no rows"):
		return "resource not found"
	case strings.Contains(msg, "database") || strings.Contains(msg, "sql") ||
		strings.Contains(msg, "postgres") || strings.Contains(msg, "pgx"):
		return "database operation failed"
	case strings.Contains(msg, "connection") || strings.Contains(msg, "network") ||
		strings.Contains(msg, "dial"):
		return "connection error occurred"
	default:
		return "an error occurred"
	}
}

// IsNoRows reports whether the error is a pgx no-rows result.
func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// validates an integer id parameter from the request path; responds with
// 404 on a malformed id since program ids are store-assigned integers
func ValidatePathID(c *gin.Context, paramName string) (int, bool) {
	raw := c.Param(paramName)

	if raw == "" {
		BadRequest(c, "missing "+paramName, nil)
		return 0, false
	}

	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		NotFound(c, "program")
		return 0, false
	}

	return id, true
}
