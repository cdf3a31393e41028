// Copyright 2026 AIStore Client Authors
// SPDX-License-Identifier: Apache-2.0

// Package apierr defines the error type returned for non-2xx cluster
// responses. Transport failures are not wrapped in it; use errors.As to
// distinguish the two.
package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error carries the HTTP status and the cluster's error message for a
// failed request. The dispatcher is the only producer.
type Error struct {
	Status  int
	Method  string
	Path    string
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s %s: %s", e.Method, e.Path, http.StatusText(e.Status))
	}
	return fmt.Sprintf("%s %s: %s (%d)", e.Method, e.Path, e.Message, e.Status)
}

// Status returns the HTTP status carried by err, or 0 if err is not an
// API error.
func Status(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// IsNotFound reports whether err is a 404 from the cluster.
func IsNotFound(err error) bool {
	return Status(err) == http.StatusNotFound
}
