// Copyright 2026 AIStore Client Authors
// SPDX-License-Identifier: Apache-2.0

package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/timoha/aistore/pkg/api"
)

// newTestClient spins up a test gateway and a client pointed at it. Both
// are torn down with the test, including idle connections, so the leak
// detector stays quiet.
func newTestClient(t *testing.T, handler http.Handler) *api.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	t.Cleanup(srv.Client().CloseIdleConnections)

	client, err := api.NewClient(api.Config{Endpoint: srv.URL, HTTPClient: srv.Client()})
	require.NoError(t, err)
	return client
}
