// Copyright 2026 AIStore Client Authors
// SPDX-License-Identifier: Apache-2.0

package api_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timoha/aistore/pkg/api"
	"github.com/timoha/aistore/pkg/apierr"
	"github.com/timoha/aistore/pkg/cmn"
)

func TestNewClientEndpointValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		endpoint string
		wantErr  bool
	}{
		{"http", "http://localhost:8080", false},
		{"https", "https://ais.example.com", false},
		{"trailing slash", "http://localhost:8080/", false},
		{"empty", "", true},
		{"no scheme", "localhost:8080", true},
		{"bad scheme", "ftp://localhost:8080", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := api.NewClient(api.Config{Endpoint: tt.endpoint})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRequestErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{
			name:        "plain text body",
			status:      http.StatusConflict,
			body:        "bucket already exists",
			wantMessage: "bucket already exists",
		},
		{
			name:        "json wrapped message",
			status:      http.StatusBadRequest,
			body:        `{"message": "invalid action"}`,
			wantMessage: "invalid action",
		},
		{
			name:   "empty body",
			status: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))

			err := client.Bucket(cmn.Bck{Name: "images"}).Destroy(context.Background())
			require.Error(t, err)

			var apiErr *apierr.Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, http.MethodDelete, apiErr.Method)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
			assert.Equal(t, tt.status, apierr.Status(err))
		})
	}
}

func TestRequestTransportError(t *testing.T) {
	t.Parallel()

	// nobody listens here
	client, err := api.NewClient(api.Config{Endpoint: "http://127.0.0.1:1"})
	require.NoError(t, err)

	_, headErr := client.Bucket(cmn.Bck{Name: "images"}).Object("cat.png").Head(context.Background())
	require.Error(t, headErr)
	assert.Zero(t, apierr.Status(headErr), "transport errors are not API errors")
}

func TestGetClusterMap(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/daemon", r.URL.Path)
		assert.Equal(t, cmn.WhatSmap, r.URL.Query().Get(cmn.QparamWhat))
		_, _ = w.Write([]byte(`{
			"version": "14",
			"proxy_si": {"daemon_id": "p1", "public_net": {"direct_url": "http://10.0.0.1:8080"}},
			"pmap": {"p1": {"daemon_id": "p1"}},
			"tmap": {"t1": {"daemon_id": "t1"}}
		}`))
	}))

	smap, err := client.GetClusterMap(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 14, smap.Version)
	assert.Len(t, smap.Proxies, 1)
	assert.Len(t, smap.Targets, 1)

	primary, err := client.GetPrimaryProxyURL(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "http://10.0.0.1:8080", primary)
}
