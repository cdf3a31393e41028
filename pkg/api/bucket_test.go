// Copyright 2026 AIStore Client Authors
// SPDX-License-Identifier: Apache-2.0

package api_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timoha/aistore/pkg/api"
	"github.com/timoha/aistore/pkg/cmn"
)

func TestBucketActions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		bck        cmn.Bck
		call       func(ctx context.Context, b *api.Bucket) error
		wantMethod string
		wantAction string
		wantProv   string
	}{
		{
			name:       "create",
			bck:        cmn.Bck{Name: "images"},
			call:       func(ctx context.Context, b *api.Bucket) error { return b.Create(ctx) },
			wantMethod: http.MethodPost,
			wantAction: cmn.ActCreateBck,
		},
		{
			name:       "destroy",
			bck:        cmn.Bck{Name: "images"},
			call:       func(ctx context.Context, b *api.Bucket) error { return b.Destroy(ctx) },
			wantMethod: http.MethodDelete,
			wantAction: cmn.ActDestroyBck,
		},
		{
			name:       "evict remote",
			bck:        cmn.Bck{Name: "images", Provider: cmn.ProviderAmazon},
			call:       func(ctx context.Context, b *api.Bucket) error { return b.Evict(ctx) },
			wantMethod: http.MethodDelete,
			wantAction: cmn.ActEvictRemoteBck,
			wantProv:   cmn.ProviderAmazon,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var (
				gotMethod, gotPath, gotProv string
				gotMsg                      cmn.ActMsg
			)
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotMethod, gotPath = r.Method, r.URL.Path
				gotProv = r.URL.Query().Get(cmn.QparamProvider)
				require.NoError(t, json.NewDecoder(r.Body).Decode(&gotMsg))
			}))

			require.NoError(t, tt.call(context.Background(), client.Bucket(tt.bck)))
			assert.Equal(t, tt.wantMethod, gotMethod)
			assert.Equal(t, "/v1/buckets/images", gotPath)
			assert.Equal(t, tt.wantAction, gotMsg.Action)
			assert.Equal(t, tt.wantProv, gotProv)
		})
	}
}

func TestBucketCreateValidatesName(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request may reach the cluster for an invalid name")
	}))
	err := client.Bucket(cmn.Bck{Name: "bad/name"}).Create(context.Background())
	require.Error(t, err)
}

func TestBucketListPagination(t *testing.T) {
	t.Parallel()

	// three pages of two entries each
	pages := map[string]cmn.BucketList{
		"": {
			Entries:           []*cmn.ObjEntry{{Name: "a", Size: 1}, {Name: "b", Size: 2}},
			ContinuationToken: "tok1",
		},
		"tok1": {
			Entries:           []*cmn.ObjEntry{{Name: "c", Size: 3}, {Name: "d", Size: 4}},
			ContinuationToken: "tok2",
		},
		"tok2": {
			Entries: []*cmn.ObjEntry{{Name: "e", Size: 5}},
		},
	}

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var msg cmn.ActMsg
		require.NoError(t, json.NewDecoder(r.Body).Decode(&msg))
		assert.Equal(t, cmn.ActList, msg.Action)

		raw, err := json.Marshal(msg.Value)
		require.NoError(t, err)
		var lsmsg cmn.ListMsg
		require.NoError(t, json.Unmarshal(raw, &lsmsg))
		assert.Equal(t, "shards/", lsmsg.Prefix)

		page, ok := pages[lsmsg.ContinuationToken]
		require.True(t, ok, "unexpected continuation token %q", lsmsg.ContinuationToken)
		require.NoError(t, json.NewEncoder(w).Encode(page))
	}))

	entries, err := client.Bucket(cmn.Bck{Name: "images"}).
		List(context.Background(), api.ListArgs{Prefix: "shards/", PageSize: 2})
	require.NoError(t, err)

	want := []*cmn.ObjEntry{
		{Name: "a", Size: 1}, {Name: "b", Size: 2},
		{Name: "c", Size: 3}, {Name: "d", Size: 4},
		{Name: "e", Size: 5},
	}
	if diff := cmp.Diff(want, entries); diff != "" {
		t.Errorf("listed entries mismatch (-want +got):\n%s", diff)
	}
}

func TestBucketListLimit(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := cmn.BucketList{ContinuationToken: "more"}
		for i := 0; i < 10; i++ {
			page.Entries = append(page.Entries, &cmn.ObjEntry{Name: fmt.Sprintf("obj-%d", i)})
		}
		require.NoError(t, json.NewEncoder(w).Encode(page))
	}))

	entries, err := client.Bucket(cmn.Bck{Name: "images"}).
		List(context.Background(), api.ListArgs{Limit: 7})
	require.NoError(t, err)
	assert.Len(t, entries, 7)
}

func TestListBuckets(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/buckets/*", r.URL.Path)
		assert.Equal(t, cmn.ProviderAIS, r.URL.Query().Get(cmn.QparamProvider))
		_, _ = w.Write([]byte(`[{"name": "images"}, {"name": "models"}]`))
	}))

	bcks, err := client.ListBuckets(context.Background(), cmn.ProviderAIS)
	require.NoError(t, err)
	require.Len(t, bcks, 2)
	assert.Equal(t, "images", bcks[0].Name)
}
