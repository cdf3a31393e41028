// Copyright 2026 AIStore Client Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/timoha/aistore/pkg/cmn"
)

// Bucket binds a bucket name to the dispatcher that talks to its cluster.
// The handle itself is stateless; every method issues exactly one request.
type Bucket struct {
	client *Client
	bck    cmn.Bck
}

// Bucket returns a handle for the given bucket. The handle does not check
// that the bucket exists.
func (c *Client) Bucket(bck cmn.Bck) *Bucket {
	return &Bucket{client: c, bck: bck}
}

// Bck returns the bucket's name and provider.
func (b *Bucket) Bck() cmn.Bck { return b.bck }

// Name returns the bucket name.
func (b *Bucket) Name() string { return b.bck.Name }

// Client returns the dispatcher the bucket is bound to.
func (b *Bucket) Client() *Client { return b.client }

// Object returns a handle for the named object in this bucket.
func (b *Bucket) Object(objName string) *Object {
	return &Object{bck: b, name: objName}
}

// qparams returns the bucket's default query parameters. Callers own the
// returned map and may add to it.
func (b *Bucket) qparams() url.Values {
	q := url.Values{}
	if b.bck.Provider != "" {
		q.Set(cmn.QparamProvider, b.bck.Provider)
	}
	return q
}

// Create creates the bucket on the cluster.
func (b *Bucket) Create(ctx context.Context) error {
	if err := b.bck.Validate(); err != nil {
		return err
	}
	return b.act(ctx, http.MethodPost, cmn.ActMsg{Action: cmn.ActCreateBck})
}

// Destroy removes the bucket and all of its objects.
func (b *Bucket) Destroy(ctx context.Context) error {
	return b.act(ctx, http.MethodDelete, cmn.ActMsg{Action: cmn.ActDestroyBck})
}

// Evict drops the cluster's cached copies of a remote bucket's objects.
// The remote bucket itself is untouched.
func (b *Bucket) Evict(ctx context.Context) error {
	return b.act(ctx, http.MethodDelete, cmn.ActMsg{Action: cmn.ActEvictRemoteBck})
}

func (b *Bucket) act(ctx context.Context, method string, msg cmn.ActMsg) error {
	body, hdr, err := jsonBody(msg)
	if err != nil {
		return err
	}
	_, err = b.client.do(ctx, &ReqArgs{
		Method: method,
		Path:   cmn.PathBuckets + "/" + b.bck.Name,
		Query:  b.qparams(),
		Header: hdr,
		Body:   body,
	})
	return err
}

// ListArgs narrows an object listing.
type ListArgs struct {
	// Prefix keeps only objects whose names start with it.
	Prefix string
	// PageSize is the page size requested from the cluster; zero lets the
	// cluster pick its default.
	PageSize int
	// Limit caps the total number of entries returned; zero means all.
	Limit int
}

// List returns the bucket's objects, fetching pages until the cluster
// reports the listing complete (or Limit is reached).
func (b *Bucket) List(ctx context.Context, args ListArgs) ([]*cmn.ObjEntry, error) {
	var (
		entries []*cmn.ObjEntry
		msg     = cmn.ListMsg{Prefix: args.Prefix, PageSize: args.PageSize}
	)
	for {
		page, err := b.ListPage(ctx, &msg)
		if err != nil {
			return nil, err
		}
		entries = append(entries, page.Entries...)
		if args.Limit > 0 && len(entries) >= args.Limit {
			return entries[:args.Limit], nil
		}
		if page.ContinuationToken == "" {
			return entries, nil
		}
		msg.ContinuationToken = page.ContinuationToken
	}
}

// ListPage fetches a single page of the bucket's object listing. The
// returned page carries the continuation token for the next call.
func (b *Bucket) ListPage(ctx context.Context, msg *cmn.ListMsg) (*cmn.BucketList, error) {
	body, hdr, err := jsonBody(cmn.ActMsg{Action: cmn.ActList, Value: msg})
	if err != nil {
		return nil, err
	}
	page := &cmn.BucketList{}
	err = b.client.doJSON(ctx, &ReqArgs{
		Method: http.MethodPost,
		Path:   cmn.PathBuckets + "/" + b.bck.Name,
		Query:  b.qparams(),
		Header: hdr,
		Body:   body,
	}, page)
	if err != nil {
		return nil, err
	}
	return page, nil
}

// ListBuckets returns the names of all buckets, optionally scoped to one
// provider (empty matches every provider).
func (c *Client) ListBuckets(ctx context.Context, provider string) ([]cmn.Bck, error) {
	if err := cmn.ValidateProvider(provider); err != nil {
		return nil, err
	}
	q := url.Values{}
	if provider != "" {
		q.Set(cmn.QparamProvider, provider)
	}
	var bcks []cmn.Bck
	err := c.doJSON(ctx, &ReqArgs{
		Method: http.MethodGet,
		Path:   cmn.PathBuckets + "/*",
		Query:  q,
	}, &bcks)
	if err != nil {
		return nil, err
	}
	return bcks, nil
}
