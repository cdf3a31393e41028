// Copyright 2026 AIStore Client Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/timoha/aistore/pkg/cmn"
)

// GetClusterMap fetches the cluster map from the gateway the client points
// at.
func (c *Client) GetClusterMap(ctx context.Context) (*cmn.Smap, error) {
	q := url.Values{}
	q.Set(cmn.QparamWhat, cmn.WhatSmap)
	smap := &cmn.Smap{}
	err := c.doJSON(ctx, &ReqArgs{
		Method: http.MethodGet,
		Path:   cmn.PathDaemon,
		Query:  q,
	}, smap)
	if err != nil {
		return nil, err
	}
	return smap, nil
}

// GetPrimaryProxyURL resolves the primary gateway's public URL. Useful when
// the configured endpoint is any proxy and the caller wants the primary.
func (c *Client) GetPrimaryProxyURL(ctx context.Context) (string, error) {
	smap, err := c.GetClusterMap(ctx)
	if err != nil {
		return "", err
	}
	if smap.Primary == nil || smap.Primary.URL() == "" {
		return "", errors.New("cluster map has no primary proxy")
	}
	return smap.Primary.URL(), nil
}
