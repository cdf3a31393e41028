// Copyright 2026 AIStore Client Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/timoha/aistore/pkg/cmn"
)

// StartDownload asks the cluster to fetch dl.Link into dl.Bucket/dl.ObjName
// and returns the job ID to poll or abort with.
func (c *Client) StartDownload(ctx context.Context, dl cmn.DlBody) (string, error) {
	if dl.Bucket == "" || dl.ObjName == "" || dl.Link == "" {
		return "", errors.New("download job needs bucket, objname and link")
	}
	body, hdr, err := jsonBody(dl)
	if err != nil {
		return "", err
	}
	var out struct {
		ID string `json:"id"`
	}
	err = c.doJSON(ctx, &ReqArgs{
		Method: http.MethodPost,
		Path:   cmn.PathDownload,
		Header: hdr,
		Body:   body,
	}, &out)
	if err != nil {
		return "", err
	}
	return out.ID, nil
}

// DownloadStatus reports a download job's progress.
func (c *Client) DownloadStatus(ctx context.Context, id string) (*cmn.DlStatus, error) {
	body, hdr, err := jsonBody(cmn.DlAdminBody{ID: id})
	if err != nil {
		return nil, err
	}
	status := &cmn.DlStatus{}
	err = c.doJSON(ctx, &ReqArgs{
		Method: http.MethodGet,
		Path:   cmn.PathDownload,
		Header: hdr,
		Body:   body,
	}, status)
	if err != nil {
		return nil, err
	}
	return status, nil
}

// AbortDownload stops a running download job. The job stays listed until
// removed.
func (c *Client) AbortDownload(ctx context.Context, id string) error {
	return c.dlAdmin(ctx, cmn.PathDownload+"/abort", id)
}

// RemoveDownload forgets a finished or aborted download job.
func (c *Client) RemoveDownload(ctx context.Context, id string) error {
	return c.dlAdmin(ctx, cmn.PathDownload+"/remove", id)
}

func (c *Client) dlAdmin(ctx context.Context, path, id string) error {
	body, hdr, err := jsonBody(cmn.DlAdminBody{ID: id})
	if err != nil {
		return err
	}
	_, err = c.do(ctx, &ReqArgs{
		Method: http.MethodDelete,
		Path:   path,
		Header: hdr,
		Body:   body,
	})
	return err
}
