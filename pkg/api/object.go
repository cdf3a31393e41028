// Copyright 2026 AIStore Client Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"io"
	"net/http"
	"os"

	"github.com/gabriel-vasile/mimetype"

	"github.com/timoha/aistore/pkg/cmn"
)

// Object binds an object name to its bucket. The handle is immutable and
// carries no state beyond the binding: every method is one request, one
// response, nothing cached.
type Object struct {
	bck  *Bucket
	name string
}

// Bucket returns the bucket the object belongs to.
func (o *Object) Bucket() *Bucket { return o.bck }

// Name returns the object name.
func (o *Object) Name() string { return o.name }

func (o *Object) path() string {
	return cmn.PathObjects + "/" + o.bck.Name() + "/" + o.name
}

// Head requests the object's properties and returns the response headers.
// A missing object surfaces as an *apierr.Error with status 404.
func (o *Object) Head(ctx context.Context) (http.Header, error) {
	return o.bck.client.do(ctx, &ReqArgs{
		Method: http.MethodHead,
		Path:   o.path(),
		Query:  o.bck.qparams(),
	})
}

// GetArgs tunes a single Get call. The zero value is fine.
type GetArgs struct {
	// Archpath selects one member when the object is an archive
	// (tar, tgz, zip).
	Archpath string
	// ChunkSize caps how many bytes a single Read on the returned stream
	// yields. Non-positive selects DefaultChunkSize.
	ChunkSize int
}

// Get reads the object. The returned stream owns the network connection;
// the caller must drain or Close it.
func (o *Object) Get(ctx context.Context, args *GetArgs) (*ObjStream, error) {
	if args == nil {
		args = &GetArgs{}
	}
	q := o.bck.qparams()
	if args.Archpath != "" {
		q.Set(cmn.QparamArchpath, args.Archpath)
	}
	resp, err := o.bck.client.Request(ctx, &ReqArgs{
		Method: http.MethodGet,
		Path:   o.path(),
		Query:  q,
	})
	if err != nil {
		return nil, err
	}
	return newObjStream(resp, args.ChunkSize), nil
}

// Put uploads the local file at path as this object and returns the
// response headers with the stored object's properties. Filesystem errors
// surface before any request is issued; the file is closed on every exit
// path.
func (o *Object) Put(ctx context.Context, path string) (http.Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}

	hdr := http.Header{}
	if mtype, err := mimetype.DetectReader(f); err == nil {
		hdr.Set("Content-Type", mtype.String())
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	return o.bck.client.do(ctx, &ReqArgs{
		Method:        http.MethodPut,
		Path:          o.path(),
		Query:         o.bck.qparams(),
		Header:        hdr,
		Body:          f,
		ContentLength: fi.Size(),
	})
}

// Delete removes the object. Deleting an object that does not exist
// surfaces the cluster's 404.
func (o *Object) Delete(ctx context.Context) error {
	_, err := o.bck.client.do(ctx, &ReqArgs{
		Method: http.MethodDelete,
		Path:   o.path(),
		Query:  o.bck.qparams(),
	})
	return err
}
