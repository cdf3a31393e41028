// Copyright 2026 AIStore Client Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"io"
	"net/http"
	"strconv"

	"github.com/timoha/aistore/pkg/cmn"
)

// DefaultChunkSize is the Read granularity of an ObjStream when the caller
// does not pick one.
const DefaultChunkSize = 64 * 1024

// ObjStream is a streamed object body plus the metadata the cluster
// reported for it. It wraps the live network connection: the caller must
// drain or Close it, otherwise the connection leaks.
type ObjStream struct {
	// ContentLength is the declared object size; 0 when the cluster did
	// not report one.
	ContentLength int64
	// ETag and ETagType carry the object's checksum and checksum type;
	// empty when the cluster did not report them.
	ETag     string
	ETagType string

	body      io.ReadCloser
	chunkSize int
	closed    bool
}

func newObjStream(resp *http.Response, chunkSize int) *ObjStream {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	length, err := strconv.ParseInt(resp.Header.Get("Content-Length"), 10, 64)
	if err != nil || length < 0 {
		length = 0
	}
	return &ObjStream{
		ContentLength: length,
		ETag:          resp.Header.Get(cmn.HeaderChecksumValue),
		ETagType:      resp.Header.Get(cmn.HeaderChecksumType),
		body:          resp.Body,
		chunkSize:     chunkSize,
	}
}

// ChunkSize returns the stream's Read granularity.
func (s *ObjStream) ChunkSize() int { return s.chunkSize }

// Read reads at most ChunkSize bytes per call, regardless of len(p).
func (s *ObjStream) Read(p []byte) (int, error) {
	if len(p) > s.chunkSize {
		p = p[:s.chunkSize]
	}
	return s.body.Read(p)
}

// WriteTo copies the remaining object bytes to w in ChunkSize chunks.
func (s *ObjStream) WriteTo(w io.Writer) (int64, error) {
	buf := make([]byte, s.chunkSize)
	return io.CopyBuffer(w, s.body, buf)
}

// Drain discards the rest of the stream and closes it, returning the
// connection to the pool.
func (s *ObjStream) Drain() error {
	if _, err := io.Copy(io.Discard, s.body); err != nil {
		s.Close()
		return err
	}
	return s.Close()
}

// Close releases the underlying connection. Safe to call more than once.
func (s *ObjStream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.body.Close()
}
