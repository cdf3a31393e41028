// Copyright 2026 AIStore Client Authors
// SPDX-License-Identifier: Apache-2.0

package cmn

import (
	"errors"
	"fmt"
	"strings"
)

// Bck names a bucket. Empty Provider means the cluster's native provider.
type Bck struct {
	Name     string `json:"name"`
	Provider string `json:"provider,omitempty"`
}

// String renders the bucket as a URI, e.g. "aws://images".
func (b Bck) String() string {
	if b.Provider == "" {
		return ProviderAIS + "://" + b.Name
	}
	return b.Provider + "://" + b.Name
}

// IsRemote reports whether the bucket is backed by a cloud provider.
func (b Bck) IsRemote() bool {
	return b.Provider != "" && b.Provider != ProviderAIS
}

// Validate checks the bucket name and provider.
func (b Bck) Validate() error {
	if err := ValidateBucketName(b.Name); err != nil {
		return err
	}
	return ValidateProvider(b.Provider)
}

// ParseBckObjURI parses "[provider://]bucket[/object]". The object part is
// optional and may itself contain slashes.
func ParseBckObjURI(uri string) (bck Bck, objName string, err error) {
	rest := uri
	if i := strings.Index(rest, "://"); i >= 0 {
		bck.Provider = rest[:i]
		rest = rest[i+len("://"):]
	}
	if rest == "" {
		return bck, "", errors.New("missing bucket name")
	}
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		bck.Name, objName = rest[:i], rest[i+1:]
	} else {
		bck.Name = rest
	}
	if err := bck.Validate(); err != nil {
		return bck, "", fmt.Errorf("invalid bucket in %q: %w", uri, err)
	}
	if objName != "" {
		if err := ValidateObjectName(objName); err != nil {
			return bck, "", fmt.Errorf("invalid object in %q: %w", uri, err)
		}
	}
	return bck, objName, nil
}
