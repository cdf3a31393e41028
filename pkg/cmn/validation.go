// Copyright 2026 AIStore Client Authors
// SPDX-License-Identifier: Apache-2.0

package cmn

import (
	"errors"
	"fmt"
	"strings"
)

func ValidateBucketName(bucketName string) error {
	if strings.TrimSpace(bucketName) == "" {
		return errors.New("bucket name cannot be empty")
	}
	if strings.ContainsAny(bucketName, "/\\") {
		return errors.New("bucket name cannot contain path separators")
	}
	if strings.Contains(bucketName, "..") {
		return errors.New("bucket name contains invalid characters")
	}
	for _, char := range bucketName {
		if (char >= 'a' && char <= 'z') || (char >= 'A' && char <= 'Z') ||
			(char >= '0' && char <= '9') || char == '-' || char == '.' || char == '_' {
			continue
		}
		return errors.New("bucket name contains invalid characters")
	}
	return nil
}

func ValidateObjectName(objName string) error {
	if objName == "" {
		return errors.New("object name cannot be empty")
	}
	if strings.HasPrefix(objName, "/") {
		return errors.New("object name cannot start with a slash")
	}
	for _, part := range strings.Split(objName, "/") {
		if part == ".." {
			return errors.New("object name cannot contain '..'")
		}
	}
	return nil
}

func ValidateProvider(provider string) error {
	if provider == "" {
		return nil
	}
	for _, p := range Providers {
		if provider == p {
			return nil
		}
	}
	return fmt.Errorf("invalid provider %q (expecting one of: %s)", provider, strings.Join(Providers, ", "))
}
