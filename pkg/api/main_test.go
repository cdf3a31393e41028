// Copyright 2026 AIStore Client Authors
// SPDX-License-Identifier: Apache-2.0

package api_test

import (
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
