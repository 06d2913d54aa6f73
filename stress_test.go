// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package treemap_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/jba/treemap/internal/stress"
)

// TestNestedViews runs the nested-view stress harness with a test logger,
// so a failure shows the views it walked through.
func TestNestedViews(t *testing.T) {
	if testing.Short() {
		t.Skip("slow")
	}
	cfg := stress.DefaultConfig()
	cfg.Size = 500
	cfg.Seed = 42
	cfg.Logger = zaptest.NewLogger(t)
	rep, err := stress.Run(context.Background(), cfg)
	require.NoError(t, err)
	require.GreaterOrEqual(t, rep.Depth, 3)
}
