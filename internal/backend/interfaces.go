// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package backend

import "context"

// ClientAcquirer hands out freshly configured clients. [*ClientFactory] is
// the production implementation.
type ClientAcquirer interface {
	// AcquireClient reads the current session token and returns a new
	// client bound to it.
	AcquireClient(ctx context.Context) (*Client, error)
}

var _ ClientAcquirer = (*ClientFactory)(nil)
