// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client assembles the records dashboard application.
//
// It wires local session storage, the backend client factory, the services
// and the terminal UI into a single value whose lifetime matches one CLI
// command.
package client
