// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Kulikov

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI, the client services, and the background session
// keep-alive into a single process lifecycle.
package client
