// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Kulikov

// Package adapter provides the transport layer for communicating with the
// CampusHub backend.
//
// The primary abstractions are [ServerAdapter] (authentication, session, and
// profile calls) and [ResourceAdapter] (the read-mostly campus feed). One
// HTTP/REST implementation ([NewHTTPServerAdapter]) backs both.
//
// Every backend response is wrapped in the uniform
// {"success": bool, "message": string, "data": ...} envelope. The adapter
// unwraps it and normalises both transport failures and success=false
// rejections into a [*RequestError], so callers have exactly one error shape
// to handle. Status-class sentinels defined in errors.go can be matched with
// [errors.Is] (e.g. [ErrUnauthorized] for 401).
package adapter
