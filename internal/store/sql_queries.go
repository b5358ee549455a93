// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Kulikov

package store

const (
	saveSession = `
		INSERT INTO session (id, token, saved_at)
		VALUES (1, $1, CURRENT_TIMESTAMP)
		ON CONFLICT (id) DO UPDATE SET
			token    = excluded.token,
			saved_at = excluded.saved_at;`

	getSession = `
		SELECT token
		FROM session
		WHERE id = 1;`

	deleteSession = `
		DELETE FROM session
		WHERE id = 1;`
)
