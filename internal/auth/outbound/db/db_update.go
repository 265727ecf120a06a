package db

import (
	"context"
	"time"
)

func (s *DB) UpdateLastLogin(ctx context.Context, id int64, at time.Time) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateLastLogin")
	defer func() { s.endSpan(span, err) }()

	_, execErr := s.conn.Exec(ctx,
		"UPDATE auth_users SET last_login = $2, updated_at = $2 WHERE id = $1", id, at)
	err = s.mapError(execErr)
	return err
}
