package db

import (
	"context"
	"time"

	"github.com/juniorhq/junior/internal/auth/entity"
)

const queryCreateUser = `
INSERT INTO auth_users (
	id, email, password_hash, full_name, phone,
	is_active, is_staff, is_superuser, date_joined, updated_at
) VALUES ($1, $2, $3, $4, $5, TRUE, FALSE, FALSE, $6, $6)`

// CreateUser inserts a new active account. The unique index on email is the
// final authority on uniqueness; a duplicate surfaces as goerror.ErrConflict.
func (s *DB) CreateUser(ctx context.Context, in entity.NewUser, passwordHash string, joinedAt time.Time) (err error) {
	ctx, span := s.startSpan(ctx, "CreateUser")
	defer func() { s.endSpan(span, err) }()

	_, execErr := s.conn.Exec(ctx, queryCreateUser,
		in.ID, in.Email, passwordHash, in.FullName, in.Phone, joinedAt)
	err = s.mapError(execErr)
	return err
}
