package db

import (
	"context"

	"github.com/juniorhq/junior/internal/auth/entity"
)

const queryGetUser = `
SELECT id, email, password_hash, full_name, phone,
	is_active, is_staff, is_superuser, date_joined, last_login, updated_at
FROM auth_users `

func (s *DB) GetUserByEmail(ctx context.Context, email string) (out *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "GetUserByEmail")
	defer func() { s.endSpan(span, err) }()

	var user entity.User
	scanErr := s.conn.QueryRow(ctx, queryGetUser+"WHERE email = $1", email).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.FullName, &user.Phone,
		&user.IsActive, &user.IsStaff, &user.IsSuperuser,
		&user.DateJoined, &user.LastLogin, &user.UpdatedAt,
	)
	if scanErr != nil {
		err = s.mapError(scanErr)
		return nil, err
	}

	return &user, nil
}

func (s *DB) GetUserByID(ctx context.Context, id int64) (out *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "GetUserByID")
	defer func() { s.endSpan(span, err) }()

	var user entity.User
	scanErr := s.conn.QueryRow(ctx, queryGetUser+"WHERE id = $1", id).Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.FullName, &user.Phone,
		&user.IsActive, &user.IsStaff, &user.IsSuperuser,
		&user.DateJoined, &user.LastLogin, &user.UpdatedAt,
	)
	if scanErr != nil {
		err = s.mapError(scanErr)
		return nil, err
	}

	return &user, nil
}

func (s *DB) ExistsUserByEmail(ctx context.Context, email string) (found bool, err error) {
	ctx, span := s.startSpan(ctx, "ExistsUserByEmail")
	defer func() { s.endSpan(span, err) }()

	scanErr := s.conn.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM auth_users WHERE email = $1)", email).Scan(&found)
	if scanErr != nil {
		err = s.mapError(scanErr)
		return false, err
	}

	return found, nil
}
