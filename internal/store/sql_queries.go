package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (nombre_completo, email, password_hash, role)
    VALUES ($1, $2, $3, $4)
    RETURNING id, nombre_completo, email, role, created_at, updated_at;`

	findUserByEmail = `SELECT id, nombre_completo, email, password_hash, role, created_at, updated_at
    FROM users
    WHERE email = $1;`

	deleteUser = `DELETE FROM users WHERE id = $1;`
)

// publicUserColumns is the hash-free projection used by every read that can
// end up in a response payload.
var publicUserColumns = []string{"id", "nombre_completo", "email", "role", "created_at", "updated_at"}

// psql builds queries with dollar placeholders matching the pgx driver.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildFindUserByIDQuery selects the public projection of a single user.
func buildFindUserByIDQuery(id int64) (string, []any, error) {
	return psql.
		Select(publicUserColumns...).
		From("users").
		Where(sq.Eq{"id": id}).
		ToSql()
}

// buildFindAllUsersQuery selects all users, newest first.
func buildFindAllUsersQuery() (string, []any, error) {
	return psql.
		Select(publicUserColumns...).
		From("users").
		OrderBy("created_at DESC").
		ToSql()
}

// buildUpdateUserQuery assembles a partial UPDATE from the non-nil fields of
// update. updated_at is always touched. The RETURNING clause yields the
// public projection so no follow-up read is needed.
func buildUpdateUserQuery(id int64, update UserColumnUpdate) (string, []any, error) {
	builder := psql.
		Update("users").
		Set("updated_at", sq.Expr("NOW()"))

	if update.NombreCompleto != nil {
		builder = builder.Set("nombre_completo", *update.NombreCompleto)
	}
	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
	}
	if update.Role != nil {
		builder = builder.Set("role", *update.Role)
	}
	if update.PasswordHash != nil {
		builder = builder.Set("password_hash", *update.PasswordHash)
	}

	return builder.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, nombre_completo, email, role, created_at, updated_at").
		ToSql()
}
