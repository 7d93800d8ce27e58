package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/opeller/authgate/models"
)

// Column sets for the two user projections. currentUserColumns is the
// default read shape: the password hash never appears in it. Only the
// login lookup selects loginUserColumns.
var (
	currentUserColumns = []string{"id", "username", "email", "created_at"}
	loginUserColumns   = []string{"id", "username", "email", "password_hash", "created_at"}
)

// createUserQuery builds the INSERT for a new account. RETURNING hands
// back the canonical database representation without the hash.
func (r *userRepository) createUserQuery(user models.User) (string, []any, error) {
	return r.db.builder().
		Insert(user.TableName()).
		Columns("username", "email", "password_hash").
		Values(user.Username, user.Email, user.PasswordHash).
		Suffix("RETURNING id, username, email, created_at").
		ToSql()
}

// findUserByIDQuery builds the current-user lookup.
func (r *userRepository) findUserByIDQuery(id int64) (string, []any, error) {
	return r.db.builder().
		Select(currentUserColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// findUserByCredentialQuery builds the login lookup matching the
// credential against either unique column.
func (r *userRepository) findUserByCredentialQuery(credential string) (string, []any, error) {
	return r.db.builder().
		Select(loginUserColumns...).
		From(models.User{}.TableName()).
		Where(sq.Or{
			sq.Eq{"username": credential},
			sq.Eq{"email": credential},
		}).
		ToSql()
}
