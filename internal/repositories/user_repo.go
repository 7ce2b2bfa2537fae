package repositories

import (
	"database/sql"
	"strings"

	intconfig "railbook/internal/config"
	"railbook/internal/domain/models"
)

type UserRepo struct {
	DB *sql.DB
}

func (r UserRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// GetProfileByID loads a profile joined with its auth identity.
func (r UserRepo) GetProfileByID(id int64) (models.Profile, error) {
	var p models.Profile
	var fullName, phone, avatar sql.NullString
	var isAdmin sql.NullBool

	err := r.db().QueryRow(`
		SELECT u.id, u.email, p.full_name, p.phone, p.avatar_url, p.is_admin
		FROM users u
		LEFT JOIN profiles p ON p.id = u.id
		WHERE u.id = ?
	`, id).Scan(&p.ID, &p.Email, &fullName, &phone, &avatar, &isAdmin)
	if err != nil {
		return p, err
	}
	p.FullName = fullName.String
	p.Phone = phone.String
	p.AvatarURL = avatar.String
	p.IsAdmin = isAdmin.Valid && isAdmin.Bool
	return p, nil
}

// GetIdentityByEmail returns id and password hash for a login attempt.
func (r UserRepo) GetIdentityByEmail(email string) (int64, string, error) {
	var id int64
	var hash string
	err := r.db().QueryRow(`
		SELECT id, password_hash FROM users WHERE email = ?
	`, strings.TrimSpace(strings.ToLower(email))).Scan(&id, &hash)
	return id, hash, err
}

// DeleteIdentity removes the auth identity row. Profile deletion must only
// run after this succeeds; there is no compensating rollback the other way.
func (r UserRepo) DeleteIdentity(id int64) error {
	res, err := r.db().Exec(`DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteProfile removes the profile row.
func (r UserRepo) DeleteProfile(id int64) error {
	_, err := r.db().Exec(`DELETE FROM profiles WHERE id = ?`, id)
	return err
}
