package domain

// AdminUser backs HTTP Basic authentication. It is never exposed through the
// public API. Password always holds a hash, never the plaintext value.
type AdminUser struct {
	ID       int64  `db:"id" json:"id"`
	Username string `db:"username" json:"username"`
	Password string `db:"password" json:"-"`
}
