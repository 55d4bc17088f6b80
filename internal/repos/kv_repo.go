package repos

import (
	"database/sql"

	"github.com/go-faster/errors"
	"github.com/jmoiron/sqlx"
)

type KVRepo struct{ db *sqlx.DB }

func NewKVRepo(db *sqlx.DB) *KVRepo { return &KVRepo{db: db} }

func (r *KVRepo) Get(key string) ([]byte, bool, error) {
	var value string
	err := r.db.Get(&value, `SELECT value FROM kv WHERE key = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "kv get %q", key)
	}
	return []byte(value), true, nil
}

func (r *KVRepo) Set(key string, value []byte) error {
	_, err := r.db.Exec(`
		INSERT INTO kv(key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, string(value))
	if err != nil {
		return errors.Wrapf(err, "kv set %q", key)
	}
	return nil
}

func (r *KVRepo) Delete(key string) error {
	if _, err := r.db.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		return errors.Wrapf(err, "kv delete %q", key)
	}
	return nil
}

// Keys lists stored keys in lexical order; used by the admin dump.
func (r *KVRepo) Keys() ([]string, error) {
	var out []string
	if err := r.db.Select(&out, `SELECT key FROM kv ORDER BY key`); err != nil {
		return nil, errors.Wrap(err, "kv keys")
	}
	return out, nil
}
