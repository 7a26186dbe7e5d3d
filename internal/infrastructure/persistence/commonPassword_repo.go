package persistence

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"pwstrength/internal/domain"
	"pwstrength/internal/domain/value"
	"pwstrength/pkg/errcodes"
)

// CommonPasswordRepository словарь распространённых паролей в таблице common_passwords.
type CommonPasswordRepository struct {
	db *sqlx.DB
}

func NewCommonPasswordRepository(db *sqlx.DB) *CommonPasswordRepository {
	return &CommonPasswordRepository{db: db}
}

func (r *CommonPasswordRepository) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.WrapError(err, errcodes.DictionaryUnavailable, "failed to begin transaction")
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return domain.WrapError(err, errcodes.DictionaryUnavailable, "failed to commit")
	}
	return nil
}

// Contains ищет точное совпадение по нормализованной форме.
func (r *CommonPasswordRepository) Contains(ctx context.Context, password string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM common_passwords WHERE password = $1)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, value.NormalizePassword(password)); err != nil {
		return false, domain.WrapError(err, errcodes.DictionaryUnavailable, "failed to look up common password")
	}
	return exists, nil
}

// Import заменяет словарь целиком в одной транзакции.
func (r *CommonPasswordRepository) Import(ctx context.Context, words []string) error {
	importedAt := time.Now().UTC()

	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM common_passwords`); err != nil {
			return domain.WrapError(err, errcodes.DictionaryUnavailable, "failed to clear common passwords")
		}

		stmt, err := tx.PrepareNamedContext(ctx, `
			INSERT INTO common_passwords (password, imported_at)
			VALUES (:password, :imported_at)
			ON CONFLICT (password) DO NOTHING`)
		if err != nil {
			return domain.WrapError(err, errcodes.DictionaryUnavailable, "failed to prepare insert")
		}
		defer stmt.Close()

		for _, word := range words {
			row := commonPasswordSchema{Password: word, ImportedAt: importedAt}
			if _, err := stmt.ExecContext(ctx, row); err != nil {
				return domain.WrapError(err, errcodes.DictionaryUnavailable, "failed to insert common password")
			}
		}
		return nil
	})
}

// Stats возвращает размер словаря и время последнего импорта.
func (r *CommonPasswordRepository) Stats(ctx context.Context) (DictionaryStats, error) {
	query := `SELECT COUNT(*) AS words, MAX(imported_at) AS imported_at FROM common_passwords`

	var schema dictionaryStatsSchema
	if err := r.db.GetContext(ctx, &schema, query); err != nil {
		return DictionaryStats{}, domain.WrapError(err, errcodes.DictionaryUnavailable, "failed to read dictionary stats")
	}
	return schema.toDomain(), nil
}
