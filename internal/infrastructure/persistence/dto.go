package persistence

import (
	"database/sql"
	"time"
)

// commonPasswordSchema строка таблицы common_passwords.
type commonPasswordSchema struct {
	Password   string    `db:"password"`
	ImportedAt time.Time `db:"imported_at"`
}

type dictionaryStatsSchema struct {
	Words      int          `db:"words"`
	ImportedAt sql.NullTime `db:"imported_at"`
}

// DictionaryStats сводка по словарю в БД.
type DictionaryStats struct {
	Words      int
	ImportedAt time.Time // нулевое значение, если словарь пуст
}

func (s dictionaryStatsSchema) toDomain() DictionaryStats {
	stats := DictionaryStats{Words: s.Words}
	if s.ImportedAt.Valid {
		stats.ImportedAt = s.ImportedAt.Time
	}
	return stats
}
