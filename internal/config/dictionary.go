package config

import (
	"fmt"
	"time"
)

type DictionarySource string

const (
	DictionarySourceFile     DictionarySource = "file"
	DictionarySourceS3       DictionarySource = "s3"
	DictionarySourceRedis    DictionarySource = "redis"
	DictionarySourcePostgres DictionarySource = "postgres"
)

type Dictionary struct {
	Source DictionarySource `env:"DICTIONARY_SOURCE" envDefault:"file"`
	// Path путь к файлу для source=file, ключ объекта для source=s3
	Path     string        `env:"DICTIONARY_PATH" envDefault:"dictionary.txt"`
	RedisKey string        `env:"DICTIONARY_REDIS_KEY" envDefault:"pwstrength:common-passwords"`
	CacheTTL time.Duration `env:"DICTIONARY_CACHE_TTL" envDefault:"10m"`
}

func (d Dictionary) validate() error {
	switch d.Source {
	case DictionarySourceFile, DictionarySourceS3, DictionarySourceRedis, DictionarySourcePostgres:
		return nil
	default:
		return fmt.Errorf("unknown source %q", d.Source)
	}
}
