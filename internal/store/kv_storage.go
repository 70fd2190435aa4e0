package store

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// KVStorage namespaces a shared fiber.Storage. Sessions, pending toasts and
// the user cache each get their own prefix over the same memory or redis
// backend. Reset and Close pass through to the shared storage.
type KVStorage struct {
	fiber.Storage
	keyPrefix string
}

func (s *KVStorage) Get(key string) ([]byte, error) {
	return s.Storage.Get(s.keyPrefix + key)
}

func (s *KVStorage) Set(key string, val []byte, exp time.Duration) error {
	return s.Storage.Set(s.keyPrefix+key, val, exp)
}

func (s *KVStorage) Delete(key string) error {
	return s.Storage.Delete(s.keyPrefix + key)
}

// NewKVStorage wraps storage so every key is stored under keyPrefix.
func NewKVStorage(storage fiber.Storage, keyPrefix string) fiber.Storage {
	return &KVStorage{
		Storage:   storage,
		keyPrefix: keyPrefix,
	}
}
