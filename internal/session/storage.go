package session

import (
	"context"
)

// Storage is the durable key/value store behind the session.
type Storage interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
}

type legacyStorage struct {
	Storage
}

// LegacyStorage adapts a Storage for readers that still expect the
// credential under "token": that key aliases "accessToken".
func LegacyStorage(s Storage) Storage {
	return legacyStorage{Storage: s}
}

func (l legacyStorage) Get(ctx context.Context, key string) (string, bool, error) {
	return l.Storage.Get(ctx, alias(key))
}

func (l legacyStorage) Set(ctx context.Context, key, value string) error {
	return l.Storage.Set(ctx, alias(key), value)
}

func (l legacyStorage) Delete(ctx context.Context, keys ...string) error {
	aliased := make([]string, 0, len(keys))
	for _, k := range keys {
		aliased = append(aliased, alias(k))
	}
	return l.Storage.Delete(ctx, aliased...)
}

func alias(key string) string {
	if key == KeyLegacyToken {
		return KeyAccessToken
	}
	return key
}

// PersistedCredential reads the bearer credential from storage on every
// call, so requests always sign with what is persisted.
type PersistedCredential struct {
	Storage Storage
}

func (c PersistedCredential) AccessToken(ctx context.Context) (string, error) {
	token, _, err := c.Storage.Get(ctx, KeyAccessToken)
	return token, err
}
