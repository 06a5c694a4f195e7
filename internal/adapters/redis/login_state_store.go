package redis

// Package redis provides Redis-based adapters for stayhub.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/stayhub/stayhub-web/internal/ports"
)

const defaultLoginStatePrefix = "login_state:"

var _ ports.LoginStateStore = (*LoginStateStore)(nil)

// LoginStateStore keeps in-flight login state in Redis. TTL follows LoginState.ExpiresAt
// and Take consumes the record with GETDEL, so a state can be used at most once.
type LoginStateStore struct {
	client redis.UniversalClient
	prefix string
}

// NewLoginStateStore creates a Redis-backed login state store.
func NewLoginStateStore(client redis.UniversalClient) *LoginStateStore {
	return NewLoginStateStoreWithPrefix(client, defaultLoginStatePrefix)
}

// NewLoginStateStoreWithPrefix creates a store with a custom key prefix.
func NewLoginStateStoreWithPrefix(client redis.UniversalClient, prefix string) *LoginStateStore {
	return &LoginStateStore{client: client, prefix: prefix}
}

func (s *LoginStateStore) Save(ctx context.Context, st ports.LoginState) error {
	if st.State == "" {
		return errors.New("state cannot be empty")
	}
	ttl := time.Until(st.ExpiresAt)
	if ttl <= 0 {
		return errors.New("login state is expired")
	}
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshal login state: %w", err)
	}
	if err = s.client.Set(ctx, s.prefix+st.State, data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (s *LoginStateStore) Take(ctx context.Context, state string) (ports.LoginState, error) {
	if state == "" {
		return ports.LoginState{}, ports.ErrNotFound
	}
	data, err := s.client.GetDel(ctx, s.prefix+state).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ports.LoginState{}, ports.ErrNotFound
		}
		return ports.LoginState{}, fmt.Errorf("redis getdel: %w", err)
	}
	var st ports.LoginState
	if err = json.Unmarshal(data, &st); err != nil {
		return ports.LoginState{}, fmt.Errorf("unmarshal login state: %w", err)
	}
	return st, nil
}
