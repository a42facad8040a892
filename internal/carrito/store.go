package carrito

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// TTL mirrors the session expiry: carts untouched for a week disappear.
const TTL = 7 * 24 * time.Hour

// Store persists carts in Redis, one key per storefront session. Access is a
// plain read-modify-write per request with no locking: two concurrent
// requests from the same session race and the last write wins.
type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

func clave(sessionID string) string { return "carrito:" + sessionID }

// Cargar loads the cart for sessionID; a missing key yields an empty cart.
func (s *Store) Cargar(ctx context.Context, sessionID string) (*Carrito, error) {
	raw, err := s.rdb.Get(ctx, clave(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Nuevo(), nil
		}
		return nil, err
	}

	var entradas map[string]Entrada
	if err := json.Unmarshal(raw, &entradas); err != nil {
		// A corrupt session value is discarded rather than breaking the page.
		return Nuevo(), nil
	}
	return desdeEntradas(entradas), nil
}

// Guardar persists the cart and refreshes its TTL.
func (s *Store) Guardar(ctx context.Context, sessionID string, c *Carrito) error {
	data, err := json.Marshal(c.entradas)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, clave(sessionID), data, TTL).Err()
}
