// Package toolutil provides shared helper functions for go_fit MCP tools:
// input validation and typed access to the engine result cache.
package toolutil

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/anatolykoptev/go_fit/internal/engine"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks struct tags on a tool input. Returns a wrapped error
// suitable for returning to the MCP client.
func Validate(v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}
	return nil
}

// CacheLoadJSON tries to load a cached value of type T from the engine cache.
// Returns the decoded value and true on hit; zero value and false on miss or
// decode error.
func CacheLoadJSON[T any](ctx context.Context, key string) (T, bool) {
	var out T
	data, ok := engine.CacheGet(ctx, key)
	if !ok {
		return out, false
	}
	if err := json.Unmarshal(data, &out); err != nil {
		var zero T
		return zero, false
	}
	return out, true
}

// CacheStoreJSON marshals v and stores it in the engine cache.
func CacheStoreJSON[T any](ctx context.Context, key string, v T) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	engine.CacheSet(ctx, key, data)
}
