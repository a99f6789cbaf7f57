package user

import "context"

// Repository persists the whole user collection. Storage faults stay at the
// repository boundary: Load degrades to an empty collection and Save to a
// no-op, both logged there, never surfaced as errors.
type Repository interface {
	Load(ctx context.Context) []User
	Save(ctx context.Context, users []User)
	Empty(ctx context.Context) bool
}
