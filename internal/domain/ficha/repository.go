package ficha

import "context"

// Repository persists the whole ficha collection, with the same degradation
// rules as the user repository: storage faults are logged there and turn
// into an empty collection (Load) or a no-op (Save).
type Repository interface {
	Load(ctx context.Context) []Ficha
	Save(ctx context.Context, fichas []Ficha)
}
