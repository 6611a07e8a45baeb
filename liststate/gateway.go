package liststate

import "context"

// Gateway is the slice of the record store the controllers need. Implemented
// by store.Store; tests swap in a fake.
type Gateway interface {
	ListOrderedBy(ctx context.Context, collection, field string, descending bool, out any) error
	UpdateField(ctx context.Context, collection, id, field string, value any) error
	Create(ctx context.Context, collection string, fields map[string]any) (string, error)
	Delete(ctx context.Context, collection, id string) error
}

// PageSize is fixed for every table in the dashboard.
const PageSize = 5
