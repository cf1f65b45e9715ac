package ports

import "context"

// EntityRepository is the generic data-access layer behind the CRUD
// resources. parentID scopes every call; top level entities pass "".
type EntityRepository[T any] interface {
	List(ctx context.Context, parentID string) ([]T, error)
	// Get returns (nil, nil) when the record does not exist under parentID.
	Get(ctx context.Context, parentID, id string) (*T, error)
	Create(ctx context.Context, entity *T) error
	Update(ctx context.Context, parentID, id string, entity *T) error
	Delete(ctx context.Context, parentID, id string) error
}
