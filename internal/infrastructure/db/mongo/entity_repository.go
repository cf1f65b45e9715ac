package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ligonine/hospital-system/internal/core/domain"
	"github.com/ligonine/hospital-system/internal/core/ports"
)

const (
	collectionDepartments = "departments"
	collectionDoctors     = "doctors"
	collectionOperations  = "operations"
)

// ErrNoDocument is returned by Update when nothing matched the filter.
var ErrNoDocument = errors.New("mongo: no document matched")

// EntityRepository stores one resource type in one collection. When
// parentField is set every query is scoped to that field.
type EntityRepository[T any] struct {
	col         *mongo.Collection
	parentField string
}

func NewEntityRepository[T any](db *mongo.Database, collection, parentField string) *EntityRepository[T] {
	return &EntityRepository[T]{col: db.Collection(collection), parentField: parentField}
}

func NewDepartmentRepository(db *mongo.Database) *EntityRepository[domain.Department] {
	return NewEntityRepository[domain.Department](db, collectionDepartments, "")
}

func NewDoctorRepository(db *mongo.Database) *EntityRepository[domain.Doctor] {
	return NewEntityRepository[domain.Doctor](db, collectionDoctors, "department_id")
}

func NewOperationRepository(db *mongo.Database) *EntityRepository[domain.Operation] {
	return NewEntityRepository[domain.Operation](db, collectionOperations, "doctor_id")
}

var _ ports.EntityRepository[domain.Doctor] = (*EntityRepository[domain.Doctor])(nil)

func (r *EntityRepository[T]) filter(parentID string) bson.M {
	f := bson.M{}
	if r.parentField != "" {
		f[r.parentField] = parentID
	}
	return f
}

// List returns every document under parentID, ordered by name.
func (r *EntityRepository[T]) List(ctx context.Context, parentID string) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, r.filter(parentID), options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", r.col.Name(), err)
	}
	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", r.col.Name(), err)
	}
	return out, nil
}

func (r *EntityRepository[T]) Get(ctx context.Context, parentID, id string) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	f := r.filter(parentID)
	f["_id"] = id

	var entity T
	if err := r.col.FindOne(ctx, f).Decode(&entity); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find %s: %w", r.col.Name(), err)
	}
	return &entity, nil
}

func (r *EntityRepository[T]) Create(ctx context.Context, entity *T) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, entity); err != nil {
		return fmt.Errorf("insert %s: %w", r.col.Name(), err)
	}
	return nil
}

func (r *EntityRepository[T]) Update(ctx context.Context, parentID, id string, entity *T) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	f := r.filter(parentID)
	f["_id"] = id

	res, err := r.col.ReplaceOne(ctx, f, entity)
	if err != nil {
		return fmt.Errorf("replace %s: %w", r.col.Name(), err)
	}
	if res.MatchedCount == 0 {
		return ErrNoDocument
	}
	return nil
}

// Delete is idempotent.
func (r *EntityRepository[T]) Delete(ctx context.Context, parentID, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	f := r.filter(parentID)
	f["_id"] = id

	if _, err := r.col.DeleteOne(ctx, f); err != nil {
		return fmt.Errorf("delete %s: %w", r.col.Name(), err)
	}
	return nil
}

// EnsureIndexes creates the parent lookup index. Top level collections
// need none beyond _id.
func (r *EntityRepository[T]) EnsureIndexes(ctx context.Context) error {
	if r.parentField == "" {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: r.parentField, Value: 1}, {Key: "name", Value: 1}},
	})
	return err
}
