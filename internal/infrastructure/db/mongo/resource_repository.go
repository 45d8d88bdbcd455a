package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/musicadmin/content-api/internal/core/domain"
)

// Collection names of the content documents.
const (
	CollectionBanners      = "banners"
	CollectionServices     = "services"
	CollectionSpecialities = "specialities"
	CollectionTestimonials = "testimonials"
	CollectionAboutUs      = "aboutus"
	CollectionContact      = "contactsubmissions"
)

// ResourceRepository stores one content collection. R must be a pointer to a
// struct embedding domain.Document; newRecord allocates one for decoding.
type ResourceRepository[R domain.Record] struct {
	col       *mongo.Collection
	newRecord func() R
	now       func() time.Time
}

func NewResourceRepository[R domain.Record](db *mongo.Database, collection string, newRecord func() R) *ResourceRepository[R] {
	return &ResourceRepository[R]{
		col:       db.Collection(collection),
		newRecord: newRecord,
		now:       time.Now,
	}
}

// timestamp returns the current time at the precision BSON dates keep, so
// a record handed back from Insert equals the one a later read returns.
func (r *ResourceRepository[R]) timestamp() time.Time {
	return r.now().UTC().Truncate(time.Millisecond)
}

func (r *ResourceRepository[R]) List(ctx context.Context, activeOnly bool) ([]R, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if activeOnly {
		filter["isActive"] = true
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", r.col.Name(), err)
	}
	defer cur.Close(ctx)

	out := []R{}
	for cur.Next(ctx) {
		rec := r.newRecord()
		if err := cur.Decode(rec); err != nil {
			return nil, fmt.Errorf("decode %s: %w", r.col.Name(), err)
		}
		out = append(out, rec)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", r.col.Name(), err)
	}
	return out, nil
}

func (r *ResourceRepository[R]) FindByID(ctx context.Context, id string) (R, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.findByID(ctx, id)
}

func (r *ResourceRepository[R]) findByID(ctx context.Context, id string) (R, error) {
	var zero R
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return zero, domain.ErrNotFound
	}

	rec := r.newRecord()
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(rec); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return zero, domain.ErrNotFound
		}
		return zero, fmt.Errorf("find %s %s: %w", r.col.Name(), id, err)
	}
	return rec, nil
}

// Insert stamps the record, stores it and reads it back so the caller gets
// the document exactly as persisted.
func (r *ResourceRepository[R]) Insert(ctx context.Context, record R) (R, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var zero R
	record.Touch(r.timestamp())

	res, err := r.col.InsertOne(ctx, record)
	if err != nil {
		return zero, fmt.Errorf("insert %s: %w", r.col.Name(), err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return zero, fmt.Errorf("insert %s: unexpected id type %T", r.col.Name(), res.InsertedID)
	}
	return r.findByID(ctx, oid.Hex())
}

func (r *ResourceRepository[R]) Update(ctx context.Context, id string, changes domain.Changes) (R, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var zero R
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return zero, domain.ErrNotFound
	}

	set := bson.M{}
	for field, value := range changes {
		set[field] = value
	}
	set["updatedAt"] = r.timestamp()

	rec := r.newRecord()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return zero, domain.ErrNotFound
		}
		return zero, fmt.Errorf("update %s %s: %w", r.col.Name(), id, err)
	}
	return rec, nil
}

func (r *ResourceRepository[R]) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete %s %s: %w", r.col.Name(), id, err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes backing List.
func (r *ResourceRepository[R]) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "isActive", Value: 1}, {Key: "createdAt", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
