package value

import (
	"context"
	"time"

	"go-crowdfund/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ValueRepository interface {
	Get(ctx context.Context, fieldID primitive.ObjectID, recordID string) (*FieldValue, error)
	FindByRecord(ctx context.Context, module, recordID string) ([]FieldValue, error)
	Upsert(ctx context.Context, val *FieldValue) error
	EnsureIndexes(ctx context.Context) error
}

type ValueRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewValueRepository(mongodb *database.MongodbDB) ValueRepository {
	return &ValueRepositoryImpl{
		Collection: mongodb.DB.Collection("field_values"),
	}
}

// EnsureIndexes enforces at most one value per (field_id, record_id).
func (r *ValueRepositoryImpl) EnsureIndexes(ctx context.Context) error {
	_, err := r.Collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "field_id", Value: 1}, {Key: "record_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *ValueRepositoryImpl) Get(ctx context.Context, fieldID primitive.ObjectID, recordID string) (*FieldValue, error) {
	var val FieldValue
	err := r.Collection.FindOne(ctx, bson.M{"field_id": fieldID, "record_id": recordID}).Decode(&val)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &val, nil
}

func (r *ValueRepositoryImpl) FindByRecord(ctx context.Context, module, recordID string) ([]FieldValue, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"module": module, "record_id": recordID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var vals []FieldValue
	if err = cursor.All(ctx, &vals); err != nil {
		return nil, err
	}
	return vals, nil
}

// Upsert writes a single field value with last-write-wins semantics.
func (r *ValueRepositoryImpl) Upsert(ctx context.Context, val *FieldValue) error {
	filter := bson.M{"field_id": val.FieldID, "record_id": val.RecordID}
	update := bson.M{"$set": bson.M{
		"module":     val.Module,
		"value":      val.Value,
		"file_url":   val.FileURL,
		"file_name":  val.FileName,
		"updated_at": time.Now(),
	}}
	opts := options.Update().SetUpsert(true)
	_, err := r.Collection.UpdateOne(ctx, filter, update, opts)
	return err
}
