package field

import (
	"context"

	"go-crowdfund/internal/database"
	"go-crowdfund/pkg/apperr"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FieldRepository interface {
	Create(ctx context.Context, def *FieldDefinition) error
	Update(ctx context.Context, def *FieldDefinition) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Get(ctx context.Context, id primitive.ObjectID) (*FieldDefinition, error)
	FindByModule(ctx context.Context, module string) ([]FieldDefinition, error)
	FindAll(ctx context.Context) ([]FieldDefinition, error)
	EnsureIndexes(ctx context.Context) error
}

type FieldRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewFieldRepository(mongodb *database.MongodbDB) FieldRepository {
	return &FieldRepositoryImpl{
		Collection: mongodb.DB.Collection("field_definitions"),
	}
}

// EnsureIndexes creates the unique (module, field_key) index that backs
// the ConflictError contract under concurrent creates.
func (r *FieldRepositoryImpl) EnsureIndexes(ctx context.Context) error {
	_, err := r.Collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "module", Value: 1}, {Key: "field_key", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *FieldRepositoryImpl) Create(ctx context.Context, def *FieldDefinition) error {
	_, err := r.Collection.InsertOne(ctx, def)
	if mongo.IsDuplicateKeyError(err) {
		return &apperr.ConflictError{Module: def.Module, FieldKey: def.FieldKey}
	}
	return err
}

func (r *FieldRepositoryImpl) Update(ctx context.Context, def *FieldDefinition) error {
	res, err := r.Collection.UpdateOne(ctx, bson.M{"_id": def.ID}, bson.M{"$set": def})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return &apperr.NotFoundError{Resource: "field definition", ID: def.ID.Hex()}
	}
	return nil
}

func (r *FieldRepositoryImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.Collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return &apperr.NotFoundError{Resource: "field definition", ID: id.Hex()}
	}
	return nil
}

func (r *FieldRepositoryImpl) Get(ctx context.Context, id primitive.ObjectID) (*FieldDefinition, error) {
	var def FieldDefinition
	err := r.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&def)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, &apperr.NotFoundError{Resource: "field definition", ID: id.Hex()}
		}
		return nil, err
	}
	return &def, nil
}

func (r *FieldRepositoryImpl) FindByModule(ctx context.Context, module string) ([]FieldDefinition, error) {
	// Ordering contract: display_order ascending, ties broken by _id.
	opts := options.Find().SetSort(bson.D{{Key: "display_order", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.Collection.Find(ctx, bson.M{"module": module}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var defs []FieldDefinition
	if err = cursor.All(ctx, &defs); err != nil {
		return nil, err
	}
	return defs, nil
}

func (r *FieldRepositoryImpl) FindAll(ctx context.Context) ([]FieldDefinition, error) {
	opts := options.Find().SetSort(bson.D{{Key: "module", Value: 1}, {Key: "display_order", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.Collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var defs []FieldDefinition
	if err = cursor.All(ctx, &defs); err != nil {
		return nil, err
	}
	return defs, nil
}
