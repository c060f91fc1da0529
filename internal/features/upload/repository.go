package upload

import (
	"context"

	"go-crowdfund/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UploadRepository interface {
	Save(ctx context.Context, file *StoredFile) error
	Get(ctx context.Context, id string) (*StoredFile, error)
	FindByRecord(ctx context.Context, module, recordID string) ([]*StoredFile, error)
	Delete(ctx context.Context, id string) error
}

type UploadRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewUploadRepository(mongodb *database.MongodbDB) UploadRepository {
	return &UploadRepositoryImpl{
		Collection: mongodb.DB.Collection("files"),
	}
}

func (r *UploadRepositoryImpl) Save(ctx context.Context, file *StoredFile) error {
	if file.ID.IsZero() {
		file.ID = primitive.NewObjectID()
	}
	_, err := r.Collection.InsertOne(ctx, file)
	return err
}

func (r *UploadRepositoryImpl) Get(ctx context.Context, id string) (*StoredFile, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var file StoredFile
	err = r.Collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&file)
	return &file, err
}

func (r *UploadRepositoryImpl) FindByRecord(ctx context.Context, module, recordID string) ([]*StoredFile, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"module": module, "record_id": recordID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var files []*StoredFile
	if err := cursor.All(ctx, &files); err != nil {
		return nil, err
	}
	return files, nil
}

func (r *UploadRepositoryImpl) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
