package template

import (
	"context"

	"go-crowdfund/internal/database"
	"go-crowdfund/pkg/apperr"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TemplateRepository interface {
	Create(ctx context.Context, tpl *FieldTemplate) error
	Get(ctx context.Context, id primitive.ObjectID) (*FieldTemplate, error)
	List(ctx context.Context, module string) ([]FieldTemplate, error)
	ExistsByName(ctx context.Context, module, nameEn string) (bool, error)
	EnsureIndexes(ctx context.Context) error
}

type TemplateRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewTemplateRepository(mongodb *database.MongodbDB) TemplateRepository {
	return &TemplateRepositoryImpl{
		Collection: mongodb.DB.Collection("field_templates"),
	}
}

// EnsureIndexes makes (module, name_en) unique so system template seeding
// stays idempotent under concurrent startup of multiple instances.
func (r *TemplateRepositoryImpl) EnsureIndexes(ctx context.Context) error {
	_, err := r.Collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "module", Value: 1}, {Key: "name_en", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *TemplateRepositoryImpl) Create(ctx context.Context, tpl *FieldTemplate) error {
	_, err := r.Collection.InsertOne(ctx, tpl)
	return err
}

func (r *TemplateRepositoryImpl) Get(ctx context.Context, id primitive.ObjectID) (*FieldTemplate, error) {
	var tpl FieldTemplate
	err := r.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&tpl)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, &apperr.NotFoundError{Resource: "field template", ID: id.Hex()}
		}
		return nil, err
	}
	return &tpl, nil
}

func (r *TemplateRepositoryImpl) List(ctx context.Context, module string) ([]FieldTemplate, error) {
	filter := bson.M{}
	if module != "" {
		filter["module"] = module
	}

	opts := options.Find().SetSort(bson.D{{Key: "module", Value: 1}, {Key: "name_en", Value: 1}})
	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var templates []FieldTemplate
	if err = cursor.All(ctx, &templates); err != nil {
		return nil, err
	}
	return templates, nil
}

func (r *TemplateRepositoryImpl) ExistsByName(ctx context.Context, module, nameEn string) (bool, error) {
	count, err := r.Collection.CountDocuments(ctx, bson.M{"module": module, "name_en": nameEn})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
