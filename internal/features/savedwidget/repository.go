package savedwidget

import (
	"context"
	"time"

	"go-canvas/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SavedWidgetRepository interface {
	Create(ctx context.Context, widget *SavedWidget) error
	Get(ctx context.Context, userID primitive.ObjectID, id string) (*SavedWidget, error)
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]SavedWidget, error)
	Delete(ctx context.Context, userID primitive.ObjectID, id string) error
	DeleteByUser(ctx context.Context, userID primitive.ObjectID) error
}

type SavedWidgetRepositoryImpl struct {
	collection *mongo.Collection
}

func NewSavedWidgetRepository(db *database.MongodbDB) SavedWidgetRepository {
	return &SavedWidgetRepositoryImpl{
		collection: db.DB.Collection(database.CollectionSavedWidgets),
	}
}

func (r *SavedWidgetRepositoryImpl) Create(ctx context.Context, widget *SavedWidget) error {
	widget.CreatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, widget)
	return err
}

// Get returns nil, nil when the widget does not exist.
func (r *SavedWidgetRepositoryImpl) Get(ctx context.Context, userID primitive.ObjectID, id string) (*SavedWidget, error) {
	var widget SavedWidget
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "user_id": userID}).Decode(&widget)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &widget, nil
}

func (r *SavedWidgetRepositoryImpl) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]SavedWidget, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var widgets []SavedWidget
	if err = cursor.All(ctx, &widgets); err != nil {
		return nil, err
	}

	return widgets, nil
}

// Delete is a no-op when the id is absent.
func (r *SavedWidgetRepositoryImpl) Delete(ctx context.Context, userID primitive.ObjectID, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "user_id": userID})
	return err
}

func (r *SavedWidgetRepositoryImpl) DeleteByUser(ctx context.Context, userID primitive.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"user_id": userID})
	return err
}
