package dashboard

import (
	"context"
	"time"

	"go-canvas/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DashboardRepository interface {
	Create(ctx context.Context, dashboard *Dashboard) error
	Get(ctx context.Context, id string) (*Dashboard, error)
	FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]Dashboard, error)
	CountByUserID(ctx context.Context, userID primitive.ObjectID) (int64, error)
	Update(ctx context.Context, id string, update DashboardUpdate) (*Dashboard, error)
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
	EnsureIndexes(ctx context.Context) error
}

type DashboardRepositoryImpl struct {
	collection *mongo.Collection
}

func NewDashboardRepository(db *database.MongodbDB) DashboardRepository {
	return &DashboardRepositoryImpl{
		collection: db.DB.Collection(database.CollectionDashboards),
	}
}

func (r *DashboardRepositoryImpl) Create(ctx context.Context, dashboard *Dashboard) error {
	if dashboard.ID.IsZero() {
		dashboard.ID = primitive.NewObjectID()
	}
	dashboard.CreatedAt = time.Now()
	dashboard.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, dashboard)
	return err
}

func (r *DashboardRepositoryImpl) Get(ctx context.Context, id string) (*Dashboard, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var dashboard Dashboard
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&dashboard)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrDashboardNotFound
		}
		return nil, err
	}
	return &dashboard, nil
}

func (r *DashboardRepositoryImpl) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]Dashboard, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var dashboards []Dashboard
	if err = cursor.All(ctx, &dashboards); err != nil {
		return nil, err
	}

	return dashboards, nil
}

func (r *DashboardRepositoryImpl) CountByUserID(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"user_id": userID})
}

func (r *DashboardRepositoryImpl) Update(ctx context.Context, id string, update DashboardUpdate) (*Dashboard, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updated_at": time.Now()}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.LayoutConfig != nil {
		set["layout_config"] = *update.LayoutConfig
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var dashboard Dashboard
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&dashboard)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrDashboardNotFound
		}
		return nil, err
	}

	return &dashboard, nil
}

func (r *DashboardRepositoryImpl) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrDashboardNotFound
	}
	return nil
}

func (r *DashboardRepositoryImpl) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *DashboardRepositoryImpl) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
	})
	return err
}
