package widget

import (
	"context"
	"errors"
	"time"

	common_models "go-canvas/internal/common/models"
	"go-canvas/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type WidgetRepository interface {
	Create(ctx context.Context, widget *DashboardWidget) error
	Get(ctx context.Context, id string) (*DashboardWidget, error)
	FindByDashboard(ctx context.Context, dashboardID string) ([]DashboardWidget, error)
	UpdatePosition(ctx context.Context, id string, position common_models.Position) error
	UpdateConfig(ctx context.Context, id string, config map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	DeleteByDashboard(ctx context.Context, dashboardID string) error
	DistinctDashboardIDs(ctx context.Context) ([]primitive.ObjectID, error)
	EnsureIndexes(ctx context.Context) error
}

type WidgetRepositoryImpl struct {
	collection *mongo.Collection
}

func NewWidgetRepository(db *database.MongodbDB) WidgetRepository {
	return &WidgetRepositoryImpl{
		collection: db.DB.Collection(database.CollectionWidgets),
	}
}

func (r *WidgetRepositoryImpl) Create(ctx context.Context, widget *DashboardWidget) error {
	if widget.ID.IsZero() {
		widget.ID = primitive.NewObjectID()
	}
	widget.CreatedAt = time.Now()
	widget.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, widget)
	return err
}

func (r *WidgetRepositoryImpl) Get(ctx context.Context, id string) (*DashboardWidget, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var widget DashboardWidget
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&widget)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New("widget not found")
		}
		return nil, err
	}
	return &widget, nil
}

func (r *WidgetRepositoryImpl) FindByDashboard(ctx context.Context, dashboardID string) ([]DashboardWidget, error) {
	oid, err := primitive.ObjectIDFromHex(dashboardID)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "z_index", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"dashboard_id": oid}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var widgets []DashboardWidget
	if err = cursor.All(ctx, &widgets); err != nil {
		return nil, err
	}

	return widgets, nil
}

func (r *WidgetRepositoryImpl) UpdatePosition(ctx context.Context, id string, position common_models.Position) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	update := bson.M{
		"$set": bson.M{
			"position":   position,
			"updated_at": time.Now(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return errors.New("widget not found")
	}
	return nil
}

// UpdateConfig replaces the whole config field. Callers must merge before
// calling, this is not a deep merge.
func (r *WidgetRepositoryImpl) UpdateConfig(ctx context.Context, id string, config map[string]interface{}) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	update := bson.M{
		"$set": bson.M{
			"config":     config,
			"updated_at": time.Now(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return errors.New("widget not found")
	}
	return nil
}

func (r *WidgetRepositoryImpl) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return errors.New("widget not found")
	}
	return nil
}

func (r *WidgetRepositoryImpl) DeleteByDashboard(ctx context.Context, dashboardID string) error {
	oid, err := primitive.ObjectIDFromHex(dashboardID)
	if err != nil {
		return err
	}

	_, err = r.collection.DeleteMany(ctx, bson.M{"dashboard_id": oid})
	return err
}

func (r *WidgetRepositoryImpl) DistinctDashboardIDs(ctx context.Context) ([]primitive.ObjectID, error) {
	values, err := r.collection.Distinct(ctx, "dashboard_id", bson.M{})
	if err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(values))
	for _, v := range values {
		if oid, ok := v.(primitive.ObjectID); ok {
			ids = append(ids, oid)
		}
	}
	return ids, nil
}

func (r *WidgetRepositoryImpl) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "dashboard_id", Value: 1}, {Key: "z_index", Value: 1}}},
	})
	return err
}
