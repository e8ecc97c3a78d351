package alert

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/Bart563/KBZ-Computers/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "priceAlerts"

type mongoRepo struct {
	db     *mongo.Database
	logger *log.Logger
}

func NewMongo(db *mongo.Database, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &mongoRepo{db: db, logger: logger}
}

type alertDoc struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	UserID         string             `bson:"userId"`
	ProductID      string             `bson:"productId"`
	ThresholdCents int64              `bson:"thresholdCents"`
	AlertType      string             `bson:"alertType"`
	IsActive       bool               `bson:"isActive"`
	CreatedAt      primitive.DateTime `bson:"createdAt"`
}

func (r *mongoRepo) Create(ctx context.Context, a domain.PriceAlert) (string, error) {
	doc := alertDoc{
		UserID:         a.UserID,
		ProductID:      a.ProductID,
		ThresholdCents: a.ThresholdCents,
		AlertType:      string(a.AlertType),
		IsActive:       true,
		CreatedAt:      primitive.NewDateTimeFromTime(a.CreatedAt),
	}
	res, err := r.db.Collection(collectionName).InsertOne(ctx, doc)
	if err != nil {
		r.logger.Printf("alert repo: insert user=%s product=%s error=%v", a.UserID, a.ProductID, err)
		return "", wrapRemote(err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id.Hex(), nil
}

func (r *mongoRepo) ListActive(ctx context.Context, userID string) ([]domain.PriceAlert, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.db.Collection(collectionName).Find(ctx, bson.M{"userId": userID, "isActive": true}, opts)
	if err != nil {
		r.logger.Printf("alert repo: find user=%s error=%v", userID, err)
		return nil, wrapRemote(err)
	}
	defer cur.Close(ctx)

	var alerts []domain.PriceAlert
	for cur.Next(ctx) {
		var doc alertDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		alerts = append(alerts, domain.PriceAlert{
			ID:             doc.ID.Hex(),
			UserID:         doc.UserID,
			ProductID:      doc.ProductID,
			ThresholdCents: doc.ThresholdCents,
			AlertType:      domain.AlertType(doc.AlertType),
			Active:         doc.IsActive,
			CreatedAt:      doc.CreatedAt.Time().UTC(),
		})
	}
	if err := cur.Err(); err != nil {
		return nil, wrapRemote(err)
	}
	return alerts, nil
}

func (r *mongoRepo) Deactivate(ctx context.Context, userID, alertID string) error {
	oid, err := primitive.ObjectIDFromHex(alertID)
	if err != nil {
		return domain.ErrNotFound
	}
	res, err := r.db.Collection(collectionName).UpdateOne(ctx,
		bson.M{"_id": oid, "userId": userID},
		bson.M{"$set": bson.M{"isActive": false}},
	)
	if err != nil {
		r.logger.Printf("alert repo: deactivate id=%s error=%v", alertID, err)
		return wrapRemote(err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func wrapRemote(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) ||
		mongo.IsTimeout(err) || mongo.IsNetworkError(err) {
		return fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}
	return err
}
