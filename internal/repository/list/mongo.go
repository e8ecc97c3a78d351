package list

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

type mongoStore struct {
	db     *mongo.Database
	logger *log.Logger
}

// NewMongo builds a Store over the wishlist and compare collections.
func NewMongo(db *mongo.Database, logger *log.Logger) Store {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &mongoStore{db: db, logger: logger}
}

type entryDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"userId"`
	ProductID string             `bson:"productId"`
	DateAdded primitive.DateTime `bson:"dateAdded"`
}

func (s *mongoStore) collection(kind domain.ListKind) *mongo.Collection {
	return s.db.Collection(string(kind))
}

func (s *mongoStore) Create(ctx context.Context, kind domain.ListKind, entry domain.ListEntry) (string, error) {
	doc := entryDoc{
		UserID:    entry.UserID,
		ProductID: entry.ProductID,
		DateAdded: primitive.NewDateTimeFromTime(entry.DateAdded),
	}
	res, err := s.collection(kind).InsertOne(ctx, doc)
	if err != nil {
		s.logger.Printf("list store: insert kind=%s user=%s error=%v", kind, entry.UserID, err)
		return "", wrapRemote(err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id.Hex(), nil
}

func (s *mongoStore) Find(ctx context.Context, kind domain.ListKind, userID string) ([]domain.ListEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "dateAdded", Value: -1}})
	cur, err := s.collection(kind).Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		s.logger.Printf("list store: find kind=%s user=%s error=%v", kind, userID, err)
		return nil, wrapRemote(err)
	}
	defer cur.Close(ctx)

	var entries []domain.ListEntry
	for cur.Next(ctx) {
		var doc entryDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		entries = append(entries, domain.ListEntry{
			ID:        doc.ID.Hex(),
			UserID:    doc.UserID,
			ProductID: doc.ProductID,
			DateAdded: doc.DateAdded.Time().UTC(),
		})
	}
	if err := cur.Err(); err != nil {
		return nil, wrapRemote(err)
	}
	return entries, nil
}

func (s *mongoStore) DeleteMatching(ctx context.Context, kind domain.ListKind, userID, productID string) error {
	_, err := s.collection(kind).DeleteMany(ctx, bson.M{"userId": userID, "productId": productID})
	if err != nil {
		s.logger.Printf("list store: delete kind=%s user=%s product=%s error=%v", kind, userID, productID, err)
		return wrapRemote(err)
	}
	return nil
}

func (s *mongoStore) Clear(ctx context.Context, kind domain.ListKind, userID string) error {
	_, err := s.collection(kind).DeleteMany(ctx, bson.M{"userId": userID})
	if err != nil {
		s.logger.Printf("list store: clear kind=%s user=%s error=%v", kind, userID, err)
		return wrapRemote(err)
	}
	return nil
}

// wrapRemote tags store failures with the retryable network sentinel so
// callers can distinguish them from local validation failures.
func wrapRemote(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) ||
		mongo.IsTimeout(err) || mongo.IsNetworkError(err) {
		return fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}
	return err
}
