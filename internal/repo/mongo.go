package repo

import (
	"LostFound/internal/model"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	// CollectionItems — коллекция объявлений в MongoDB.
	CollectionItems = "items"

	mongoOpTimeout = 5 * time.Second
)

type mongoItemRepo struct {
	collection *mongo.Collection
}

// ConnectMongo открывает соединение с MongoDB и проверяет его ping-ом.
func ConnectMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, mongoOpTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, nil
}

// NewMongoItemRepository создаёт основной (document store) репозиторий объявлений.
func NewMongoItemRepository(client *mongo.Client, dbName string) ItemRepository {
	db := client.Database(dbName)
	return &mongoItemRepo{collection: db.Collection(CollectionItems)}
}

func (r *mongoItemRepo) Create(ctx context.Context, item *model.Item) error {
	ctx, cancel := context.WithTimeout(ctx, mongoOpTimeout)
	defer cancel()

	now := time.Now().UTC()
	// ID назначаем сами, чтобы обе реализации отдавали одинаковую форму идентификатора.
	item.ID = uuid.NewString()
	item.DateReported = now
	item.CreatedAt = now
	item.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, item); err != nil {
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

func (r *mongoItemRepo) Find(ctx context.Context, f Filter) ([]model.Item, error) {
	ctx, cancel := context.WithTimeout(ctx, mongoOpTimeout)
	defer cancel()

	query := bson.M{}
	if f.Status != "" {
		query["status"] = f.Status
	}
	if f.wantsCategory() {
		query["category"] = f.Category
	}

	opts := options.Find().SetSort(bson.D{{Key: "dateReported", Value: -1}})
	cur, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("find items: %w", err)
	}
	defer cur.Close(ctx)

	items := []model.Item{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}
	return items, nil
}

func (r *mongoItemRepo) GetByID(ctx context.Context, id string) (*model.Item, error) {
	ctx, cancel := context.WithTimeout(ctx, mongoOpTimeout)
	defer cancel()

	var item model.Item
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find item by id: %w", err)
	}
	return &item, nil
}
