package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bookverse/bookstore-api/internal/core/domain"
)

const ordersCollection = "orders"

// OrderRepository implements ports.OrderRepository on MongoDB. It holds the
// database rather than a single collection because order placement spans the
// orders and users collections.
type OrderRepository struct {
	db *mongo.Database
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{db: db}
}

type mongoOrder struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    primitive.ObjectID `bson:"user"`
	BookID    primitive.ObjectID `bson:"book"`
	Status    string             `bson:"status"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (mo *mongoOrder) toDomain() *domain.Order {
	status := domain.OrderStatus(mo.Status)
	if mo.Status == "" {
		// legacy documents predating the status field
		status = domain.StatusPlaced
	}
	return &domain.Order{
		ID:        mo.ID.Hex(),
		UserID:    mo.UserID.Hex(),
		BookID:    mo.BookID.Hex(),
		Status:    status,
		CreatedAt: mo.CreatedAt,
		UpdatedAt: mo.UpdatedAt,
	}
}

// PlaceOrder runs the writes of a single order placement (insert the order,
// push its id onto the user's order history, pull the book from the user's
// cart) inside one session transaction, so a fault cannot leave the user
// document and the orders collection disagreeing about this item.
func (r *OrderRepository) PlaceOrder(ctx context.Context, userID, bookID string) (string, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return "", domain.ErrUserNotFound
	}
	bid, err := primitive.ObjectIDFromHex(bookID)
	if err != nil {
		return "", domain.ErrBookNotFound
	}

	session, err := r.db.Client().StartSession()
	if err != nil {
		return "", fmt.Errorf("place order: start session: %w", err)
	}
	defer session.EndSession(ctx)

	result, err := session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		now := time.Now().UTC()
		ins, err := r.db.Collection(ordersCollection).InsertOne(sc, mongoOrder{
			UserID:    uid,
			BookID:    bid,
			Status:    string(domain.StatusPlaced),
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return nil, fmt.Errorf("insert order: %w", err)
		}

		oid, ok := ins.InsertedID.(primitive.ObjectID)
		if !ok {
			return nil, fmt.Errorf("insert order: unexpected inserted id type %T", ins.InsertedID)
		}

		res, err := r.db.Collection(usersCollection).UpdateByID(sc, uid, bson.M{
			"$push": bson.M{"orders": oid.Hex()},
			"$pull": bson.M{"cart": bookID},
			"$set":  bson.M{"updated_at": now},
		})
		if err != nil {
			return nil, fmt.Errorf("link order to user: %w", err)
		}
		if res.MatchedCount == 0 {
			return nil, domain.ErrUserNotFound
		}

		return oid.Hex(), nil
	})
	if err != nil {
		return "", err
	}

	return result.(string), nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrOrderNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mo mongoOrder
	if err := r.db.Collection(ordersCollection).FindOne(ctx, bson.M{"_id": oid}).Decode(&mo); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}
	return mo.toDomain(), nil
}

func (r *OrderRepository) FindAll(ctx context.Context) ([]*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.db.Collection(ordersCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find orders: %w", err)
	}
	defer cursor.Close(ctx)

	orders := []*domain.Order{}
	for cursor.Next(ctx) {
		var mo mongoOrder
		if err := cursor.Decode(&mo); err != nil {
			return nil, fmt.Errorf("decode order: %w", err)
		}
		orders = append(orders, mo.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("find orders: %w", err)
	}
	return orders, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrOrderNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.db.Collection(ordersCollection).UpdateByID(ctx, oid, bson.M{
		"$set": bson.M{"status": string(status), "updated_at": time.Now().UTC()},
	})
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}
