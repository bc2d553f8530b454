package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bookverse/bookstore-api/internal/core/domain"
)

const usersCollection = "users"

// UserRepository implements ports.UserRepository on MongoDB.
type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

type mongoUser struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Username     string             `bson:"username"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password_hash"`
	Address      string             `bson:"address"`
	Avatar       string             `bson:"avatar"`
	Role         string             `bson:"role"`
	Favourites   []string           `bson:"favourites"`
	Cart         []string           `bson:"cart"`
	Orders       []string           `bson:"orders"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

func (mu *mongoUser) toDomain() *domain.User {
	return &domain.User{
		ID:           mu.ID.Hex(),
		Username:     mu.Username,
		Email:        mu.Email,
		PasswordHash: mu.PasswordHash,
		Address:      mu.Address,
		Avatar:       mu.Avatar,
		Role:         mu.Role,
		Favourites:   emptyIfNil(mu.Favourites),
		Cart:         emptyIfNil(mu.Cart),
		Orders:       emptyIfNil(mu.Orders),
		CreatedAt:    mu.CreatedAt,
		UpdatedAt:    mu.UpdatedAt,
	}
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoUser{
		Username:     user.Username,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Address:      user.Address,
		Avatar:       user.Avatar,
		Role:         user.Role,
		Favourites:   emptyIfNil(user.Favourites),
		Cart:         emptyIfNil(user.Cart),
		Orders:       emptyIfNil(user.Orders),
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	// fetch back to get the generated ID
	return r.FindByUsername(ctx, user.Username)
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mu mongoUser
	if err := r.coll.FindOne(ctx, filter).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return mu.toDomain(), nil
}

func (r *UserRepository) SetAddress(ctx context.Context, id, address string) error {
	return r.updateByID(ctx, id, bson.M{
		"$set": bson.M{"address": address, "updated_at": time.Now().UTC()},
	})
}

func (r *UserRepository) PushCart(ctx context.Context, id, bookID string) error {
	return r.updateByID(ctx, id, bson.M{
		"$push": bson.M{"cart": bookID},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	})
}

func (r *UserRepository) PullCart(ctx context.Context, id, bookID string) error {
	return r.updateByID(ctx, id, bson.M{
		"$pull": bson.M{"cart": bookID},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	})
}

func (r *UserRepository) PushFavourite(ctx context.Context, id, bookID string) error {
	return r.updateByID(ctx, id, bson.M{
		"$push": bson.M{"favourites": bookID},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	})
}

func (r *UserRepository) PullFavourite(ctx context.Context, id, bookID string) error {
	return r.updateByID(ctx, id, bson.M{
		"$pull": bson.M{"favourites": bookID},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	})
}

func (r *UserRepository) updateByID(ctx context.Context, id string, update bson.M) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
