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

const booksCollection = "books"

// BookRepository implements ports.BookRepository on MongoDB.
type BookRepository struct {
	coll *mongo.Collection
}

func NewBookRepository(db *mongo.Database) *BookRepository {
	return &BookRepository{coll: db.Collection(booksCollection)}
}

type mongoBook struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	URL       string             `bson:"url"`
	Title     string             `bson:"title"`
	Author    string             `bson:"author"`
	Price     float64            `bson:"price"`
	Desc      string             `bson:"desc"`
	Language  string             `bson:"language"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (mb *mongoBook) toDomain() *domain.Book {
	return &domain.Book{
		ID:        mb.ID.Hex(),
		URL:       mb.URL,
		Title:     mb.Title,
		Author:    mb.Author,
		Price:     mb.Price,
		Desc:      mb.Desc,
		Language:  mb.Language,
		CreatedAt: mb.CreatedAt,
		UpdatedAt: mb.UpdatedAt,
	}
}

func (r *BookRepository) Insert(ctx context.Context, book *domain.Book) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoBook{
		URL:       book.URL,
		Title:     book.Title,
		Author:    book.Author,
		Price:     book.Price,
		Desc:      book.Desc,
		Language:  book.Language,
		CreatedAt: book.CreatedAt,
		UpdatedAt: book.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert book: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert book: unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

func (r *BookRepository) Update(ctx context.Context, id string, book *domain.Book) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrBookNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"url":        book.URL,
		"title":      book.Title,
		"author":     book.Author,
		"price":      book.Price,
		"desc":       book.Desc,
		"language":   book.Language,
		"updated_at": book.UpdatedAt,
	}}

	res, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return fmt.Errorf("update book: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrBookNotFound
	}
	return nil
}

func (r *BookRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrBookNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrBookNotFound
	}
	return nil
}

func (r *BookRepository) FindByID(ctx context.Context, id string) (*domain.Book, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrBookNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mb mongoBook
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mb); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBookNotFound
		}
		return nil, fmt.Errorf("find book: %w", err)
	}
	return mb.toDomain(), nil
}

// FindByIDs resolves a reference set. Identifiers that are malformed or no
// longer present are simply absent from the result.
func (r *BookRepository) FindByIDs(ctx context.Context, ids []string) ([]*domain.Book, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			oids = append(oids, oid)
		}
	}
	if len(oids) == 0 {
		return []*domain.Book{}, nil
	}

	return r.find(ctx, bson.M{"_id": bson.M{"$in": oids}}, nil)
}

func (r *BookRepository) FindAll(ctx context.Context) ([]*domain.Book, error) {
	return r.find(ctx, bson.M{}, nil)
}

func (r *BookRepository) FindRecent(ctx context.Context, limit int) ([]*domain.Book, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))
	return r.find(ctx, bson.M{}, opts)
}

func (r *BookRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*domain.Book, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = r.coll.Find(ctx, filter, opts)
	} else {
		cursor, err = r.coll.Find(ctx, filter)
	}
	if err != nil {
		return nil, fmt.Errorf("find books: %w", err)
	}
	defer cursor.Close(ctx)

	books := []*domain.Book{}
	for cursor.Next(ctx) {
		var mb mongoBook
		if err := cursor.Decode(&mb); err != nil {
			return nil, fmt.Errorf("decode book: %w", err)
		}
		books = append(books, mb.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("find books: %w", err)
	}
	return books, nil
}
