package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AnthoniusHendriyanto/auth-gate/internal/auth/domain"
	autherror "github.com/AnthoniusHendriyanto/auth-gate/internal/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

const UsersCollection = "users"

// userDocument matches the layout of the users collection: the password hash
// lives under "password".
type userDocument struct {
	ID           bson.RawValue `bson:"_id,omitempty"`
	FirstName    string        `bson:"firstName"`
	LastName     string        `bson:"lastName"`
	Email        string        `bson:"email"`
	PasswordHash string        `bson:"password"`
	CreatedAt    time.Time     `bson:"createdAt,omitempty"`
}

type newUserDocument struct {
	ID           string    `bson:"_id"`
	FirstName    string    `bson:"firstName"`
	LastName     string    `bson:"lastName"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password"`
	CreatedAt    time.Time `bson:"createdAt"`
}

type MongoRepository struct {
	users *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{users: db.Collection(UsersCollection)}
}

// EnsureIndexes creates the unique email index that backs Create's
// uniqueness guarantee.
func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("users_email_unique"),
	})
	if err != nil {
		return fmt.Errorf("failed to create users email index: %w", err)
	}
	return nil
}

func (r *MongoRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var doc userDocument
	err := r.users.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return doc.toDomain(), nil
}

func (r *MongoRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	n, err := r.users.CountDocuments(ctx, bson.D{{Key: "email", Value: email}}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return n > 0, nil
}

func (r *MongoRepository) Create(ctx context.Context, user *domain.User) error {
	_, err := r.users.InsertOne(ctx, newDocument(user))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return autherror.ErrEmailAlreadyInUse
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *MongoRepository) Ping(ctx context.Context) error {
	return r.users.Database().Client().Ping(ctx, readpref.Primary())
}

func newDocument(user *domain.User) newUserDocument {
	return newUserDocument{
		ID:           user.ID,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
	}
}

func (d userDocument) toDomain() *domain.User {
	return &domain.User{
		ID:           idString(d.ID),
		FirstName:    d.FirstName,
		LastName:     d.LastName,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		CreatedAt:    d.CreatedAt,
	}
}

// idString accepts both string ids and the ObjectIDs of older documents.
func idString(v bson.RawValue) string {
	if oid, ok := v.ObjectIDOK(); ok {
		return oid.Hex()
	}
	if s, ok := v.StringValueOK(); ok {
		return s
	}
	return ""
}
