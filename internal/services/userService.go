package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/arzan03/PawPal/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrUserExists = errors.New("user already exists")

type UserService struct {
	users *mongo.Collection
}

// NewUserService wraps the users collection.
func NewUserService(users *mongo.Collection) *UserService {
	return &UserService{users: users}
}

// Register stores profile when no user with the same email exists. The
// profile is kept as submitted apart from the normalized email.
func (s *UserService) Register(ctx context.Context, profile bson.M) (models.InsertResult, error) {
	email, _ := profile["email"].(string)
	email = strings.TrimSpace(email)
	if email == "" {
		return models.InsertResult{}, ErrMissingEmail
	}
	profile["email"] = email

	// A client cannot register itself as an admin.
	delete(profile, "role")
	delete(profile, "_id")

	existing, err := s.FindByEmail(ctx, email)
	if err != nil {
		return models.InsertResult{}, err
	}
	if existing != nil {
		return models.InsertResult{}, ErrUserExists
	}

	res, err := s.users.InsertOne(ctx, profile)
	if mongo.IsDuplicateKeyError(err) {
		// lost a concurrent registration race to the unique index
		return models.InsertResult{}, ErrUserExists
	}
	if err != nil {
		return models.InsertResult{}, fmt.Errorf("insert user: %w", err)
	}
	return insertResult(res), nil
}

// List returns every user document as stored.
func (s *UserService) List(ctx context.Context) ([]bson.M, error) {
	return findAll[bson.M](ctx, s.users, bson.M{})
}

// FindByEmail returns nil without error when no user has that email.
func (s *UserService) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return findOne[models.User](ctx, s.users, bson.M{"email": email})
}

// PromoteToAdmin sets the role of the user with id to admin.
func (s *UserService) PromoteToAdmin(ctx context.Context, id primitive.ObjectID) (models.UpdateResult, error) {
	res, err := s.users.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"role": models.RoleAdmin}})
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("promote user: %w", err)
	}
	return updateResult(res), nil
}
