package handlers

import (
	"context"
	"io"

	"github.com/arzan03/PawPal/internal/models"
	"github.com/arzan03/PawPal/internal/services"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// The handlers talk to collections only through these interfaces; the
// services package provides the Mongo-backed implementations.

type TokenIssuer interface {
	Issue(identity map[string]any) (string, error)
}

type UserStore interface {
	Register(ctx context.Context, profile bson.M) (models.InsertResult, error)
	List(ctx context.Context) ([]bson.M, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	PromoteToAdmin(ctx context.Context, id primitive.ObjectID) (models.UpdateResult, error)
}

type CategoryStore interface {
	List(ctx context.Context) ([]models.Category, error)
}

type PetStore interface {
	List(ctx context.Context, filter services.PetFilter) ([]models.Pet, error)
	ListByOwner(ctx context.Context, email string) ([]models.Pet, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Pet, error)
	Create(ctx context.Context, pet models.Pet) (models.InsertResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (models.DeleteResult, error)
	SetAdopted(ctx context.Context, id primitive.ObjectID, adopted bool) (models.UpdateResult, error)
	Update(ctx context.Context, id primitive.ObjectID, u models.PetUpdate) (models.UpdateResult, error)
}

type DonationStore interface {
	List(ctx context.Context) ([]models.Donation, error)
	ListByOwner(ctx context.Context, email string) ([]models.Donation, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Donation, error)
	Create(ctx context.Context, d models.Donation) (models.InsertResult, error)
	SetStatus(ctx context.Context, id primitive.ObjectID, status string) (models.UpdateResult, error)
	Update(ctx context.Context, id primitive.ObjectID, u models.DonationUpdate) (models.UpdateResult, error)
}

type ImageUploader interface {
	Put(ctx context.Context, filename, contentType string, r io.Reader, size int64) (string, error)
}
