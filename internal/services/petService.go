package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/arzan03/PawPal/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// PetFilter narrows the public pet listing. Zero values match everything.
type PetFilter struct {
	Category string
	Search   string
}

func (f PetFilter) query() bson.M {
	q := bson.M{}
	if c := strings.TrimSpace(f.Category); c != "" {
		q["category"] = c
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		q["name"] = primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
	}
	return q
}

type PetService struct {
	pets *mongo.Collection
	now  func() time.Time
}

// NewPetService wraps the pets collection.
func NewPetService(pets *mongo.Collection) *PetService {
	return &PetService{pets: pets, now: time.Now}
}

// List returns pets matching filter, newest first.
func (s *PetService) List(ctx context.Context, filter PetFilter) ([]models.Pet, error) {
	return findAll[models.Pet](ctx, s.pets, filter.query(), newestFirst)
}

// ListByOwner returns the pets submitted by email, newest first.
func (s *PetService) ListByOwner(ctx context.Context, email string) ([]models.Pet, error) {
	return findAll[models.Pet](ctx, s.pets, bson.M{"email": email}, newestFirst)
}

// Get returns nil without error when the pet does not exist.
func (s *PetService) Get(ctx context.Context, id primitive.ObjectID) (*models.Pet, error) {
	return findOne[models.Pet](ctx, s.pets, bson.M{"_id": id})
}

// Create stores pet as a new, not yet adopted listing.
func (s *PetService) Create(ctx context.Context, pet models.Pet) (models.InsertResult, error) {
	pet.ID = primitive.NewObjectID()
	pet.Adopted = false
	pet.CreatedAt = s.now().UTC()

	res, err := s.pets.InsertOne(ctx, pet)
	if err != nil {
		return models.InsertResult{}, fmt.Errorf("insert pet: %w", err)
	}
	return insertResult(res), nil
}

// Delete removes the pet; an unknown id reports a zero DeletedCount.
func (s *PetService) Delete(ctx context.Context, id primitive.ObjectID) (models.DeleteResult, error) {
	res, err := s.pets.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return models.DeleteResult{}, fmt.Errorf("delete pet: %w", err)
	}
	return deleteResult(res), nil
}

// SetAdopted sets the adoption flag.
func (s *PetService) SetAdopted(ctx context.Context, id primitive.ObjectID, adopted bool) (models.UpdateResult, error) {
	return s.set(ctx, id, bson.M{"adopted": adopted})
}

// Update overwrites the editable fields of the pet.
func (s *PetService) Update(ctx context.Context, id primitive.ObjectID, u models.PetUpdate) (models.UpdateResult, error) {
	return s.set(ctx, id, petUpdateFields(u))
}

func (s *PetService) set(ctx context.Context, id primitive.ObjectID, fields bson.M) (models.UpdateResult, error) {
	res, err := s.pets.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("update pet: %w", err)
	}
	return updateResult(res), nil
}

func petUpdateFields(u models.PetUpdate) bson.M {
	return bson.M{
		"name":             u.Name,
		"age":              u.Age,
		"category":         u.Category,
		"location":         u.Location,
		"shortDescription": u.ShortDescription,
		"longDescription":  u.LongDescription,
		"image":            u.Image,
	}
}
