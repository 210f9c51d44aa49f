package services

import (
	"context"
	"fmt"
	"time"

	"github.com/arzan03/PawPal/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DonationService struct {
	donations *mongo.Collection
	now       func() time.Time
}

// NewDonationService wraps the donations collection.
func NewDonationService(donations *mongo.Collection) *DonationService {
	return &DonationService{donations: donations, now: time.Now}
}

// List returns every campaign, newest first.
func (s *DonationService) List(ctx context.Context) ([]models.Donation, error) {
	return findAll[models.Donation](ctx, s.donations, bson.M{}, newestFirst)
}

// ListByOwner returns the campaigns created by email, newest first.
func (s *DonationService) ListByOwner(ctx context.Context, email string) ([]models.Donation, error) {
	return findAll[models.Donation](ctx, s.donations, bson.M{"email": email}, newestFirst)
}

// Get returns nil without error when the campaign does not exist.
func (s *DonationService) Get(ctx context.Context, id primitive.ObjectID) (*models.Donation, error) {
	return findOne[models.Donation](ctx, s.donations, bson.M{"_id": id})
}

// Create stores a new campaign, active unless a status is supplied.
func (s *DonationService) Create(ctx context.Context, d models.Donation) (models.InsertResult, error) {
	d.ID = primitive.NewObjectID()
	if d.Status == "" {
		d.Status = models.DonationActive
	}
	d.CreatedAt = s.now().UTC()

	res, err := s.donations.InsertOne(ctx, d)
	if err != nil {
		return models.InsertResult{}, fmt.Errorf("insert donation: %w", err)
	}
	return insertResult(res), nil
}

// SetStatus replaces the campaign status.
func (s *DonationService) SetStatus(ctx context.Context, id primitive.ObjectID, status string) (models.UpdateResult, error) {
	return s.set(ctx, id, bson.M{"status": status})
}

// Update overwrites the editable fields of the campaign.
func (s *DonationService) Update(ctx context.Context, id primitive.ObjectID, u models.DonationUpdate) (models.UpdateResult, error) {
	return s.set(ctx, id, bson.M{
		"name":             u.Name,
		"maxAmount":        u.MaxAmount,
		"lastDate":         u.LastDate,
		"shortDescription": u.ShortDescription,
		"longDescription":  u.LongDescription,
		"image":            u.Image,
	})
}

func (s *DonationService) set(ctx context.Context, id primitive.ObjectID, fields bson.M) (models.UpdateResult, error) {
	res, err := s.donations.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("update donation: %w", err)
	}
	return updateResult(res), nil
}
