package services

import (
	"context"

	"github.com/arzan03/PawPal/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type CategoryService struct {
	categories *mongo.Collection
}

// NewCategoryService wraps the read-only categories collection.
func NewCategoryService(categories *mongo.Collection) *CategoryService {
	return &CategoryService{categories: categories}
}

// List returns every category.
func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	return findAll[models.Category](ctx, s.categories, bson.M{})
}
