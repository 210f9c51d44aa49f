package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Pet struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name             string             `bson:"name" json:"name"`
	Age              Number             `bson:"age" json:"age"`
	Category         string             `bson:"category" json:"category"`
	Location         string             `bson:"location" json:"location"`
	ShortDescription string             `bson:"shortDescription" json:"shortDescription"`
	LongDescription  string             `bson:"longDescription" json:"longDescription"`
	Image            string             `bson:"image" json:"image"`
	Email            string             `bson:"email" json:"email"`
	Adopted          bool               `bson:"adopted" json:"adopted"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
}

// PetUpdate carries the only fields a pet update may change.
type PetUpdate struct {
	Name             string `json:"name"`
	Age              Number `json:"age"`
	Category         string `json:"category"`
	Location         string `json:"location"`
	ShortDescription string `json:"shortDescription"`
	LongDescription  string `json:"longDescription"`
	Image            string `json:"image"`
}
