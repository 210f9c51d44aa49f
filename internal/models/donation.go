package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const DonationActive = "active"

type Donation struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name             string             `bson:"name" json:"name"`
	MaxAmount        Number             `bson:"maxAmount" json:"maxAmount"`
	LastDate         string             `bson:"lastDate" json:"lastDate"`
	ShortDescription string             `bson:"shortDescription" json:"shortDescription"`
	LongDescription  string             `bson:"longDescription" json:"longDescription"`
	Image            string             `bson:"image" json:"image"`
	Email            string             `bson:"email" json:"email"`
	Status           string             `bson:"status" json:"status"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
}

// DonationUpdate carries the only fields a campaign update may change.
type DonationUpdate struct {
	Name             string  `json:"name"`
	MaxAmount        Number  `json:"maxAmount"`
	LastDate         string  `json:"lastDate"`
	ShortDescription string  `json:"shortDescription"`
	LongDescription  string  `json:"longDescription"`
	Image            string  `json:"image"`
}
