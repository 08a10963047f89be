package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FacebookPage is reference data used when creating orders.
type FacebookPage struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	PageName  string             `bson:"pageName" json:"pageName"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
