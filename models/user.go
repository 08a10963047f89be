package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a call-center agent. UID comes from the external auth provider
// and is unique.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UID       string             `bson:"uid" json:"uid"`
	UserName  string             `bson:"userName" json:"userName"`
	Email     string             `bson:"email" json:"email"`
	Role      string             `bson:"role,omitempty" json:"role,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
