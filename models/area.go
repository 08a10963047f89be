package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// District owns a list of delivery areas for one courier. District names
// are unique within a courier's collection; areas are unique only by their
// generated id (duplicate names inside a district are tolerated).
type District struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Areas []Area             `bson:"areas" json:"areas"`
}

type Area struct {
	ID   primitive.ObjectID `bson:"_id" json:"id"`
	Name string             `bson:"name" json:"name"`
}
