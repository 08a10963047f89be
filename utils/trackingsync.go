package utils

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"backend/config"
	"backend/courier"
	"backend/models"

	"go.mongodb.org/mongo-driver/bson"
)

// SyncRedxStatuses walks orders that were handed to Redx and still await a
// logistic resolution, polls the courier for each consignment, and records
// returned parcels. Failures on a single order are logged and skipped so
// one bad consignment never stalls the rest of the batch.
func SyncRedxStatuses(db *config.Database, redx courier.Client) {
	log.Println("Starting Redx tracking sync")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	filter := bson.M{
		"logistictStatus": models.LogisticRedx,
		"consignmentId":   bson.M{"$exists": true, "$ne": ""},
	}
	cursor, err := db.Orders.Find(ctx, filter)
	if err != nil {
		log.Printf("Tracking sync: failed to list orders: %v", err)
		return
	}
	defer cursor.Close(ctx)

	var checked, returned int
	for cursor.Next(ctx) {
		var order models.Order
		if err := cursor.Decode(&order); err != nil {
			log.Printf("Tracking sync: decode failed: %v", err)
			continue
		}

		raw, err := redx.GetStatus(ctx, order.ConsignmentID)
		if err != nil {
			log.Printf("Tracking sync: status lookup failed for %s: %v", order.ConsignmentID, err)
			continue
		}
		checked++

		var tracked struct {
			Status string `json:"status"`
		}
		if err := json.Unmarshal(raw, &tracked); err != nil {
			continue
		}
		if !strings.EqualFold(tracked.Status, "returned") {
			continue
		}

		update := bson.M{"$set": bson.M{
			"logistictStatus": models.LogisticReturned,
			"updatedAt":       time.Now(),
		}}
		if _, err := db.Orders.UpdateOne(ctx, bson.M{"_id": order.ID}, update); err != nil {
			log.Printf("Tracking sync: update failed for %s: %v", order.ConsignmentID, err)
			continue
		}
		returned++
	}
	if err := cursor.Err(); err != nil {
		log.Printf("Tracking sync: cursor error: %v", err)
	}

	log.Printf("Redx tracking sync done: %d checked, %d marked returned", checked, returned)
}
