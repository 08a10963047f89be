package controllers

import (
	"context"
	"net/http"
	"time"

	"backend/config"
	"backend/courier"
	"backend/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type OrderController struct {
	DB   *config.Database
	Redx courier.Client
}

func NewOrderController(db *config.Database, redx courier.Client) *OrderController {
	return &OrderController{DB: db, Redx: redx}
}

func (oc *OrderController) CreateOrder(c *gin.Context) {
	var input models.OrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondValidation(c, "Invalid request body")
		return
	}

	order, err := models.NewOrder(input, time.Now())
	if err != nil {
		respondValidation(c, err.Error())
		return
	}

	if _, err := oc.DB.Orders.InsertOne(context.TODO(), order); err != nil {
		respondInternal(c, "Failed to create order")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Order created successfully!"})
}

func (oc *OrderController) GetAllOrders(c *gin.Context) {
	cursor, err := oc.DB.Orders.Find(context.TODO(), bson.M{})
	if err != nil {
		respondInternal(c, "Failed to retrieve orders")
		return
	}
	defer cursor.Close(context.TODO())

	orders := []models.Order{}
	if err := cursor.All(context.TODO(), &orders); err != nil {
		respondInternal(c, "Failed to decode orders")
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (oc *OrderController) GetAssignedOrders(c *gin.Context) {
	userID := c.Param("userId")

	opts := options.Find().SetSort(bson.M{"date": -1})
	cursor, err := oc.DB.Orders.Find(context.TODO(), bson.M{"assignedTo": userID}, opts)
	if err != nil {
		respondInternal(c, "Failed to retrieve orders")
		return
	}
	defer cursor.Close(context.TODO())

	orders := []models.Order{}
	if err := cursor.All(context.TODO(), &orders); err != nil {
		respondInternal(c, "Failed to decode orders")
		return
	}
	c.JSON(http.StatusOK, orders)
}

// buildOrderUpdate recomputes every monetary field from the submitted
// strings and applies the status-conditional fields: district/area only for
// Redx and Pathaow, comment only for Hold.
func buildOrderUpdate(input models.OrderUpdateInput, now time.Time) (bson.M, error) {
	lines, err := models.BuildLines(input.Products)
	if err != nil {
		return nil, err
	}
	deliveryCost, err := models.ParseAmount("deliveryCost", input.DeliveryCost)
	if err != nil {
		return nil, err
	}
	advance, err := models.ParseAmount("advance", input.Advance)
	if err != nil {
		return nil, err
	}
	discount, err := models.ParseAmount("discount", input.Discount)
	if err != nil {
		return nil, err
	}

	update := bson.M{
		"status":        input.Status,
		"customerName":  input.CustomerName,
		"phoneNumber":   input.PhoneNumber,
		"address":       input.Address,
		"note":          input.Note,
		"consignmentId": input.ConsignmentID,
		"products":      lines,
		"deliveryCost":  deliveryCost,
		"advance":       advance,
		"discount":      discount,
		"grandTotal":    models.GrandTotal(lines, deliveryCost, advance, discount),
		"updatedAt":     now,
	}
	if input.Status == models.StatusRedx || input.Status == models.StatusPathaow {
		update["district"] = input.RedxDistrict
		update["area"] = input.RedxArea
	}
	if input.Status == models.StatusHold {
		update["comment"] = input.Comment
	}
	return update, nil
}

func (oc *OrderController) UpdateOrder(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondValidation(c, "Invalid order ID")
		return
	}

	var input models.OrderUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondValidation(c, "Invalid request body")
		return
	}

	update, err := buildOrderUpdate(input, time.Now())
	if err != nil {
		respondValidation(c, err.Error())
		return
	}

	result, err := oc.DB.Orders.UpdateOne(context.TODO(), bson.M{"_id": objID}, bson.M{"$set": update})
	if err != nil {
		respondInternal(c, "Error updating order")
		return
	}
	if result.MatchedCount == 0 {
		respondNotFound(c, "Order not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order updated successfully!"})
}

func (oc *OrderController) DeleteOrder(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondValidation(c, "Invalid order ID")
		return
	}

	result, err := oc.DB.Orders.DeleteOne(context.TODO(), bson.M{"_id": objID})
	if err != nil {
		respondInternal(c, "Failed to delete order")
		return
	}
	if result.DeletedCount == 0 {
		respondNotFound(c, "Order not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully!"})
}

func parseOrderIDs(ids []string) ([]primitive.ObjectID, error) {
	objIDs := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		objID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, err
		}
		objIDs = append(objIDs, objID)
	}
	return objIDs, nil
}

// bulkSet applies one $set to many orders. The batch is not atomic: a store
// failure mid-batch leaves the earlier documents updated.
func (oc *OrderController) bulkSet(c *gin.Context, ids []string, fields bson.M, emptyMessage string) {
	if len(ids) == 0 {
		respondValidation(c, "orderIds must be a non-empty array")
		return
	}
	objIDs, err := parseOrderIDs(ids)
	if err != nil {
		respondValidation(c, "Invalid order ID in orderIds")
		return
	}

	result, err := oc.DB.Orders.UpdateMany(
		context.TODO(),
		bson.M{"_id": bson.M{"$in": objIDs}},
		bson.M{"$set": fields},
	)
	if err != nil {
		respondInternal(c, "Failed to update orders")
		return
	}
	if result.ModifiedCount == 0 {
		respondNotFound(c, emptyMessage)
		return
	}
	c.JSON(http.StatusOK, gin.H{"modifiedCount": result.ModifiedCount})
}

func (oc *OrderController) BulkAssign(c *gin.Context) {
	var body struct {
		OrderIDs     []string `json:"orderIds"`
		AssignedUser string   `json:"assignedUser"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondValidation(c, "Invalid request body")
		return
	}
	if body.AssignedUser == "" {
		respondValidation(c, "assignedUser is required")
		return
	}
	oc.bulkSet(c, body.OrderIDs, bson.M{"assignedTo": body.AssignedUser, "updatedAt": time.Now()},
		"No orders found to assign")
}

func (oc *OrderController) MarkPrinted(c *gin.Context) {
	var body struct {
		OrderIDs []string `json:"orderIds"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondValidation(c, "Invalid request body")
		return
	}
	oc.bulkSet(c, body.OrderIDs, bson.M{"markAsPrinted": models.MarkedPrinted},
		"No orders found to mark as printed")
}

func (oc *OrderController) MarkExported(c *gin.Context) {
	var body struct {
		OrderIDs []string `json:"orderIds"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondValidation(c, "Invalid request body")
		return
	}
	oc.bulkSet(c, body.OrderIDs, bson.M{"markAs": models.MarkedExported, "updatedAt": time.Now()},
		"No orders found to mark as exported")
}

// buildLogisticUpdate produces the field map for a logistic-status change.
// Only the Partial outcome carries a returned-product list; every other
// value leaves any previously recorded returnedProduct untouched.
func buildLogisticUpdate(status string, returned []models.ReturnedProduct, now time.Time) bson.M {
	fields := bson.M{
		"logistictStatus": status,
		"updatedAt":       now,
	}
	if status == models.LogisticPartial {
		fields["returnedProduct"] = returned
	}
	return fields
}

// UpdateLogisticStatus sets the logistic resolution of one order.
func (oc *OrderController) UpdateLogisticStatus(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondValidation(c, "Invalid order ID")
		return
	}

	var body struct {
		LogisticStatus  string                   `json:"logistictStatus"`
		ReturnedProduct []models.ReturnedProduct `json:"returnedProduct"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondValidation(c, "Invalid request body")
		return
	}
	if body.LogisticStatus == "" {
		respondValidation(c, "logistictStatus is required")
		return
	}

	fields := buildLogisticUpdate(body.LogisticStatus, body.ReturnedProduct, time.Now())
	result, err := oc.DB.Orders.UpdateOne(context.TODO(), bson.M{"_id": objID}, bson.M{"$set": fields})
	if err != nil {
		respondInternal(c, "Error updating the order")
		return
	}
	if result.MatchedCount == 0 {
		respondNotFound(c, "Order not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order logistictStatus updated to \"" + body.LogisticStatus + "\" successfully!"})
}

// UpdateStatusByConsignment is the webhook-style variant keyed by the
// courier's tracking id rather than the order id.
func (oc *OrderController) UpdateStatusByConsignment(c *gin.Context) {
	var body struct {
		ConsignmentID  string `json:"consignmentId"`
		LogisticStatus string `json:"logistictStatus"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondValidation(c, "Invalid request body")
		return
	}
	if body.ConsignmentID == "" || body.LogisticStatus == "" {
		respondValidation(c, "consignmentId and logistictStatus are required")
		return
	}

	result, err := oc.DB.Orders.UpdateOne(
		context.TODO(),
		bson.M{"consignmentId": body.ConsignmentID},
		bson.M{"$set": bson.M{"logistictStatus": body.LogisticStatus, "updatedAt": time.Now()}},
	)
	if err != nil {
		respondInternal(c, "Error updating the order")
		return
	}
	if result.MatchedCount == 0 {
		respondNotFound(c, "Order not found with the given consignment ID")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order logistictStatus updated to \"" + body.LogisticStatus + "\" successfully!"})
}

func (oc *OrderController) FindByInvoice(c *gin.Context) {
	var body struct {
		InvoiceID string `json:"invoiceId"`
		Status    string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondValidation(c, "Invalid request body")
		return
	}
	if body.InvoiceID == "" {
		respondValidation(c, "invoiceId is required")
		return
	}

	filter := bson.M{"invoiceId": body.InvoiceID}
	if body.Status != "" {
		filter["status"] = body.Status
	}
	oc.findOne(c, filter)
}

func (oc *OrderController) FindByConsignment(c *gin.Context) {
	var body struct {
		ConsignmentID string `json:"consignmentId"`
		Status        string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondValidation(c, "Invalid request body")
		return
	}
	if body.ConsignmentID == "" {
		respondValidation(c, "consignmentId is required")
		return
	}

	filter := bson.M{"consignmentId": body.ConsignmentID}
	if body.Status != "" {
		filter["status"] = body.Status
	}
	oc.findOne(c, filter)
}

func (oc *OrderController) findOne(c *gin.Context, filter bson.M) {
	var order models.Order
	err := oc.DB.Orders.FindOne(context.TODO(), filter).Decode(&order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			respondNotFound(c, "Order not found")
		} else {
			respondInternal(c, "Failed to retrieve order")
		}
		return
	}
	c.JSON(http.StatusOK, order)
}

func (oc *OrderController) RedxStatus(c *gin.Context) {
	trackingID := c.Param("trackingId")

	raw, err := oc.Redx.GetStatus(c.Request.Context(), trackingID)
	if err != nil {
		respondUpstream(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", raw)
}

// SendToRedx submits the parcel and, on success, stores the returned
// tracking id on the order. The two writes are not transactional: a store
// failure after a successful submission leaves the courier holding a parcel
// the order does not reference.
func (oc *OrderController) SendToRedx(c *gin.Context) {
	var body struct {
		OrderID              string  `json:"orderId"`
		InvoiceID            string  `json:"invoiceId"`
		CustomerName         string  `json:"customerName"`
		PhoneNumber          string  `json:"phoneNumber"`
		Address              string  `json:"address"`
		Area                 string  `json:"area"`
		AreaID               int     `json:"areaId"`
		CashCollectionAmount float64 `json:"cashCollectionAmount"`
		ParcelWeight         int     `json:"parcelWeight"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondValidation(c, "Invalid request body")
		return
	}
	objID, err := primitive.ObjectIDFromHex(body.OrderID)
	if err != nil {
		respondValidation(c, "Invalid order ID")
		return
	}

	parcel, err := oc.Redx.CreateParcel(c.Request.Context(), courier.ParcelRequest{
		CustomerName:         body.CustomerName,
		CustomerPhone:        body.PhoneNumber,
		CustomerAddress:      body.Address,
		DeliveryArea:         body.Area,
		DeliveryAreaID:       body.AreaID,
		MerchantInvoiceID:    body.InvoiceID,
		CashCollectionAmount: body.CashCollectionAmount,
		ParcelWeight:         body.ParcelWeight,
	})
	if err != nil {
		respondUpstream(c, err)
		return
	}

	update := bson.M{"$set": bson.M{
		"consignmentId":   parcel.TrackingID,
		"logistictStatus": models.LogisticRedx,
		"updatedAt":       time.Now(),
	}}
	result, err := oc.DB.Orders.UpdateOne(context.TODO(), bson.M{"_id": objID}, update)
	if err != nil {
		respondInternal(c, "Parcel created but failed to update order")
		return
	}
	if result.MatchedCount == 0 {
		respondNotFound(c, "Order not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":    "Order sent to Redx successfully!",
		"trackingId": parcel.TrackingID,
	})
}
