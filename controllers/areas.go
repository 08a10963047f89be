package controllers

import (
	"context"
	"net/http"

	"backend/courier"
	"backend/models"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// AreaController serves one courier's district/area tree. It is
// instantiated twice, over the Redx and Pathaow collections; only Redx
// carries a live courier client for the area proxy.
type AreaController struct {
	Collection *mongo.Collection
	Redx       courier.Client
}

func NewAreaController(collection *mongo.Collection, redx courier.Client) *AreaController {
	return &AreaController{Collection: collection, Redx: redx}
}

// LiveAreas proxies the courier's own area list for a district.
func (ac *AreaController) LiveAreas(c *gin.Context) {
	districtName := c.Query("districtName")

	raw, err := ac.Redx.ListAreas(c.Request.Context(), districtName)
	if err != nil {
		respondUpstream(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", raw)
}

func (ac *AreaController) GetDistricts(c *gin.Context) {
	cursor, err := ac.Collection.Find(context.TODO(), bson.M{})
	if err != nil {
		respondInternal(c, "Error fetching districts")
		return
	}
	defer cursor.Close(context.TODO())

	districts := []models.District{}
	if err := cursor.All(context.TODO(), &districts); err != nil {
		respondInternal(c, "Failed to decode districts")
		return
	}
	c.JSON(http.StatusOK, districts)
}

func (ac *AreaController) AddDistrict(c *gin.Context) {
	var body struct {
		District string `json:"district"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.District == "" {
		respondValidation(c, "District name is required")
		return
	}

	err := ac.Collection.FindOne(context.TODO(), bson.M{"name": body.District}).Err()
	if err == nil {
		respondValidation(c, "District already exists")
		return
	}
	if err != mongo.ErrNoDocuments {
		respondInternal(c, "Failed to add district")
		return
	}

	district := models.District{Name: body.District, Areas: []models.Area{}}
	result, err := ac.Collection.InsertOne(context.TODO(), district)
	if err != nil {
		respondInternal(c, "Failed to add district")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"insertedId": result.InsertedID})
}

func (ac *AreaController) DeleteDistrict(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondValidation(c, "Invalid district ID")
		return
	}

	result, err := ac.Collection.DeleteOne(context.TODO(), bson.M{"_id": objID})
	if err != nil {
		respondInternal(c, "Failed to delete district")
		return
	}
	if result.DeletedCount == 0 {
		respondNotFound(c, "District not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "District deleted successfully"})
}

// AddArea pushes a new area with a freshly generated id and returns the
// updated district so the caller can pick the id up for later edits.
func (ac *AreaController) AddArea(c *gin.Context) {
	districtID, err := primitive.ObjectIDFromHex(c.Param("districtId"))
	if err != nil {
		respondValidation(c, "Invalid district ID")
		return
	}

	var body struct {
		Area string `json:"area"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Area == "" {
		respondValidation(c, "Area name is required")
		return
	}

	area := models.Area{ID: primitive.NewObjectID(), Name: body.Area}
	result, err := ac.Collection.UpdateOne(
		context.TODO(),
		bson.M{"_id": districtID},
		bson.M{"$push": bson.M{"areas": area}},
	)
	if err != nil {
		respondInternal(c, "Failed to add area")
		return
	}
	if result.MatchedCount == 0 {
		respondNotFound(c, "District not found")
		return
	}

	var district models.District
	if err := ac.Collection.FindOne(context.TODO(), bson.M{"_id": districtID}).Decode(&district); err != nil {
		respondInternal(c, "Failed to add area")
		return
	}
	c.JSON(http.StatusOK, district)
}

func (ac *AreaController) UpdateArea(c *gin.Context) {
	districtID, err := primitive.ObjectIDFromHex(c.Param("districtId"))
	if err != nil {
		respondValidation(c, "Invalid district ID")
		return
	}
	areaID, err := primitive.ObjectIDFromHex(c.Param("areaId"))
	if err != nil {
		respondValidation(c, "Invalid area ID")
		return
	}

	var body struct {
		Area string `json:"area"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Area == "" {
		respondValidation(c, "Area name is required")
		return
	}

	result, err := ac.Collection.UpdateOne(
		context.TODO(),
		bson.M{"_id": districtID, "areas._id": areaID},
		bson.M{"$set": bson.M{"areas.$.name": body.Area}},
	)
	if err != nil {
		respondInternal(c, "Failed to update area")
		return
	}
	if result.MatchedCount == 0 {
		respondNotFound(c, "Area not found")
		return
	}

	var district models.District
	if err := ac.Collection.FindOne(context.TODO(), bson.M{"_id": districtID}).Decode(&district); err != nil {
		respondInternal(c, "Failed to update area")
		return
	}
	c.JSON(http.StatusOK, district)
}

func (ac *AreaController) DeleteArea(c *gin.Context) {
	districtID, err := primitive.ObjectIDFromHex(c.Param("districtId"))
	if err != nil {
		respondValidation(c, "Invalid district ID")
		return
	}
	areaID, err := primitive.ObjectIDFromHex(c.Param("areaId"))
	if err != nil {
		respondValidation(c, "Invalid area ID")
		return
	}

	result, err := ac.Collection.UpdateOne(
		context.TODO(),
		bson.M{"_id": districtID},
		bson.M{"$pull": bson.M{"areas": bson.M{"_id": areaID}}},
	)
	if err != nil {
		respondInternal(c, "Failed to delete area")
		return
	}
	if result.ModifiedCount == 0 {
		respondNotFound(c, "Area not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Area deleted successfully"})
}

// BulkUpload upserts districts (and optionally areas) from an uploaded
// workbook. The upsert is keyed by district name; rows carrying an area get
// it appended with a generated id.
func (ac *AreaController) BulkUpload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondValidation(c, "Please upload a file")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		respondInternal(c, "Error processing file")
		return
	}
	defer file.Close()

	rows, err := utils.ParseAreaSheet(file)
	if err != nil {
		if err == utils.ErrNoRows {
			respondValidation(c, "No valid data found in file")
		} else {
			respondInternal(c, "Error processing file")
		}
		return
	}

	writes := make([]mongo.WriteModel, 0, len(rows))
	for _, row := range rows {
		update := bson.M{"$setOnInsert": bson.M{"name": row.District}}
		if row.Area != "" {
			update["$addToSet"] = bson.M{"areas": models.Area{
				ID:   primitive.NewObjectID(),
				Name: row.Area,
			}}
		}
		writes = append(writes, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"name": row.District}).
			SetUpdate(update).
			SetUpsert(true))
	}

	result, err := ac.Collection.BulkWrite(context.TODO(), writes)
	if err != nil {
		respondInternal(c, "Error processing file")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":       "Bulk upload successful",
		"upsertedCount": result.UpsertedCount,
		"modifiedCount": result.ModifiedCount,
	})
}
