package controllers

import (
	"context"
	"net/http"
	"time"

	"backend/config"
	"backend/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PageController struct {
	DB *config.Database
}

func NewPageController(db *config.Database) *PageController {
	return &PageController{DB: db}
}

func (pc *PageController) CreatePage(c *gin.Context) {
	var body struct {
		PageName string `json:"pageName"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.PageName == "" {
		respondValidation(c, "Page name is required.")
		return
	}

	page := models.FacebookPage{PageName: body.PageName, CreatedAt: time.Now()}
	if _, err := pc.DB.FacebookPages.InsertOne(context.TODO(), page); err != nil {
		respondInternal(c, "Error creating Facebook page")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Facebook page created successfully!", "newPage": page})
}

func (pc *PageController) GetAllPages(c *gin.Context) {
	cursor, err := pc.DB.FacebookPages.Find(context.TODO(), bson.M{})
	if err != nil {
		respondInternal(c, "Failed to retrieve Facebook pages")
		return
	}
	defer cursor.Close(context.TODO())

	pages := []models.FacebookPage{}
	if err := cursor.All(context.TODO(), &pages); err != nil {
		respondInternal(c, "Failed to decode Facebook pages")
		return
	}
	c.JSON(http.StatusOK, pages)
}

func (pc *PageController) UpdatePage(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondValidation(c, "Invalid page ID")
		return
	}

	var body struct {
		PageName string `json:"pageName"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.PageName == "" {
		respondValidation(c, "Page name is required.")
		return
	}

	result, err := pc.DB.FacebookPages.UpdateOne(
		context.TODO(),
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{"pageName": body.PageName}},
	)
	if err != nil {
		respondInternal(c, "Failed to update page")
		return
	}
	if result.MatchedCount == 0 {
		respondNotFound(c, "Page not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Page updated successfully!"})
}

func (pc *PageController) DeletePage(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondValidation(c, "Invalid page ID")
		return
	}

	result, err := pc.DB.FacebookPages.DeleteOne(context.TODO(), bson.M{"_id": objID})
	if err != nil {
		respondInternal(c, "Failed to delete page")
		return
	}
	if result.DeletedCount == 0 {
		respondNotFound(c, "Page not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Page deleted successfully!"})
}
