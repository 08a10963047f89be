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
	"go.mongodb.org/mongo-driver/mongo"
)

type UserController struct {
	DB *config.Database
}

func NewUserController(db *config.Database) *UserController {
	return &UserController{DB: db}
}

func (uc *UserController) GetAllUsers(c *gin.Context) {
	cursor, err := uc.DB.Users.Find(context.TODO(), bson.M{})
	if err != nil {
		respondInternal(c, "Failed to retrieve users")
		return
	}
	defer cursor.Close(context.TODO())

	users := []models.User{}
	if err := cursor.All(context.TODO(), &users); err != nil {
		respondInternal(c, "Failed to decode users")
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUserByUID looks up one agent by the external auth-provider id.
func (uc *UserController) GetUserByUID(c *gin.Context) {
	uid := c.Param("id")

	var user models.User
	err := uc.DB.Users.FindOne(context.TODO(), bson.M{"uid": uid}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			respondNotFound(c, "User not found")
		} else {
			respondInternal(c, "Error fetching user")
		}
		return
	}
	c.JSON(http.StatusOK, user)
}

func (uc *UserController) CreateUser(c *gin.Context) {
	var body struct {
		UserName string `json:"userName"`
		Email    string `json:"email"`
		UID      string `json:"uid"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondValidation(c, "Invalid request body")
		return
	}
	if body.UID == "" {
		respondValidation(c, "uid is required")
		return
	}

	user := models.User{
		UID:       body.UID,
		UserName:  body.UserName,
		Email:     body.Email,
		CreatedAt: time.Now(),
	}
	if _, err := uc.DB.Users.InsertOne(context.TODO(), user); err != nil {
		respondInternal(c, "Failed to store user")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "User stored in database successfully"})
}

func (uc *UserController) UpdateRole(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondValidation(c, "Invalid user ID")
		return
	}

	var body struct {
		Role string `json:"role"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Role == "" {
		respondValidation(c, "role is required")
		return
	}

	result, err := uc.DB.Users.UpdateOne(
		context.TODO(),
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{"role": body.Role}},
	)
	if err != nil {
		respondInternal(c, "Failed to update role")
		return
	}
	if result.MatchedCount == 0 {
		respondNotFound(c, "User not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Role updated successfully"})
}

func (uc *UserController) DeleteUser(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondValidation(c, "Invalid user ID")
		return
	}

	result, err := uc.DB.Users.DeleteOne(context.TODO(), bson.M{"_id": objID})
	if err != nil {
		respondInternal(c, "Failed to delete user")
		return
	}
	if result.DeletedCount == 0 {
		respondNotFound(c, "User not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
