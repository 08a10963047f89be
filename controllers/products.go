package controllers

import (
	"context"
	"net/http"
	"strconv"

	"backend/config"
	"backend/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProductController struct {
	DB *config.Database
}

func NewProductController(db *config.Database) *ProductController {
	return &ProductController{DB: db}
}

func (pc *ProductController) GetAllProducts(c *gin.Context) {
	cursor, err := pc.DB.Products.Find(context.TODO(), bson.M{})
	if err != nil {
		respondInternal(c, "Error fetching products")
		return
	}
	defer cursor.Close(context.TODO())

	products := []models.Product{}
	if err := cursor.All(context.TODO(), &products); err != nil {
		respondInternal(c, "Failed to decode products")
		return
	}
	c.JSON(http.StatusOK, products)
}

func (pc *ProductController) CreateProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		respondValidation(c, "Invalid request body")
		return
	}
	if product.ID == "" {
		respondValidation(c, "Parent code is required")
		return
	}

	if _, err := pc.DB.Products.InsertOne(context.TODO(), product); err != nil {
		respondInternal(c, "Failed to create product")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Product created successfully!"})
}

func (pc *ProductController) AddParent(c *gin.Context) {
	var body struct {
		ID string `json:"_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.ID == "" {
		respondValidation(c, "Parent code is required")
		return
	}

	product := models.Product{ID: body.ID, ParentCode: models.ParentCode{SubProducts: []models.SubProduct{}}}
	if _, err := pc.DB.Products.InsertOne(context.TODO(), product); err != nil {
		respondInternal(c, "Failed to add parent code")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Parent code added successfully!"})
}

func (pc *ProductController) GetParentCodes(c *gin.Context) {
	opts := options.Find().SetProjection(bson.M{"_id": 1})
	cursor, err := pc.DB.Products.Find(context.TODO(), bson.M{}, opts)
	if err != nil {
		respondInternal(c, "Failed to retrieve parent codes")
		return
	}
	defer cursor.Close(context.TODO())

	codes := []bson.M{}
	if err := cursor.All(context.TODO(), &codes); err != nil {
		respondInternal(c, "Failed to decode parent codes")
		return
	}
	c.JSON(http.StatusOK, codes)
}

func (pc *ProductController) GetSKUs(c *gin.Context) {
	parentCode := c.Param("id")

	var product models.Product
	err := pc.DB.Products.FindOne(context.TODO(), bson.M{"_id": parentCode}).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			respondNotFound(c, "Parent Code not found")
		} else {
			respondInternal(c, "Failed to retrieve SKUs")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"skus": product.ParentCode.SubProducts})
}

func (pc *ProductController) AddSubProduct(c *gin.Context) {
	parentID := c.Param("id")

	var sub models.SubProduct
	if err := c.ShouldBindJSON(&sub); err != nil {
		respondValidation(c, "Invalid request body")
		return
	}
	if sub.SKU == "" {
		respondValidation(c, "SKU is required")
		return
	}

	result, err := pc.DB.Products.UpdateOne(
		context.TODO(),
		bson.M{"_id": parentID},
		bson.M{"$push": bson.M{"parentcode.subproduct": sub}},
	)
	if err != nil {
		respondInternal(c, "Failed to add subproduct")
		return
	}
	if result.MatchedCount == 0 {
		respondNotFound(c, "Parent Code not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Subproduct added successfully!"})
}

// BulkUpload upserts sub-products keyed by (parentcode, sku). Numeric
// columns arrive as strings and are parsed strictly.
func (pc *ProductController) BulkUpload(c *gin.Context) {
	var body struct {
		Products []models.BulkProductRow `json:"products"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || len(body.Products) == 0 {
		respondValidation(c, "Invalid data format. Products should be a non-empty array.")
		return
	}

	for _, row := range body.Products {
		if row.ParentCode == "" || row.SKU == "" {
			respondValidation(c, "Each product needs a parentcode and sku")
			return
		}
		buying, err := models.ParseAmount("buying_price", row.BuyingPrice)
		if err != nil {
			respondValidation(c, err.Error())
			return
		}
		selling, err := models.ParseAmount("selling_price", row.SellingPrice)
		if err != nil {
			respondValidation(c, err.Error())
			return
		}
		qty, err := strconv.Atoi(row.Quantity)
		if err != nil {
			respondValidation(c, "quantity must be an integer, got "+strconv.Quote(row.Quantity))
			return
		}

		sub := models.SubProduct{
			SKU:          row.SKU,
			Name:         row.Name,
			BuyingPrice:  buying,
			SellingPrice: selling,
			Quantity:     qty,
		}

		if err := pc.upsertSubProduct(row.ParentCode, sub); err != nil {
			respondInternal(c, "Error uploading products")
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "Products uploaded successfully"})
}

func (pc *ProductController) upsertSubProduct(parentCode string, sub models.SubProduct) error {
	// Update in place when the SKU already exists under the parent.
	result, err := pc.DB.Products.UpdateOne(
		context.TODO(),
		bson.M{"_id": parentCode, "parentcode.subproduct.sku": sub.SKU},
		bson.M{"$set": bson.M{
			"parentcode.subproduct.$.name":          sub.Name,
			"parentcode.subproduct.$.buying_price":  sub.BuyingPrice,
			"parentcode.subproduct.$.selling_price": sub.SellingPrice,
			"parentcode.subproduct.$.quantity":      sub.Quantity,
		}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount > 0 {
		return nil
	}

	// Parent exists without this SKU: append it.
	result, err = pc.DB.Products.UpdateOne(
		context.TODO(),
		bson.M{"_id": parentCode},
		bson.M{"$push": bson.M{"parentcode.subproduct": sub}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount > 0 {
		return nil
	}

	// New parent entirely.
	_, err = pc.DB.Products.InsertOne(context.TODO(), models.Product{
		ID:         parentCode,
		ParentCode: models.ParentCode{SubProducts: []models.SubProduct{sub}},
	})
	return err
}

func (pc *ProductController) UpdateProduct(c *gin.Context) {
	id := c.Param("id")

	var update bson.M
	if err := c.ShouldBindJSON(&update); err != nil || len(update) == 0 {
		respondValidation(c, "Invalid request body")
		return
	}
	delete(update, "_id")

	result, err := pc.DB.Products.UpdateOne(context.TODO(), bson.M{"_id": id}, bson.M{"$set": update})
	if err != nil {
		respondInternal(c, "Failed to update product")
		return
	}
	if result.MatchedCount == 0 {
		respondNotFound(c, "Product not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully!"})
}

func (pc *ProductController) DeleteProduct(c *gin.Context) {
	id := c.Param("id")

	result, err := pc.DB.Products.DeleteOne(context.TODO(), bson.M{"_id": id})
	if err != nil {
		respondInternal(c, "Failed to delete product")
		return
	}
	if result.DeletedCount == 0 {
		respondNotFound(c, "Product not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully!"})
}

func (pc *ProductController) DeleteSubProduct(c *gin.Context) {
	id := c.Param("id")
	sku := c.Param("sku")

	result, err := pc.DB.Products.UpdateOne(
		context.TODO(),
		bson.M{"_id": id},
		bson.M{"$pull": bson.M{"parentcode.subproduct": bson.M{"sku": sku}}},
	)
	if err != nil {
		respondInternal(c, "Error deleting subproduct")
		return
	}
	if result.ModifiedCount == 0 {
		respondNotFound(c, "Subproduct not found or already deleted")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Subproduct deleted successfully"})
}
