package routes

import (
	"net/http"

	"backend/config"
	"backend/controllers"
	"backend/courier"

	"github.com/gin-gonic/gin"
)

func InitializeRoutes(router *gin.Engine, db *config.Database, redx courier.Client) {
	orders := controllers.NewOrderController(db, redx)
	products := controllers.NewProductController(db)
	redxAreas := controllers.NewAreaController(db.RedxAreas, redx)
	pathaowAreas := controllers.NewAreaController(db.PathaowAreas, nil)
	users := controllers.NewUserController(db)
	pages := controllers.NewPageController(db)
	reports := controllers.NewReportController(db)

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Server is running")
	})

	api := router.Group("/api")

	order := api.Group("/orders")
	{
		order.POST("", orders.CreateOrder)
		order.GET("", orders.GetAllOrders)
		order.GET("/assigned/:userId", orders.GetAssignedOrders)
		order.POST("/bulk-assign", orders.BulkAssign)
		order.POST("/mark-printed", orders.MarkPrinted)
		order.POST("/mark-exported", orders.MarkExported)
		order.PATCH("/update-status/:id", orders.UpdateLogisticStatus)
		order.PUT("/update-status", orders.UpdateStatusByConsignment)
		order.POST("/find", orders.FindByInvoice)
		order.POST("/find-redx", orders.FindByConsignment)
		order.GET("/redx-status/:trackingId", orders.RedxStatus)
		order.POST("/send-to-redx", orders.SendToRedx)
		order.PUT("/:id", orders.UpdateOrder)
		order.DELETE("/:id", orders.DeleteOrder)
	}

	product := api.Group("/products")
	{
		product.GET("", products.GetAllProducts)
		product.POST("", products.CreateProduct)
		product.POST("/add-parent", products.AddParent)
		product.GET("/parent-codes", products.GetParentCodes)
		product.GET("/:id/skus", products.GetSKUs)
		product.POST("/add-subproduct/:id", products.AddSubProduct)
		product.POST("/bulk-upload", products.BulkUpload)
		product.PUT("/:id", products.UpdateProduct)
		product.DELETE("/:id", products.DeleteProduct)
		product.DELETE("/:id/subproduct/:sku", products.DeleteSubProduct)
	}

	redxGroup := api.Group("/redx")
	{
		redxGroup.GET("", redxAreas.GetDistricts)
		redxGroup.GET("/areas", redxAreas.LiveAreas)
		redxGroup.POST("/add-district", redxAreas.AddDistrict)
		redxGroup.DELETE("/delete-district/:id", redxAreas.DeleteDistrict)
		redxGroup.POST("/add-area/:districtId", redxAreas.AddArea)
		redxGroup.POST("/bulk-upload", redxAreas.BulkUpload)
		redxGroup.PUT("/update-area/:districtId/:areaId", redxAreas.UpdateArea)
		redxGroup.DELETE("/delete-area/:districtId/:areaId", redxAreas.DeleteArea)
	}

	pathaowGroup := api.Group("/pathaow")
	{
		pathaowGroup.GET("", pathaowAreas.GetDistricts)
		pathaowGroup.POST("/add-district", pathaowAreas.AddDistrict)
		pathaowGroup.DELETE("/delete-district/:id", pathaowAreas.DeleteDistrict)
		pathaowGroup.POST("/add-area/:districtId", pathaowAreas.AddArea)
		pathaowGroup.POST("/bulk-upload", pathaowAreas.BulkUpload)
		pathaowGroup.PUT("/update-area/:districtId/:areaId", pathaowAreas.UpdateArea)
		pathaowGroup.DELETE("/delete-area/:districtId/:areaId", pathaowAreas.DeleteArea)
	}

	user := api.Group("/users")
	{
		user.GET("", users.GetAllUsers)
		user.POST("", users.CreateUser)
		user.GET("/:id", users.GetUserByUID)
		user.PUT("/:id/role", users.UpdateRole)
		user.DELETE("/:id", users.DeleteUser)
	}

	page := api.Group("/facebook-pages")
	{
		page.POST("/create", pages.CreatePage)
		page.GET("", pages.GetAllPages)
		page.PUT("/:id", pages.UpdatePage)
		page.DELETE("/:id", pages.DeletePage)
	}

	report := api.Group("/reports")
	{
		report.POST("/call-center-summary", reports.CallCenterSummary)
		report.POST("/date-wise", reports.DateWiseSummary)
	}
}
