package controllers

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"time"

	"backend/config"
	"backend/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

type ReportController struct {
	DB *config.Database
}

func NewReportController(db *config.Database) *ReportController {
	return &ReportController{DB: db}
}

type reportRangeInput struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// reportRange turns the submitted dates into an inclusive window: the end
// date is pushed to the last instant of its day.
func reportRange(startDate, endDate string) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("startDate must be YYYY-MM-DD, got %q", startDate)
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("endDate must be YYYY-MM-DD, got %q", endDate)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("endDate is before startDate")
	}
	end = time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 999999999, end.Location())
	return start, end, nil
}

// callCenterStatuses is the status breakout of the per-agent summary.
var callCenterStatuses = []string{
	models.StatusPending,
	models.StatusCancel,
	models.StatusNoAnswer,
	models.StatusRedx,
	models.StatusSteadfast,
	models.StatusPathaow,
}

type CallCenterRow struct {
	UID           string           `json:"uid"`
	UserName      string           `json:"userName"`
	StatusCounts  map[string]int64 `json:"statusCounts"`
	TotalAssigned int64            `json:"totalAssigned"`
}

// CallCenterSummary counts each agent's assigned orders in the range,
// broken out by status. Agents with nothing assigned in range are omitted;
// rows are sorted by user name so the output is deterministic.
func (rc *ReportController) CallCenterSummary(c *gin.Context) {
	var input reportRangeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondValidation(c, "Invalid request body")
		return
	}
	start, end, err := reportRange(input.StartDate, input.EndDate)
	if err != nil {
		respondValidation(c, err.Error())
		return
	}

	cursor, err := rc.DB.Users.Find(context.TODO(), bson.M{})
	if err != nil {
		respondInternal(c, "Failed to retrieve users")
		return
	}
	defer cursor.Close(context.TODO())

	var users []models.User
	if err := cursor.All(context.TODO(), &users); err != nil {
		respondInternal(c, "Failed to decode users")
		return
	}

	window := bson.M{"$gte": start, "$lte": end}
	rows := []CallCenterRow{}
	for _, user := range users {
		base := bson.M{"assignedTo": user.UID, "updatedAt": window}

		total, err := rc.DB.Orders.CountDocuments(context.TODO(), base)
		if err != nil {
			respondInternal(c, "Failed to count orders")
			return
		}
		if total == 0 {
			continue
		}

		counts := make(map[string]int64, len(callCenterStatuses))
		for _, status := range callCenterStatuses {
			n, err := rc.DB.Orders.CountDocuments(context.TODO(), bson.M{
				"assignedTo": user.UID,
				"updatedAt":  window,
				"status":     status,
			})
			if err != nil {
				respondInternal(c, "Failed to count orders")
				return
			}
			counts[status] = n
		}

		rows = append(rows, CallCenterRow{
			UID:           user.UID,
			UserName:      user.UserName,
			StatusCounts:  counts,
			TotalAssigned: total,
		})
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].UserName < rows[j].UserName })
	c.JSON(http.StatusOK, rows)
}

var dateWiseStatuses = []string{
	models.StatusRedx,
	models.StatusSteadfast,
	models.StatusPathaow,
	models.StatusPending,
	models.StatusMemo,
	models.StatusCancel,
	models.StatusNoAnswer,
}

var dateWiseLogisticStatuses = []string{
	models.LogisticReturned,
	models.LogisticDamage,
	models.LogisticPartial,
}

// DateWiseSummary is the global breakdown over createdAt. Each count is an
// independent query against the same range criterion; there is no shared
// snapshot, which is acceptable for a reporting endpoint.
func (rc *ReportController) DateWiseSummary(c *gin.Context) {
	var input reportRangeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondValidation(c, "Invalid request body")
		return
	}
	start, end, err := reportRange(input.StartDate, input.EndDate)
	if err != nil {
		respondValidation(c, err.Error())
		return
	}

	window := bson.M{"$gte": start, "$lte": end}
	count := func(extra bson.M) (int64, error) {
		filter := bson.M{"createdAt": window}
		for k, v := range extra {
			filter[k] = v
		}
		return rc.DB.Orders.CountDocuments(context.TODO(), filter)
	}

	total, err := count(bson.M{})
	if err != nil {
		respondInternal(c, "Failed to count orders")
		return
	}

	statusCounts := make(map[string]int64, len(dateWiseStatuses))
	for _, status := range dateWiseStatuses {
		n, err := count(bson.M{"status": status})
		if err != nil {
			respondInternal(c, "Failed to count orders")
			return
		}
		statusCounts[status] = n
	}

	printed, err := count(bson.M{"markAsPrinted": models.MarkedPrinted})
	if err != nil {
		respondInternal(c, "Failed to count orders")
		return
	}

	logisticCounts := make(map[string]int64, len(dateWiseLogisticStatuses))
	for _, status := range dateWiseLogisticStatuses {
		n, err := count(bson.M{"logistictStatus": status})
		if err != nil {
			respondInternal(c, "Failed to count orders")
			return
		}
		logisticCounts[status] = n
	}

	c.JSON(http.StatusOK, gin.H{
		"totalOrders":    total,
		"statusCounts":   statusCounts,
		"printedCount":   printed,
		"logisticCounts": logisticCounts,
	})
}
