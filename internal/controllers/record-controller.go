package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"record-tracker/internal/middleware"
	"record-tracker/internal/models"
	"record-tracker/internal/services"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// RecordController serves the user dashboard and record submission.
type RecordController struct {
	recordService services.RecordService
}

// NewRecordController creates a new instance of RecordController
func NewRecordController(recordService services.RecordService) *RecordController {
	return &RecordController{recordService: recordService}
}

// Dashboard lists the signed-in user's own records, newest first. A store
// error degrades to an empty list so the page still renders.
func (rc *RecordController) Dashboard(c *gin.Context) {
	user := middleware.SessionUser(c)

	records, err := rc.recordService.ListByUser(user.ID)
	if err != nil {
		log.WithError(err).Error("listing records failed")
		records = nil
	}

	c.HTML(http.StatusOK, "user_dashboard.html", gin.H{
		"User":    user,
		"Records": records,
		"Error":   nil,
	})
}

// Submit validates and stores a record. A parse failure re-renders the
// dashboard with the existing records and an inline error, persisting nothing.
func (rc *RecordController) Submit(c *gin.Context) {
	user := middleware.SessionUser(c)

	input, inputErr := strconv.ParseFloat(c.PostForm("input_value"), 64)
	output, outputErr := strconv.ParseFloat(c.PostForm("output_value"), 64)
	note := c.PostForm("note")

	if inputErr != nil || outputErr != nil {
		records, err := rc.recordService.ListByUser(user.ID)
		if err != nil {
			log.WithError(err).Error("listing records failed")
			records = nil
		}
		c.HTML(http.StatusBadRequest, "user_dashboard.html", gin.H{
			"User":    user,
			"Records": records,
			"Error":   models.MsgInvalidNumbers,
		})
		return
	}

	if _, err := rc.recordService.Create(user.ID, input, output, note); err != nil {
		// Single-statement insert; nothing to roll back. Log and move on.
		log.WithError(err).Error("storing record failed")
	}
	c.Redirect(http.StatusFound, "/dashboard")
}
