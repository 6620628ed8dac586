package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"record-tracker/internal/export"
	"record-tracker/internal/middleware"
	"record-tracker/internal/services"
)

// AdminController serves the admin panel and the spreadsheet export.
type AdminController struct {
	recordService services.RecordService
}

// NewAdminController creates a new instance of AdminController
func NewAdminController(recordService services.RecordService) *AdminController {
	return &AdminController{recordService: recordService}
}

// Panel lists every user's records joined with owner identity, newest first.
func (ac *AdminController) Panel(c *gin.Context) {
	rows, err := ac.recordService.ListAllWithOwner()
	if err != nil {
		log.WithError(err).Error("listing all records failed")
		rows = nil
	}

	c.HTML(http.StatusOK, "admin_dashboard.html", gin.H{
		"User": middleware.SessionUser(c),
		"Rows": rows,
	})
}

// Export streams every record as an xlsx attachment with a fixed filename.
func (ac *AdminController) Export(c *gin.Context) {
	rows, err := ac.recordService.ListAllWithOwner()
	if err != nil {
		log.WithError(err).Error("listing all records failed")
		rows = nil
	}

	workbook, err := export.BuildWorkbook(rows)
	if err != nil {
		log.WithError(err).Error("building export workbook failed")
		c.String(http.StatusInternalServerError, "export failed")
		return
	}
	defer workbook.Close()

	buf, err := workbook.WriteToBuffer()
	if err != nil {
		log.WithError(err).Error("serializing export workbook failed")
		c.String(http.StatusInternalServerError, "export failed")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	c.Data(http.StatusOK, export.ContentType, buf.Bytes())
}
