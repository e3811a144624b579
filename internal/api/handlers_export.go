package api

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/tidelog/tidelog/internal/services"
)

func (handler *Handler) Export(c *fiber.Ctx) error {
	user := currentUser(c)

	from, to, err := services.ParseDayRange(c.Query("from"), c.Query("to"), services.MaxExportRangeDays)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, cappedRangeErrorMessage(err, services.MaxExportRangeDays))
	}

	format := c.Query("format")
	if format != "pdf" {
		format = "csv"
	}
	if format == "pdf" && !services.CanUsePDFExport(user) {
		return subscriptionRequired(c, "Active subscription required for PDF export.")
	}

	table, err := handler.exportService.BuildExportTable(user.ID, from, to)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	fromKey := services.DayKey(from)
	toKey := services.DayKey(to)

	if format == "pdf" {
		document := buildExportPDF(table, from, to)
		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition,
			fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("tidelog-report-%s-%s.pdf", fromKey, toKey)))
		return c.Send(document)
	}

	data, err := buildExportCSV(table)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("tidelog-export-%s-%s.csv", fromKey, toKey)))
	return c.Send(data)
}
