package api

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tidelog/tidelog/internal/services"
)

func parseReportInput(c *fiber.Ctx) (services.ReportInput, string) {
	payload := reportPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return services.ReportInput{}, "invalid input"
	}

	date, err := services.ParseCalendarDay(strings.TrimSpace(payload.Date))
	if err != nil {
		return services.ReportInput{}, "date must be YYYY-MM-DD"
	}

	input := services.ReportInput{
		Date:             date,
		Diet:             payload.Diet,
		Exercise:         payload.Exercise,
		Medicine:         payload.Medicine,
		WaterIntake:      payload.WaterIntake,
		SodiumIntake:     payload.SodiumIntake,
		FeelingMorning:   payload.FeelingMorning,
		FeelingAfternoon: payload.FeelingAfternoon,
		FeelingNight:     payload.FeelingNight,
		OverallRating:    payload.OverallRating,
	}
	if validationError := services.ValidateReportInput(input); validationError != "" {
		return services.ReportInput{}, validationError
	}
	return input, ""
}

const defaultReportListDays = 90

func (handler *Handler) ListReports(c *fiber.Ctx) error {
	user := currentUser(c)

	fromValue := strings.TrimSpace(c.Query("from"))
	toValue := strings.TrimSpace(c.Query("to"))
	if fromValue == "" && toValue == "" {
		end := services.TodayStartUTC(time.Now())
		fromValue = services.DayKey(end.AddDate(0, 0, -defaultReportListDays))
		toValue = services.DayKey(end)
	}

	from, to, err := services.ParseDayRange(fromValue, toValue, 0)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, rangeErrorMessage(err))
	}
	reports, err := handler.reportService.ListRange(user.ID, from, to)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load reports")
	}
	return c.JSON(fiber.Map{"reports": reportListJSON(reports)})
}

func (handler *Handler) UpsertReport(c *fiber.Ctx) error {
	user := currentUser(c)

	input, validationError := parseReportInput(c)
	if validationError != "" {
		return apiError(c, fiber.StatusBadRequest, validationError)
	}

	report, err := handler.reportService.UpsertFullLog(user.ID, input)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save report")
	}
	return c.JSON(reportJSON(report))
}

func (handler *Handler) GetReport(c *fiber.Ctx) error {
	user := currentUser(c)

	report, err := handler.reportService.GetReport(user.ID, c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrReportNotFound) {
			return apiError(c, fiber.StatusNotFound, "report not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to load report")
	}
	return c.JSON(reportJSON(report))
}

func (handler *Handler) DeleteReport(c *fiber.Ctx) error {
	user := currentUser(c)

	if err := handler.reportService.DeleteReport(user.ID, c.Params("id")); err != nil {
		if errors.Is(err, services.ErrReportNotFound) {
			return apiError(c, fiber.StatusNotFound, "report not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to delete report")
	}
	return c.JSON(fiber.Map{"ok": true})
}
