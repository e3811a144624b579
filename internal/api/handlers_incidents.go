package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tidelog/tidelog/internal/services"
)

func parseIncidentInput(c *fiber.Ctx) (services.IncidentInput, string) {
	payload := incidentPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return services.IncidentInput{}, "invalid input"
	}

	date, err := services.ParseCalendarDay(strings.TrimSpace(payload.Date))
	if err != nil {
		return services.IncidentInput{}, "date must be YYYY-MM-DD"
	}

	input := services.IncidentInput{
		Date:     date,
		Time:     payload.Time,
		Symptoms: payload.Symptoms,
		Notes:    payload.Notes,
		Rating:   payload.Rating,
	}
	if validationError := services.ValidateIncidentInput(input); validationError != "" {
		return services.IncidentInput{}, validationError
	}
	return input, ""
}

func (handler *Handler) ListIncidents(c *fiber.Ctx) error {
	user := currentUser(c)

	if day := strings.TrimSpace(c.Query("date")); day != "" {
		date, err := services.ParseCalendarDay(day)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "date must be YYYY-MM-DD")
		}
		incidents, err := handler.incidentService.ListForDay(user.ID, date)
		if err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to load incidents")
		}
		return c.JSON(fiber.Map{"incidents": incidentListJSON(incidents)})
	}

	from, to, err := services.ParseDayRange(c.Query("from"), c.Query("to"), 0)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, rangeErrorMessage(err))
	}
	incidents, err := handler.incidentService.ListForRange(user.ID, from, to)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load incidents")
	}
	return c.JSON(fiber.Map{"incidents": incidentListJSON(incidents)})
}

func (handler *Handler) CreateIncident(c *fiber.Ctx) error {
	user := currentUser(c)

	input, validationError := parseIncidentInput(c)
	if validationError != "" {
		return apiError(c, fiber.StatusBadRequest, validationError)
	}

	incident, err := handler.incidentService.CreateIncident(user.ID, input)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create incident")
	}
	return c.Status(fiber.StatusCreated).JSON(incidentJSON(incident))
}

func (handler *Handler) GetIncident(c *fiber.Ctx) error {
	user := currentUser(c)

	incident, err := handler.incidentService.GetIncident(user.ID, c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrIncidentNotFound) {
			return apiError(c, fiber.StatusNotFound, "incident not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to load incident")
	}
	return c.JSON(incidentJSON(incident))
}

func (handler *Handler) UpdateIncident(c *fiber.Ctx) error {
	user := currentUser(c)

	input, validationError := parseIncidentInput(c)
	if validationError != "" {
		return apiError(c, fiber.StatusBadRequest, validationError)
	}

	incident, err := handler.incidentService.UpdateIncident(user.ID, c.Params("id"), input)
	if err != nil {
		if errors.Is(err, services.ErrIncidentNotFound) {
			return apiError(c, fiber.StatusNotFound, "incident not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to update incident")
	}
	return c.JSON(incidentJSON(incident))
}

func (handler *Handler) DeleteIncident(c *fiber.Ctx) error {
	user := currentUser(c)

	if err := handler.incidentService.DeleteIncident(user.ID, c.Params("id")); err != nil {
		if errors.Is(err, services.ErrIncidentNotFound) {
			return apiError(c, fiber.StatusNotFound, "incident not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to delete incident")
	}
	return c.JSON(fiber.Map{"ok": true})
}
