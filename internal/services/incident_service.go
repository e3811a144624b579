package services

import (
	"errors"
	"strings"
	"time"

	"github.com/tidelog/tidelog/internal/models"
)

var ErrIncidentNotFound = errors.New("incident not found")

type IncidentStore interface {
	ListByUserDay(userID uint, dayStart time.Time, dayEnd time.Time) ([]models.Incident, error)
	ListByUserRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.Incident, error)
	FindByUserAndID(userID uint, incidentID string) (models.Incident, bool, error)
	Create(incident *models.Incident) error
	Save(incident *models.Incident) error
	Delete(userID uint, incidentID string) error
}

type DayReportCompiler interface {
	CompileDayReport(userID uint, date time.Time) error
}

type IncidentInput struct {
	Date     time.Time
	Time     string
	Symptoms string
	Notes    string
	Rating   *int
}

// IncidentService owns the incident lifecycle and invokes the compiler
// synchronously after every mutation, so the derived report never lags a
// committed write.
type IncidentService struct {
	incidents IncidentStore
	compiler  DayReportCompiler
}

func NewIncidentService(incidents IncidentStore, compiler DayReportCompiler) *IncidentService {
	return &IncidentService{
		incidents: incidents,
		compiler:  compiler,
	}
}

func (service *IncidentService) CreateIncident(userID uint, input IncidentInput) (models.Incident, error) {
	incident := models.Incident{
		UserID:   userID,
		Date:     DayStartUTC(input.Date),
		Time:     strings.TrimSpace(input.Time),
		Symptoms: input.Symptoms,
		Notes:    input.Notes,
		Rating:   input.Rating,
	}
	if err := service.incidents.Create(&incident); err != nil {
		return models.Incident{}, err
	}
	if err := service.compiler.CompileDayReport(userID, incident.Date); err != nil {
		return models.Incident{}, err
	}
	return incident, nil
}

// UpdateIncident recompiles the new day and, when the date moved, the old
// day as well, so neither side keeps a stale derived report.
func (service *IncidentService) UpdateIncident(userID uint, incidentID string, input IncidentInput) (models.Incident, error) {
	incident, found, err := service.incidents.FindByUserAndID(userID, incidentID)
	if err != nil {
		return models.Incident{}, err
	}
	if !found {
		return models.Incident{}, ErrIncidentNotFound
	}

	previousDay := DayStartUTC(incident.Date)
	newDay := DayStartUTC(input.Date)

	incident.Date = newDay
	incident.Time = strings.TrimSpace(input.Time)
	incident.Symptoms = input.Symptoms
	incident.Notes = input.Notes
	incident.Rating = input.Rating
	if err := service.incidents.Save(&incident); err != nil {
		return models.Incident{}, err
	}

	if err := service.compiler.CompileDayReport(userID, newDay); err != nil {
		return models.Incident{}, err
	}
	if !previousDay.Equal(newDay) {
		if err := service.compiler.CompileDayReport(userID, previousDay); err != nil {
			return models.Incident{}, err
		}
	}
	return incident, nil
}

// DeleteIncident recompiles the day after removal: once the last incident
// of a day disappears, its compiled report must disappear with it.
func (service *IncidentService) DeleteIncident(userID uint, incidentID string) error {
	incident, found, err := service.incidents.FindByUserAndID(userID, incidentID)
	if err != nil {
		return err
	}
	if !found {
		return ErrIncidentNotFound
	}

	if err := service.incidents.Delete(userID, incidentID); err != nil {
		return err
	}
	return service.compiler.CompileDayReport(userID, incident.Date)
}

func (service *IncidentService) GetIncident(userID uint, incidentID string) (models.Incident, error) {
	incident, found, err := service.incidents.FindByUserAndID(userID, incidentID)
	if err != nil {
		return models.Incident{}, err
	}
	if !found {
		return models.Incident{}, ErrIncidentNotFound
	}
	return incident, nil
}

func (service *IncidentService) ListForDay(userID uint, day time.Time) ([]models.Incident, error) {
	dayStart, dayEnd := DayBounds(day)
	return service.incidents.ListByUserDay(userID, dayStart, dayEnd)
}

func (service *IncidentService) ListForRange(userID uint, from time.Time, to time.Time) ([]models.Incident, error) {
	fromStart, _ := DayBounds(from)
	_, toEnd := DayBounds(to)
	return service.incidents.ListByUserRange(userID, fromStart, toEnd)
}
