package list_appointments

import (
	"strconv"
	"time"

	"github.com/fitlane/GMS-AppointmentService/internal/domain"
	"github.com/fitlane/GMS-AppointmentService/internal/service/appointments/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(
	actor domain.Actor,
	pageStr string,
	perPageStr string,
	statusStr string,
	dateStr string,
) (*models.ListAppointmentsRequest, error) {
	req := &models.ListAppointmentsRequest{
		Actor: actor,
		Page: domain.PageRequest{
			Page:    domain.DefaultPage,
			PerPage: domain.DefaultPerPage,
		},
	}

	// Парсим page если указан
	if pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil {
			return nil, err
		}
		req.Page.Page = page
	}

	// Парсим perPage если указан
	if perPageStr != "" {
		perPage, err := strconv.Atoi(perPageStr)
		if err != nil {
			return nil, err
		}
		if perPage > domain.MaxPerPage {
			perPage = domain.MaxPerPage
		}
		req.Page.PerPage = perPage
	}

	// Парсим status если указан
	if statusStr != "" {
		req.Status = &statusStr
	}

	// Парсим date если указана
	if dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	return req, nil
}
