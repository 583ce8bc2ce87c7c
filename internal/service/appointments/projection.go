package appointments

import (
	"github.com/fitlane/GMS-AppointmentService/internal/domain"
)

// scopeForActor возвращает подмножество записей, видимое актору:
// тренер видит свои записи как тренер, клиент - свои как клиент,
// менеджер и администратор - всю коллекцию
//
// Порядок входной коллекции сохраняется
func scopeForActor(appointments []*domain.Appointment, actor domain.Actor) []*domain.Appointment {
	if actor.Role.IsStaff() {
		return appointments
	}

	scoped := make([]*domain.Appointment, 0, len(appointments))
	for _, appt := range appointments {
		switch actor.Role {
		case domain.RoleTrainer:
			if appt.TrainerID == actor.ID {
				scoped = append(scoped, appt)
			}
		case domain.RoleMember:
			if appt.TraineeID == actor.ID {
				scoped = append(scoped, appt)
			}
		}
	}
	return scoped
}

// projectPage строит страницу коллекции для актора
//
// Скоупинг применяется ровно один раз - до подсчёта статусов и до
// пагинации, чтобы счётчики и страница считались по одному и тому же
// множеству. Счётчики считаются по всей отфильтрованной коллекции,
// а не по текущей странице. Порядок записей не меняется
func projectPage(
	appointments []*domain.Appointment,
	actor domain.Actor,
	page domain.PageRequest,
) ([]*domain.Appointment, int, domain.StatusTally) {
	scoped := scopeForActor(appointments, actor)

	var tally domain.StatusTally
	for _, appt := range scoped {
		tally.Add(appt.Status)
	}

	total := len(scoped)

	// Срез [(page-1)*perPage, page*perPage), обрезанный по границам коллекции
	// Номер страницы за пределами коллекции даёт пустую страницу; умножение
	// и сложение выполняются только там, где переполнение исключено
	start := total
	if page.Page-1 <= total/page.PerPage {
		start = (page.Page - 1) * page.PerPage
		if start > total {
			start = total
		}
	}
	end := start + page.PerPage
	if end > total || end < start {
		end = total
	}

	return scoped[start:end], total, tally
}
