package appointments

import (
	"github.com/fitlane/GMS-AppointmentService/internal/domain"
)

// decideTransition решает, допустим ли переход записи в целевой статус
// для данного актора
//
// Чистая функция над снимком записи: не перечитывает состояние, поэтому
// вызывающая сторона обязана получить свежую запись непосредственно перед
// вызовом. Гонку со встречным переходом разрешает проверка версии в хранилище
//
// Порядок проверок: сначала достижимость перехода (ErrIllegalTransition),
// затем право роли и принадлежность записи актору (ErrForbidden)
func decideTransition(appt *domain.Appointment, target domain.AppointmentStatus, actor domain.Actor) error {
	if !domain.TransitionExists(appt.Status, target) {
		return ErrIllegalTransition
	}

	if !domain.RoleMayTransition(appt.Status, target, actor.Role) {
		return ErrForbidden
	}

	// Проверки принадлежности: принять/отклонить/завершить может только
	// назначенный тренер, отменить как клиент - только записанный клиент
	switch actor.Role {
	case domain.RoleTrainer:
		if appt.TrainerID != actor.ID {
			return ErrForbidden
		}
	case domain.RoleMember:
		if appt.TraineeID != actor.ID {
			return ErrForbidden
		}
	}

	return nil
}
