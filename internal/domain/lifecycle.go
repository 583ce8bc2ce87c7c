package domain

// transitions maps each source status to its permitted target statuses and the
// roles allowed to perform them. Statuses absent from the map are terminal.
//
// Identity checks (only the assigned trainer, only the booked trainee) are
// enforced by the caller on top of the role check.
var transitions = map[AppointmentStatus]map[AppointmentStatus][]Role{
	StatusPending: {
		StatusAccepted:  {RoleTrainer},
		StatusRejected:  {RoleTrainer},
		StatusCancelled: {RoleMember, RoleManager, RoleReceptionist},
	},
	StatusAccepted: {
		StatusCompleted: {RoleTrainer},
		StatusCancelled: {RoleMember, RoleManager, RoleReceptionist},
	},
}

// TransitionExists returns true if target is reachable from the given status
// for at least one role
func TransitionExists(from, target AppointmentStatus) bool {
	targets, ok := transitions[from]
	if !ok {
		return false
	}
	_, ok = targets[target]
	return ok
}

// RoleMayTransition returns true if the role is permitted to perform the
// from -> target transition
func RoleMayTransition(from, target AppointmentStatus, role Role) bool {
	targets, ok := transitions[from]
	if !ok {
		return false
	}
	roles, ok := targets[target]
	if !ok {
		return false
	}
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
