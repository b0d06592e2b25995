// Package policy holds the stateless authorization decisions. Functions
// answer "may this actor touch this resource" from actor and resource
// attributes alone; they never reach the store, so services look up
// whatever existence facts a decision needs first.
package policy

import (
	"github.com/taskforge/todo-system/internal/core/domain"
)

// CheckOwned applies the self-or-superuser rule for by-id reads, updates
// and deletes. notFound is the taxonomy kind disclosed to superusers when
// the target is missing (ErrUserNotFound or ErrTaskNotFound).
//
// Non-superusers probing a resource they do not own get ErrForbidden even
// when the resource does not exist: an unprivileged caller must never be
// able to tell "forbidden" apart from "not found".
func CheckOwned(actor *domain.User, ownerID int64, exists bool, notFound error) error {
	if exists && actor.ID == ownerID {
		return nil
	}
	if actor.IsSuperuser {
		if !exists {
			return notFound
		}
		return nil
	}
	return domain.ErrForbidden
}

// CheckCreateOnBehalf applies the creation-on-behalf rule for tasks.
// Creating for oneself is always allowed; creating for another user
// requires superuser privilege, and a superuser naming a missing owner
// learns so via ErrUserNotFound.
func CheckCreateOnBehalf(actor *domain.User, ownerID int64, ownerExists bool) error {
	if ownerID == actor.ID {
		return nil
	}
	if !actor.IsSuperuser {
		return domain.ErrForbidden
	}
	if !ownerExists {
		return domain.ErrUserNotFound
	}
	return nil
}

// CheckUserUpdate blocks privilege escalation: only superusers may set
// is_superuser on an update, their own included.
func CheckUserUpdate(actor *domain.User, isSuperuser *bool) error {
	if isSuperuser != nil && *isSuperuser && !actor.IsSuperuser {
		return domain.ErrForbidden
	}
	return nil
}

// DeactivateOnEmailChange reports whether an update changing the target's
// email must force is_active to false (email re-verification). Superusers
// are exempt.
func DeactivateOnEmailChange(actor *domain.User, currentEmail string, newEmail *string) bool {
	if actor.IsSuperuser {
		return false
	}
	return newEmail != nil && *newEmail != currentEmail
}

// CanListAllTasks reports whether the actor's task listing spans all
// owners. Non-superusers only ever see their own tasks.
func CanListAllTasks(actor *domain.User) bool {
	return actor.IsSuperuser
}

// CanListUsers gates the user listing; only superusers may enumerate
// accounts.
func CanListUsers(actor *domain.User) error {
	if !actor.IsSuperuser {
		return domain.ErrForbidden
	}
	return nil
}
