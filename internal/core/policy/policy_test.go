package policy

import (
	"errors"
	"testing"

	"github.com/taskforge/todo-system/internal/core/domain"
)

var (
	alice = &domain.User{ID: 1, Email: "alice@example.com", IsActive: true}
	bob   = &domain.User{ID: 2, Email: "bob@example.com", IsActive: true}
	root  = &domain.User{ID: 3, Email: "root@example.com", IsActive: true, IsSuperuser: true}
)

func TestCheckOwned(t *testing.T) {
	cases := []struct {
		name    string
		actor   *domain.User
		ownerID int64
		exists  bool
		want    error
	}{
		{"owner reads own", alice, 1, true, nil},
		{"superuser reads any", root, 1, true, nil},
		{"superuser reads own", root, 3, true, nil},
		{"other user forbidden", bob, 1, true, domain.ErrForbidden},
		{"missing hidden from non-owner", bob, 0, false, domain.ErrForbidden},
		{"missing disclosed to superuser", root, 0, false, domain.ErrUserNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckOwned(tc.actor, tc.ownerID, tc.exists, domain.ErrUserNotFound)
			if !errors.Is(err, tc.want) && err != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestCheckOwned_MissingOwnID(t *testing.T) {
	// Probing one's own id when the record is gone: the actor is not a
	// superuser, so the answer stays forbidden.
	err := CheckOwned(alice, 1, false, domain.ErrUserNotFound)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestCheckCreateOnBehalf(t *testing.T) {
	if err := CheckCreateOnBehalf(alice, 1, true); err != nil {
		t.Fatalf("self-create should pass, got %v", err)
	}
	if err := CheckCreateOnBehalf(alice, 2, true); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := CheckCreateOnBehalf(root, 2, true); err != nil {
		t.Fatalf("superuser on-behalf should pass, got %v", err)
	}
	if err := CheckCreateOnBehalf(root, 99, false); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	// Non-superuser naming a missing owner still learns nothing.
	if err := CheckCreateOnBehalf(alice, 99, false); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestCheckUserUpdate(t *testing.T) {
	yes, no := true, false

	if err := CheckUserUpdate(alice, &yes); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for escalation, got %v", err)
	}
	if err := CheckUserUpdate(alice, &no); err != nil {
		t.Fatalf("setting is_superuser=false should pass, got %v", err)
	}
	if err := CheckUserUpdate(alice, nil); err != nil {
		t.Fatalf("omitting is_superuser should pass, got %v", err)
	}
	if err := CheckUserUpdate(root, &yes); err != nil {
		t.Fatalf("superuser may grant privilege, got %v", err)
	}
}

func TestDeactivateOnEmailChange(t *testing.T) {
	changed := "new@example.com"
	same := alice.Email

	if !DeactivateOnEmailChange(alice, alice.Email, &changed) {
		t.Fatalf("expected deactivation on email change")
	}
	if DeactivateOnEmailChange(alice, alice.Email, &same) {
		t.Fatalf("unchanged email must not deactivate")
	}
	if DeactivateOnEmailChange(alice, alice.Email, nil) {
		t.Fatalf("absent email must not deactivate")
	}
	if DeactivateOnEmailChange(root, root.Email, &changed) {
		t.Fatalf("superusers are exempt from deactivation")
	}
}

func TestListGates(t *testing.T) {
	if CanListAllTasks(alice) {
		t.Fatalf("non-superuser must not list all tasks")
	}
	if !CanListAllTasks(root) {
		t.Fatalf("superuser lists all tasks")
	}
	if err := CanListUsers(alice); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := CanListUsers(root); err != nil {
		t.Fatalf("superuser lists users, got %v", err)
	}
}
