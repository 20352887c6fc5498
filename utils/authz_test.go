package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestCanAccess(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()

	tests := []struct {
		name      string
		principal TokenPrincipal
		ownerID   uuid.UUID
		roles     []string
		want      bool
	}{
		{
			name:      "owner may access own row",
			principal: TokenPrincipal{ID: owner, Role: "student"},
			ownerID:   owner,
			roles:     []string{"admin"},
			want:      true,
		},
		{
			name:      "stranger may not access another row",
			principal: TokenPrincipal{ID: stranger, Role: "student"},
			ownerID:   owner,
			roles:     []string{"admin"},
			want:      false,
		},
		{
			name:      "admin overrides ownership",
			principal: TokenPrincipal{ID: stranger, Role: "admin"},
			ownerID:   owner,
			roles:     []string{"admin", "superadmin"},
			want:      true,
		},
		{
			name:      "superadmin overrides ownership",
			principal: TokenPrincipal{ID: stranger, Role: "superadmin"},
			ownerID:   owner,
			roles:     []string{"admin", "superadmin"},
			want:      true,
		},
		{
			name:      "role outside the override list is denied",
			principal: TokenPrincipal{ID: stranger, Role: "company"},
			ownerID:   owner,
			roles:     []string{"admin"},
			want:      false,
		},
		{
			name:      "no override roles means owner-only",
			principal: TokenPrincipal{ID: stranger, Role: "admin"},
			ownerID:   owner,
			roles:     nil,
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanAccess(tt.principal, tt.ownerID, tt.roles...); got != tt.want {
				t.Errorf("CanAccess() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsPrivileged(t *testing.T) {
	principal := TokenPrincipal{ID: uuid.New(), Role: "admin"}
	if !IsPrivileged(principal, "admin", "superadmin") {
		t.Error("admin should be privileged")
	}
	if IsPrivileged(principal, "superadmin") {
		t.Error("admin should not pass a superadmin-only check")
	}
}
