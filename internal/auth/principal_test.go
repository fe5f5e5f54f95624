package auth

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/taskvault/taskvault/internal/domain"
)

func TestPrincipal_HasRole(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		roles []string
		check string
		want  bool
	}{
		{name: "present role", roles: []string{"admin", "editor"}, check: "editor", want: true},
		{name: "absent role", roles: []string{"editor"}, check: "admin", want: false},
		{name: "no roles", roles: nil, check: "admin", want: false},
		{name: "case sensitive", roles: []string{"Admin"}, check: "admin", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := Principal{ID: uuid.New(), Roles: tt.roles}
			if got := p.HasRole(tt.check); got != tt.want {
				t.Errorf("HasRole(%q) = %v, want %v", tt.check, got, tt.want)
			}
		})
	}
}

func TestPrincipal_IsAdmin(t *testing.T) {
	t.Parallel()

	admin := Principal{ID: uuid.New(), Roles: []string{RoleAdmin}}
	user := Principal{ID: uuid.New(), Roles: []string{"user"}}

	if !admin.IsAdmin() {
		t.Error("IsAdmin() = false for admin principal")
	}
	if user.IsAdmin() {
		t.Error("IsAdmin() = true for non-admin principal")
	}
}

func TestPrincipal_ValueEquality(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	other := uuid.New()

	tests := []struct {
		name string
		a    Principal
		b    Principal
		want bool
	}{
		{
			name: "same id and roles are equal",
			a:    Principal{ID: id, Roles: []string{"admin", "user"}},
			b:    Principal{ID: id, Roles: []string{"admin", "user"}},
			want: true,
		},
		{
			name: "different id is not equal",
			a:    Principal{ID: id, Roles: []string{"admin"}},
			b:    Principal{ID: other, Roles: []string{"admin"}},
			want: false,
		},
		{
			name: "role order matters",
			a:    Principal{ID: id, Roles: []string{"admin", "user"}},
			b:    Principal{ID: id, Roles: []string{"user", "admin"}},
			want: false,
		},
		{
			name: "extra role is not equal",
			a:    Principal{ID: id, Roles: []string{"admin"}},
			b:    Principal{ID: id, Roles: []string{"admin", "user"}},
			want: false,
		},
		{
			name: "no roles equal",
			a:    Principal{ID: id},
			b:    Principal{ID: id},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := domain.Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
			if tt.want && domain.Hash(tt.a) != domain.Hash(tt.b) {
				t.Error("Hash differs for equal principals")
			}
		})
	}
}

func TestPrincipalContext(t *testing.T) {
	t.Parallel()

	p := Principal{ID: uuid.New(), Roles: []string{"user"}}
	ctx := WithPrincipal(context.Background(), p)

	got, ok := FromContext(ctx)
	if !ok {
		t.Fatal("FromContext() ok = false, want true")
	}
	if !domain.Equal(got, p) {
		t.Errorf("FromContext() = %+v, want %+v", got, p)
	}
}

func TestPrincipalContext_Missing(t *testing.T) {
	t.Parallel()

	_, ok := FromContext(context.Background())
	if ok {
		t.Error("FromContext(empty ctx) ok = true, want false")
	}
}
