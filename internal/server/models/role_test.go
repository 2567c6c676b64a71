package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{in: "", want: RoleStandard},
		{in: "standard", want: RoleStandard},
		{in: "user", want: RoleStandard},
		{in: " Mentor ", want: RoleMentor},
		{in: "mentor", want: RoleMentor},
		{in: "admin", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRole(tt.in)
			if tt.wantErr {
				var unknown ErrUnknownRole
				require.ErrorAs(t, err, &unknown)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRole_TextRoundTrip(t *testing.T) {
	b, err := json.Marshal(map[string]Role{"role": RoleMentor})
	require.NoError(t, err)
	assert.JSONEq(t, `{"role":"mentor"}`, string(b))

	var out struct {
		Role Role `json:"role"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"role":"standard"}`), &out))
	assert.Equal(t, RoleStandard, out.Role)

	require.Error(t, json.Unmarshal([]byte(`{"role":"root"}`), &out))
}

func TestUser_PublicOmitsHashAndDefaultsExpertise(t *testing.T) {
	now := time.Now()
	u := &User{ID: "1", Name: "Asha", Email: "asha@example.com", PasswordHash: "$2a$10$x", Role: RoleMentor, CreatedAt: now, UpdatedAt: now}

	p := u.Public()

	assert.Equal(t, "1", p.ID)
	assert.Equal(t, RoleMentor, p.Role)
	assert.NotNil(t, p.Expertise)
	assert.Empty(t, p.Expertise)
	assert.Equal(t, now, p.CreatedAt)
}
