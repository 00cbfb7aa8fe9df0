package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_Roles(t *testing.T) {
	u := User{Roles: []string{RoleAdmin, RoleUser}}

	assert.True(t, u.HasRole(RoleAdmin))
	assert.False(t, u.HasRole(RoleRoot))
	assert.True(t, u.HasAnyRole(RoleSuperAdmin, RoleAdmin))
	assert.False(t, u.HasAnyRole(RoleSuperAdmin, RoleRoot))
	assert.False(t, u.IsRoot())
	assert.True(t, User{Roles: []string{RoleRoot}}.IsRoot())
}

func TestEmployee_FullName(t *testing.T) {
	assert.Equal(t, "Ada Lovelace", Employee{FirstName: "Ada", LastName: "Lovelace"}.FullName())
	assert.Equal(t, "Ada", Employee{FirstName: "Ada"}.FullName())
	assert.Equal(t, "Lovelace", Employee{LastName: "Lovelace"}.FullName())
}

func TestPage_HasNext(t *testing.T) {
	assert.True(t, Page[Employee]{Number: 0, TotalPages: 2}.HasNext())
	assert.False(t, Page[Employee]{Number: 1, TotalPages: 2}.HasNext())
	assert.False(t, Page[Employee]{}.HasNext())
}
