package service

import (
	"context"
	"net/http"
	"testing"

	"talentsync/internal/core"
	"talentsync/internal/dto"
	"talentsync/pkg/scheduling"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeCreateBatchDefaults(t *testing.T) {
	f := newFixture(t)

	created, err := f.employeeService.Create(context.Background(), []*dto.CreateEmployeeDto{
		{OrgID: f.orgID.Hex(), EmployeeID: "E10", Name: "Carol"},
		{OrgID: f.orgID.Hex(), EmployeeID: "E11", Name: "Dan", Position: scheduling.RoleVolunteer},
	})
	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.Equal(t, scheduling.RoleEmployee, created[0].Position)
	assert.Equal(t, core.EmployeeStatusActive, created[0].Status)
	assert.Equal(t, core.AccessRoleUser, created[0].Role)
	assert.Equal(t, scheduling.RoleVolunteer, created[1].Position)
}

func TestEmployeeCreateErrors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.employeeService.Create(ctx, nil)
	requireStatus(t, err, http.StatusBadRequest)

	_, err = f.employeeService.Create(ctx, []*dto.CreateEmployeeDto{{OrgID: "0123456789abcdef01234567", EmployeeID: "X", Name: "X"}})
	appErr := requireStatus(t, err, http.StatusBadRequest)
	assert.Equal(t, "Invalid organization ID", appErr.ErrorDesc())

	_, err = f.employeeService.Create(ctx, []*dto.CreateEmployeeDto{{OrgID: f.orgID.Hex(), EmployeeID: "E1", Name: "Again"}})
	requireStatus(t, err, http.StatusConflict)
}

func TestEmployeeUpdateLeaveOnly(t *testing.T) {
	f := newFixture(t)
	f.create(t, f.alice.Hex(), "2024-05-01", "morning")

	onLeave := true
	updated, err := f.employeeService.Update(context.Background(), f.alice, &dto.UpdateEmployeeDto{OnLeave: &onLeave})
	require.NoError(t, err)
	assert.True(t, updated.OnLeave)
	assert.Equal(t, "Alice", updated.Name)
	assert.Len(t, f.schedules.schedules, 1)
}

func TestEmployeeUpdateRejectsUnknownPosition(t *testing.T) {
	f := newFixture(t)
	position := scheduling.Role("ASTRONAUT")
	_, err := f.employeeService.Update(context.Background(), f.alice, &dto.UpdateEmployeeDto{Position: &position})
	requireStatus(t, err, http.StatusBadRequest)
}

func TestEmployeeAccessIsScopedToOrganization(t *testing.T) {
	f := newFixture(t)
	ctx := asUser(context.Background(), f.orgID, core.AccessRoleAdmin)

	list, err := f.employeeService.ListByOrg(ctx, f.orgID)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	_, err = f.employeeService.GetByID(ctx, f.outside)
	requireStatus(t, err, http.StatusForbidden)
	err = f.employeeService.Delete(ctx, f.outside)
	requireStatus(t, err, http.StatusForbidden)

	require.NoError(t, f.employeeService.Delete(ctx, f.bob))
	_, err = f.employeeService.GetByID(ctx, f.bob)
	requireStatus(t, err, http.StatusNotFound)
}

func TestOrganizationListAndCreate(t *testing.T) {
	f := newFixture(t)

	admin := asUser(context.Background(), f.orgID, core.AccessRoleAdmin)
	list, err := f.organizationService.List(admin)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, f.orgID.Hex(), list[0].ID)

	_, err = f.organizationService.Create(admin, &dto.CreateOrganizationDto{Name: "New"})
	requireStatus(t, err, http.StatusForbidden)

	super := asUser(context.Background(), f.orgID, core.AccessRoleSuperAdmin)
	created, err := f.organizationService.Create(super, &dto.CreateOrganizationDto{Name: "New"})
	require.NoError(t, err)
	assert.Equal(t, "UTC", created.Timezone)
	assert.Equal(t, core.DefaultDateFormat, created.DateFormat)

	all, err := f.organizationService.List(super)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestOrganizationLocationsFallBackToTaxonomy(t *testing.T) {
	f := newFixture(t)
	locations, err := f.organizationService.Locations(context.Background(), f.other)
	require.NoError(t, err)
	assert.Equal(t, scheduling.DefaultLocations, locations)
}
