package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }

func TestGroupByManager(t *testing.T) {
	users := []User{
		{ID: "mgr-1", Username: "morgan", Role: RoleManager},
		{ID: "usr-1", Username: "alex", Role: RoleUser, ManagerID: strp("mgr-1")},
		{ID: "usr-2", Username: "blair", Role: RoleUser, ManagerID: strp("mgr-1")},
		{ID: "usr-3", Username: "casey", Role: RoleUser},
	}

	g := GroupByManager(users)

	require.Len(t, g.Managers, 1)
	group := g.Managers["mgr-1"]
	require.NotNil(t, group)
	assert.Equal(t, "morgan", group.Manager.Username)
	require.Len(t, group.Members, 2)
	assert.Equal(t, "alex", group.Members[0].Username)
	assert.Equal(t, "blair", group.Members[1].Username)

	require.Len(t, g.Unassigned, 1)
	assert.Equal(t, "casey", g.Unassigned[0].Username)
}

func TestGroupByManagerEmptyGroup(t *testing.T) {
	users := []User{
		{ID: "mgr-1", Username: "morgan", Role: RoleManager},
	}

	g := GroupByManager(users)

	require.Len(t, g.Managers, 1)
	assert.Empty(t, g.Managers["mgr-1"].Members)
	assert.Empty(t, g.Unassigned)
}

func TestGroupByManagerSeedsUnseenManager(t *testing.T) {
	// The member arrives before (or without) the manager's own row; the
	// group is seeded from the member's joined manager fields.
	users := []User{
		{ID: "usr-1", Username: "alex", Role: RoleUser, ManagerID: strp("mgr-9"), ManagerName: strp("jordan")},
	}

	g := GroupByManager(users)

	require.Len(t, g.Managers, 1)
	group := g.Managers["mgr-9"]
	require.NotNil(t, group)
	assert.Equal(t, "jordan", group.Manager.Username)
	require.Len(t, group.Members, 1)
}

func TestGroupByManagerFillsSeededGroup(t *testing.T) {
	users := []User{
		{ID: "usr-1", Username: "alex", Role: RoleUser, ManagerID: strp("mgr-1"), ManagerName: strp("morgan")},
		{ID: "mgr-1", Username: "morgan", Email: "morgan@example.com", Role: RoleManager},
	}

	g := GroupByManager(users)

	group := g.Managers["mgr-1"]
	require.NotNil(t, group)
	assert.Equal(t, "morgan@example.com", group.Manager.Email, "full row replaces the placeholder")
	require.Len(t, group.Members, 1)
}

func TestGroupByManagerAdminsGoUnassigned(t *testing.T) {
	users := []User{
		{ID: "adm-1", Username: "root", Role: RoleAdmin},
	}

	g := GroupByManager(users)

	assert.Empty(t, g.Managers)
	require.Len(t, g.Unassigned, 1)
}
