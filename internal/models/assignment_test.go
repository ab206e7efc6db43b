package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssignmentConstructors(t *testing.T) {
	a := AssignedToUsers(nil, nil)
	assert.Equal(t, AssignmentNone, a.Kind)
	assert.False(t, a.IsAssigned())

	a = AssignedToUsers([]string{"u1"}, []string{"Alice"})
	assert.Equal(t, AssignmentIndividuals, a.Kind)
	assert.True(t, a.IsAssigned())
	assert.Empty(t, a.TeamID, "individual assignment must not carry team fields")

	a = AssignedToUsers([]string{"u1", "u2"}, []string{"Alice"})
	assert.Equal(t, []string{"Alice", "Unknown"}, a.UserNames, "missing names padded")

	a = AssignedToTeam("team-1", "Ops")
	assert.Equal(t, AssignmentTeam, a.Kind)
	assert.Empty(t, a.UserIDs, "team assignment must not carry user fields")

	a = AssignedToTeam("", "Ops")
	assert.False(t, a.IsAssigned(), "blank team id collapses to unassigned")
}

func TestAssignedToUsersCopiesInput(t *testing.T) {
	ids := []string{"u1"}
	a := AssignedToUsers(ids, []string{"Alice"})
	ids[0] = "mutated"
	assert.Equal(t, []string{"u1"}, a.UserIDs)
}

func TestAssignmentType(t *testing.T) {
	assert.Equal(t, AssignmentTypeUnassigned, Unassigned().Type())
	assert.Equal(t, AssignmentTypeIndividual, AssignedToUsers([]string{"u1"}, []string{"A"}).Type())
	assert.Equal(t, AssignmentTypeMultiple, AssignedToUsers([]string{"u1", "u2"}, []string{"A", "B"}).Type())
	assert.Equal(t, AssignmentTypeTeam, AssignedToTeam("team-1", "Ops").Type())
}

func TestAssignmentSameAs(t *testing.T) {
	alice := AssignedToUsers([]string{"u1"}, []string{"Alice"})
	pair := AssignedToUsers([]string{"u1", "u2"}, []string{"Alice", "Bob"})
	pairReversed := AssignedToUsers([]string{"u2", "u1"}, []string{"Bob", "Alice"})
	ops := AssignedToTeam("team-1", "Ops")

	assert.True(t, Unassigned().SameAs(Unassigned()))
	assert.True(t, pair.SameAs(pairReversed), "user order must not matter")
	assert.True(t, ops.SameAs(AssignedToTeam("team-1", "Operations")), "names are display only")
	assert.False(t, alice.SameAs(pair))
	assert.False(t, alice.SameAs(ops))
	assert.False(t, ops.SameAs(AssignedToTeam("team-2", "Ops")))
	assert.False(t, alice.SameAs(Unassigned()))
}

func TestAssignmentDisplay(t *testing.T) {
	assert.Equal(t, "Unassigned", Unassigned().Display())
	assert.Equal(t, "Alice", AssignedToUsers([]string{"u1"}, []string{"Alice"}).Display())
	assert.Equal(t, "Team: Ops", AssignedToTeam("team-1", "Ops").Display())
	assert.Equal(t, "2 members: Alice, Bob",
		AssignedToUsers([]string{"u1", "u2"}, []string{"Alice", "Bob"}).Display())
	assert.Equal(t, "3 members: Alice, Bob...",
		AssignedToUsers([]string{"u1", "u2", "u3"}, []string{"Alice", "Bob", "Carol"}).Display())
}
