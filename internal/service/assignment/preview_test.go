package assignment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/models"
)

func TestDiffAssignments(t *testing.T) {
	tests := []struct {
		name     string
		current  models.Assignment
		proposed models.Assignment
		want     []string
	}{
		{
			name:     "both unassigned",
			current:  models.Unassigned(),
			proposed: models.Unassigned(),
			want:     nil,
		},
		{
			name:     "team changed",
			current:  models.AssignedToTeam("team-1", "Ops"),
			proposed: models.AssignedToTeam("team-2", "Kitchen"),
			want:     []string{"Team changed from Ops to Kitchen"},
		},
		{
			name:     "individuals replaced by team",
			current:  models.AssignedToUsers([]string{"u1", "u2"}, []string{"Alice", "Bob"}),
			proposed: models.AssignedToTeam("team-1", "Ops"),
			want: []string{
				"Remove 2 individual assignment(s)",
				"Add team assignment: Ops",
			},
		},
		{
			name:     "unassigned to team",
			current:  models.Unassigned(),
			proposed: models.AssignedToTeam("team-1", "Ops"),
			want:     []string{"Add team assignment: Ops"},
		},
		{
			name:     "team replaced by individuals",
			current:  models.AssignedToTeam("team-1", "Ops"),
			proposed: models.AssignedToUsers([]string{"u1"}, []string{"Alice"}),
			want: []string{
				"Remove team assignment: Ops",
				"Added Alice",
			},
		},
		{
			name:     "user swapped",
			current:  models.AssignedToUsers([]string{"u1", "u2"}, []string{"Alice", "Bob"}),
			proposed: models.AssignedToUsers([]string{"u1", "u3"}, []string{"Alice", "Carol"}),
			want: []string{
				"Added Carol",
				"Removed Bob",
			},
		},
		{
			name:     "unassigned to individuals",
			current:  models.Unassigned(),
			proposed: models.AssignedToUsers([]string{"u1"}, []string{"Alice"}),
			want:     []string{"Added Alice"},
		},
		{
			name:     "same set different order",
			current:  models.AssignedToUsers([]string{"u1", "u2"}, []string{"Alice", "Bob"}),
			proposed: models.AssignedToUsers([]string{"u2", "u1"}, []string{"Bob", "Alice"}),
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, diffAssignments(tt.current, tt.proposed))
		})
	}
}

func TestDescribe(t *testing.T) {
	d := describe(models.AssignedToUsers([]string{"u1", "u2"}, []string{"Alice"}), "manual")
	assert.Equal(t, "manual", d.Source)
	assert.Nil(t, d.Team)
	assert.Equal(t, []UserRef{{ID: "u1", Name: "Alice"}, {ID: "u2", Name: "Unknown"}}, d.Individual)

	d = describe(models.AssignedToTeam("team-1", "Ops"), "team_inherited")
	assert.Empty(t, d.Individual)
	assert.Equal(t, &TeamRef{ID: "team-1", Name: "Ops"}, d.Team)

	d = describe(models.Unassigned(), "manual")
	assert.Empty(t, d.Individual)
	assert.Nil(t, d.Team)
}
