package assignment

import (
	"fmt"

	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/models"
)

// UserRef identifies one assigned user in a preview descriptor.
type UserRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TeamRef identifies the assigned team in a preview descriptor.
type TeamRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Descriptor describes one side of a preview: either a list of individuals or
// a team, plus where the assignment came from.
type Descriptor struct {
	Individual []UserRef `json:"individual,omitempty"`
	Team       *TeamRef  `json:"team,omitempty"`
	Source     string    `json:"source"`
}

// Preview is the dry-run result shown before committing an assignment. It is
// ephemeral: computed per request and never persisted.
type Preview struct {
	CurrentAssignments  Descriptor `json:"current_assignments"`
	ProposedAssignments Descriptor `json:"proposed_assignments"`
	Changes             []string   `json:"changes"`
	Conflicts           []string   `json:"conflicts"`
}

// CanCommit reports whether the confirm action may proceed. Any conflict
// blocks commit.
func (p *Preview) CanCommit() bool {
	return len(p.Conflicts) == 0
}

func describe(a models.Assignment, source string) Descriptor {
	d := Descriptor{Source: source}
	switch a.Kind {
	case models.AssignmentTeam:
		d.Team = &TeamRef{ID: a.TeamID, Name: a.TeamName}
	case models.AssignmentIndividuals:
		d.Individual = make([]UserRef, len(a.UserIDs))
		for i, id := range a.UserIDs {
			name := "Unknown"
			if i < len(a.UserNames) {
				name = a.UserNames[i]
			}
			d.Individual[i] = UserRef{ID: id, Name: name}
		}
	}
	return d
}

// diffAssignments produces the human-readable change lines between the current
// and proposed state. Semantically identical assignments produce no lines.
func diffAssignments(current, proposed models.Assignment) []string {
	if current.SameAs(proposed) {
		return nil
	}

	var changes []string
	switch {
	case current.Kind == models.AssignmentTeam && proposed.Kind == models.AssignmentTeam:
		changes = append(changes, fmt.Sprintf("Team changed from %s to %s", current.TeamName, proposed.TeamName))

	case proposed.Kind == models.AssignmentTeam:
		if len(current.UserIDs) > 0 {
			changes = append(changes, fmt.Sprintf("Remove %d individual assignment(s)", len(current.UserIDs)))
		}
		changes = append(changes, fmt.Sprintf("Add team assignment: %s", proposed.TeamName))

	case current.Kind == models.AssignmentTeam:
		changes = append(changes, fmt.Sprintf("Remove team assignment: %s", current.TeamName))
		for i, id := range proposed.UserIDs {
			changes = append(changes, "Added "+nameFor(proposed, i, id))
		}

	default:
		// Individuals on both sides (either may be empty): set difference.
		currentSet := make(map[string]int, len(current.UserIDs))
		for i, id := range current.UserIDs {
			currentSet[id] = i
		}
		proposedSet := make(map[string]int, len(proposed.UserIDs))
		for i, id := range proposed.UserIDs {
			proposedSet[id] = i
		}
		for i, id := range proposed.UserIDs {
			if _, ok := currentSet[id]; !ok {
				changes = append(changes, "Added "+nameFor(proposed, i, id))
			}
		}
		for i, id := range current.UserIDs {
			if _, ok := proposedSet[id]; !ok {
				changes = append(changes, "Removed "+nameFor(current, i, id))
			}
		}
	}
	return changes
}

func nameFor(a models.Assignment, i int, fallback string) string {
	if i < len(a.UserNames) && a.UserNames[i] != "" {
		return a.UserNames[i]
	}
	return fallback
}
