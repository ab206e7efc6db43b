package models

import (
	"fmt"
	"strings"
)

// AssignmentKind discriminates the three assignment states a task can be in.
type AssignmentKind string

const (
	AssignmentNone        AssignmentKind = "none"
	AssignmentIndividuals AssignmentKind = "individuals"
	AssignmentTeam        AssignmentKind = "team"
)

// AssignmentType is the request-level type reported by the options builder and
// recorded in the history log.
type AssignmentType string

const (
	AssignmentTypeIndividual AssignmentType = "individual"
	AssignmentTypeMultiple   AssignmentType = "multiple"
	AssignmentTypeTeam       AssignmentType = "team"
	AssignmentTypeUnassigned AssignmentType = "unassigned"
)

// AssignmentSource records where an assignment came from.
type AssignmentSource string

const (
	SourceManual           AssignmentSource = "manual"
	SourceProjectInherited AssignmentSource = "project_inherited"
	SourceTeamInherited    AssignmentSource = "team_inherited"
)

// Assignment is a tagged union over a task's assignment state. Exactly one of
// the three variants holds at any time: unassigned, a set of individual users,
// or a single team. Individual user ids and names are index-aligned; names are
// a denormalized display cache.
type Assignment struct {
	Kind      AssignmentKind `json:"kind"`
	UserIDs   []string       `json:"user_ids,omitempty"`
	UserNames []string       `json:"user_names,omitempty"`
	TeamID    string         `json:"team_id,omitempty"`
	TeamName  string         `json:"team_name,omitempty"`
}

// Unassigned returns the empty assignment state.
func Unassigned() Assignment {
	return Assignment{Kind: AssignmentNone}
}

// AssignedToUsers builds an individual/multiple assignment. Passing no users
// yields the unassigned state. Slices are copied so callers cannot mutate the
// assignment after the fact.
func AssignedToUsers(ids, names []string) Assignment {
	if len(ids) == 0 {
		return Unassigned()
	}
	a := Assignment{
		Kind:      AssignmentIndividuals,
		UserIDs:   make([]string, len(ids)),
		UserNames: make([]string, len(ids)),
	}
	copy(a.UserIDs, ids)
	for i := range ids {
		if i < len(names) {
			a.UserNames[i] = names[i]
		} else {
			a.UserNames[i] = "Unknown"
		}
	}
	return a
}

// AssignedToTeam builds a team assignment.
func AssignedToTeam(teamID, teamName string) Assignment {
	if teamID == "" {
		return Unassigned()
	}
	return Assignment{Kind: AssignmentTeam, TeamID: teamID, TeamName: teamName}
}

// IsAssigned reports whether the task has any assignment at all.
func (a Assignment) IsAssigned() bool {
	return a.Kind != AssignmentNone && a.Kind != ""
}

// Type maps the stored state onto the request-level assignment type.
func (a Assignment) Type() AssignmentType {
	switch a.Kind {
	case AssignmentTeam:
		return AssignmentTypeTeam
	case AssignmentIndividuals:
		if len(a.UserIDs) > 1 {
			return AssignmentTypeMultiple
		}
		return AssignmentTypeIndividual
	default:
		return AssignmentTypeUnassigned
	}
}

// SameAs reports whether two assignments are semantically identical: same team
// id, or the same set of user ids regardless of order. Display names are not
// compared.
func (a Assignment) SameAs(b Assignment) bool {
	switch {
	case !a.IsAssigned() && !b.IsAssigned():
		return true
	case a.Kind == AssignmentTeam && b.Kind == AssignmentTeam:
		return a.TeamID == b.TeamID
	case a.Kind == AssignmentIndividuals && b.Kind == AssignmentIndividuals:
		if len(a.UserIDs) != len(b.UserIDs) {
			return false
		}
		seen := make(map[string]int, len(a.UserIDs))
		for _, id := range a.UserIDs {
			seen[id]++
		}
		for _, id := range b.UserIDs {
			seen[id]--
			if seen[id] < 0 {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Display renders the short assignment summary shown on task cards.
func (a Assignment) Display() string {
	switch a.Kind {
	case AssignmentTeam:
		return "Team: " + a.TeamName
	case AssignmentIndividuals:
		if len(a.UserNames) > 1 {
			shown := a.UserNames
			suffix := ""
			if len(shown) > 2 {
				shown = shown[:2]
				suffix = "..."
			}
			return fmt.Sprintf("%d members: %s%s", len(a.UserNames), strings.Join(shown, ", "), suffix)
		}
		if len(a.UserNames) == 1 {
			return a.UserNames[0]
		}
		return "Unassigned"
	default:
		return "Unassigned"
	}
}
