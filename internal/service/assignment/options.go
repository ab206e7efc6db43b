package assignment

import (
	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/models"
)

// Mode is the assignment picker's active tab. Only team mode is authoritative
// on its own; for the other tabs the effective assignment type is computed
// from how many users are actually selected.
type Mode string

const (
	ModeIndividual Mode = "individual"
	ModeMultiple   Mode = "multiple"
	ModeTeam       Mode = "team"
)

// Options is a normalized assignment request. In team mode the user fields are
// nil, never empty slices; outside team mode the team fields are empty. The
// service treats that asymmetry as evidence of intent, so the builder must
// never populate both sides.
type Options struct {
	TaskID           string                  `json:"task_id"`
	AssignmentType   models.AssignmentType   `json:"assignment_type"`
	AssignmentSource models.AssignmentSource `json:"assignment_source"`
	UserIDs          []string                `json:"user_ids,omitempty"`
	UserNames        []string                `json:"user_names,omitempty"`
	TeamID           string                  `json:"team_id,omitempty"`
	TeamName         string                  `json:"team_name,omitempty"`
	OrganizationID   string                  `json:"organization_id"`
	AssignedBy       string                  `json:"assigned_by"`
	Notes            string                  `json:"notes,omitempty"`
}

// BuildOptions turns picker state into a normalized request. It is pure and
// cannot fail; invalid combinations are caught by the service.
func BuildOptions(taskID, organizationID, actorID string, mode Mode, selected []models.User, teamID, teamName, notes string) Options {
	opts := Options{
		TaskID:           taskID,
		AssignmentSource: models.SourceManual,
		OrganizationID:   organizationID,
		AssignedBy:       actorID,
		Notes:            notes,
	}

	if mode == ModeTeam {
		opts.AssignmentType = models.AssignmentTypeTeam
		opts.TeamID = teamID
		opts.TeamName = teamName
		return opts
	}

	opts.UserIDs = make([]string, 0, len(selected))
	opts.UserNames = make([]string, 0, len(selected))
	for _, u := range selected {
		name := u.Name
		if name == "" {
			name = u.Email
		}
		opts.UserIDs = append(opts.UserIDs, u.ID)
		opts.UserNames = append(opts.UserNames, name)
	}

	// The effective type follows the selection count, not the active tab.
	if len(opts.UserIDs) > 1 {
		opts.AssignmentType = models.AssignmentTypeMultiple
	} else {
		opts.AssignmentType = models.AssignmentTypeIndividual
	}
	return opts
}

// proposed maps the request onto the assignment state it would produce.
func (o Options) proposed() models.Assignment {
	if o.AssignmentType == models.AssignmentTypeTeam {
		return models.AssignedToTeam(o.TeamID, o.TeamName)
	}
	return models.AssignedToUsers(o.UserIDs, o.UserNames)
}

// snapshot builds the history payload recorded for this request.
func (o Options) snapshot() *models.NewAssignmentSnapshot {
	if o.AssignmentType == models.AssignmentTypeTeam {
		return &models.NewAssignmentSnapshot{AssignedToTeamName: o.TeamName}
	}
	names := make([]string, len(o.UserNames))
	copy(names, o.UserNames)
	return &models.NewAssignmentSnapshot{AssignedToNames: names}
}
