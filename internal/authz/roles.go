package authz

import "github.com/ojlab/discussions/domain"

// Default platform roles allowed to moderate discussions.
const (
	RoleAdmin    = "admin"
	RoleReviewer = "discussion-reviewer"
)

type roleAuthorizer struct {
	moderatorRoles map[string]struct{}
}

var _ domain.Authorizer = (*roleAuthorizer)(nil)

// NewRoleAuthorizer builds an Authorizer granting moderation to the given
// roles; with no arguments it grants admin and discussion-reviewer.
func NewRoleAuthorizer(moderatorRoles ...string) *roleAuthorizer {
	if len(moderatorRoles) == 0 {
		moderatorRoles = []string{RoleAdmin, RoleReviewer}
	}
	roles := make(map[string]struct{}, len(moderatorRoles))
	for _, role := range moderatorRoles {
		roles[role] = struct{}{}
	}
	return &roleAuthorizer{moderatorRoles: roles}
}

func (a *roleAuthorizer) CanModerate(identity domain.Identity) bool {
	for _, role := range identity.Roles {
		if _, ok := a.moderatorRoles[role]; ok {
			return true
		}
	}
	return false
}
