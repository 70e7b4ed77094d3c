package users_enums

type ProjectRole string

const (
	ProjectRoleLead   ProjectRole = "lead"
	ProjectRoleMember ProjectRole = "member"
)

func (r ProjectRole) IsValid() bool {
	switch r {
	case ProjectRoleLead, ProjectRoleMember:
		return true
	default:
		return false
	}
}
