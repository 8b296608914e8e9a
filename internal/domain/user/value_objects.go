package user

import "errors"

var ErrInvalidRole = errors.New("invalid role")

var roleRank = map[Role]int{
	RoleViewer:   1,
	RoleOperator: 2,
	RoleAdmin:    3,
}

// AtLeast reports whether r grants at least the permissions of required.
func (r Role) AtLeast(required Role) bool {
	have, ok := roleRank[r]
	if !ok {
		return false
	}
	return have >= roleRank[required]
}
