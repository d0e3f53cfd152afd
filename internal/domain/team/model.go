package team

import "errors"

var ErrNotFound = errors.New("team: member not found")

// Member is one person on the roster. The roster is reference data: it
// comes from the seed config or the TeamMembers table and is never
// mutated through the API.
type Member struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Avatar string `json:"avatar"`
	Color  string `json:"color"`
}
