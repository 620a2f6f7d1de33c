package models

// Vote is a request to move one point value from a caster to a target.
type Vote struct {
	VotedBy  string `json:"voted_by"`
	VotedFor string `json:"voted_for"`
	Vote     int    `json:"vote"`
}
