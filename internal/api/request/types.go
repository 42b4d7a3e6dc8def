package request

// CreatePlayerRequest is the request body for creating a player.
// FullName is optional and parsed as "first family".
type CreatePlayerRequest struct {
	FullName string `json:"full_name"`
	GamerTag string `json:"gamer_tag"`
}

// RenameRequest is the request body for setting a player's name verbatim
type RenameRequest struct {
	FirstName  string `json:"first_name"`
	FamilyName string `json:"family_name"`
}

// SetFullNameRequest is the request body for parsing a full name
type SetFullNameRequest struct {
	FullName string `json:"full_name"`
}

// SetGamerTagRequest is the request body for replacing a gamer tag
type SetGamerTagRequest struct {
	GamerTag string `json:"gamer_tag"`
}

// GenerateGamerTagRequest is the request body for generating a gamer tag
type GenerateGamerTagRequest struct {
	Number *int `json:"number"`
}
