package response

import "leftoversaver/internal/usecase/queries"

type LoginResponse struct {
	AccessToken string                       `json:"access_token"`
	User        *queries.AuthorizedUserView  `json:"user,omitempty"`
}

type RegisterResponse struct {
	AccessToken string                       `json:"access_token"`
	User        *queries.AuthorizedUserView  `json:"user,omitempty"`
}
