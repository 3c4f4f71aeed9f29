package models

// TwitchErrorResponse is the error body shape shared by id.twitch.tv and Helix.
type TwitchErrorResponse struct {
	Error   string `json:"error"`
	Status  int    `json:"status"`
	Message string `json:"message"`
}
