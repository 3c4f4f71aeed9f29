package twitch_handler

import "net/http"

func (twh *TwitchHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	res, err := twh.twitchService.GetUsers(r.Context(), r.URL.Query().Get("login"))
	twh.writeResult(w, r, res, err)
}
