package twitch_handler

import "net/http"

func (twh *TwitchHandler) GetGames(w http.ResponseWriter, r *http.Request) {
	res, err := twh.twitchService.GetGames(r.Context(), r.URL.Query().Get("id"))
	twh.writeResult(w, r, res, err)
}
