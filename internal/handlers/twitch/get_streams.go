package twitch_handler

import "net/http"

func (twh *TwitchHandler) GetStreams(w http.ResponseWriter, r *http.Request) {
	res, err := twh.twitchService.GetStreams(r.Context(), r.URL.Query().Get("user_id"))
	twh.writeResult(w, r, res, err)
}
