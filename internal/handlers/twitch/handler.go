package twitch_handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"twitch_helix_client/internal/middleware"
	twitch_service "twitch_helix_client/internal/service/twitch"
)

type TwitchHandler struct {
	twitchService *twitch_service.TwitchService
}

func NewTwitchHandler(twitchService *twitch_service.TwitchService) *TwitchHandler {
	return &TwitchHandler{
		twitchService: twitchService,
	}
}

func (twh *TwitchHandler) writeResult(w http.ResponseWriter, r *http.Request, data interface{}, err error) {
	if err != nil {
		logrus.Error(err)
		if errors.Is(err, twitch_service.ErrEmptyQuery) {
			middleware.WriteErrorResponse(w, r, http.StatusBadRequest, err.Error())
			return
		}
		middleware.WriteErrorResponse(w, r, http.StatusBadGateway, err.Error())
		return
	}

	middleware.WriteSuccessData(w, r, data)
}
