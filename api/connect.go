package api

import (
	"net/http"
)

// handlePostConnect retries the whole connection sequence. The request
// blocks for as long as the attempts take, up to the connect timeout per
// known network.
func (a *Api) handlePostConnect() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := a.station.Reconnect(); err != nil {
			a.log.Errorf("Could not connect: %v", err)
			a.jsonError(w, "could not establish a connection", http.StatusBadGateway)
			return
		}

		state := a.station.State()

		a.jsonResponse(w, &getStatusResponse{
			Connected: state.Connected,
			Ssid:      state.Ssid,
			Index:     state.Index,
		}, http.StatusOK)
	}
}
