package api

import (
	"net/http"
)

type getStatusResponse struct {
	Name      string `json:"name"`
	Connected bool   `json:"connected"`
	Ssid      string `json:"ssid,omitempty"`
	Index     int    `json:"index"`
}

func (a *Api) handleGetStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, err := a.station.Name()
		if err != nil {
			a.log.Warnf("Could not get name: %v", err)
		}

		state := a.station.State()

		a.jsonResponse(w, &getStatusResponse{
			Name:      name,
			Connected: state.Connected,
			Ssid:      state.Ssid,
			Index:     state.Index,
		}, http.StatusOK)
	}
}
