package api

import (
	"encoding/json"
	"net/http"
)

// networkResponse deliberately carries no psk material.
type networkResponse struct {
	Ssid   string `json:"ssid"`
	Stored bool   `json:"stored"`
	Active bool   `json:"active"`
}

func (a *Api) handleGetNetworks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := a.station.State()

		networks := []*networkResponse{}
		for i, network := range a.station.Networks() {
			networks = append(networks, &networkResponse{
				Ssid:   network.Ssid,
				Stored: network.UseStored,
				Active: state.Connected && state.Index == i,
			})
		}

		a.jsonResponse(w, networks, http.StatusOK)
	}
}

type postNetworkRequest struct {
	Ssid string `json:"ssid"`
	Psk  string `json:"psk"`
}

func (a *Api) handlePostNetwork() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req postNetworkRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			a.jsonError(w, "invalid request body", http.StatusBadRequest)
			return
		}

		if err := a.station.AddNetwork(req.Ssid, req.Psk); err != nil {
			a.log.Errorf("Could not add network: %v", err)
			a.jsonError(w, "could not add network", http.StatusUnprocessableEntity)
			return
		}

		a.jsonResponse(w, &networkResponse{
			Ssid: req.Ssid,
		}, http.StatusCreated)
	}
}
