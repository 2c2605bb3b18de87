package api

import (
	"net/http"
)

type getLogsResponse struct {
	Lines []string `json:"lines"`
}

func (a *Api) handleGetLogs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lines := []string{}
		if a.tail != nil {
			lines = a.tail.Lines()
		}

		a.jsonResponse(w, &getLogsResponse{
			Lines: lines,
		}, http.StatusOK)
	}
}
