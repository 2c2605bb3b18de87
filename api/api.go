package api

import (
	"net"
	"net/http"

	"github.com/go-errors/errors"
	"github.com/gorilla/mux"
	"github.com/wifiland/wifid/station"
	"github.com/wifiland/wifid/taillog"
)

type Config struct {
	Station *station.Station
	Tail    *taillog.TailLog
	Log     Logger
}

type Api struct {
	station *station.Station
	tail    *taillog.TailLog
	router  *mux.Router
	log     Logger
}

func New(config *Config) *Api {
	api := &Api{
		station: config.Station,
		tail:    config.Tail,
		router:  mux.NewRouter(),
	}

	if config.Log != nil {
		api.log = config.Log
	} else {
		api.log = noopLogger{}
	}

	api.router.Handle("/api/v1/status", api.handleGetStatus()).Methods(http.MethodGet)
	api.router.Handle("/api/v1/networks", api.handleGetNetworks()).Methods(http.MethodGet)
	api.router.Handle("/api/v1/networks", api.handlePostNetwork()).Methods(http.MethodPost)
	api.router.Handle("/api/v1/connect", api.handlePostConnect()).Methods(http.MethodPost)
	api.router.Handle("/api/v1/logs", api.handleGetLogs()).Methods(http.MethodGet)

	return api
}

func (a *Api) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.router.ServeHTTP(w, r)
}

func (a *Api) Serve(l net.Listener) error {
	err := http.Serve(l, a.router)
	if err != nil {
		return errors.Errorf("could not serve: %v", err)
	}

	return nil
}
