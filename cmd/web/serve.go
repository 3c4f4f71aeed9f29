package main

import (
	"net"
	"net/http"

	"github.com/pkg/errors"
)

// listenAndServe binds srv.Addr, calls announce once the socket accepts
// connections and then serves until srv stops.
func listenAndServe(srv *http.Server, announce func(net.Addr)) error {
	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return errors.Wrapf(err, "listen %s", srv.Addr)
	}

	announce(ln.Addr())

	return srv.Serve(ln)
}
