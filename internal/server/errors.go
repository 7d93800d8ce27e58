package server

import "errors"

var (
	errNoServerAddress = errors.New("no HTTP address to listen on")
)
