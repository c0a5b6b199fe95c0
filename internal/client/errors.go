package client

import "errors"

var (
	errNoCommand      = errors.New("no command given")
	errUnknownCommand = errors.New("unknown command")
	errMissingID      = errors.New("user id is required")
)
