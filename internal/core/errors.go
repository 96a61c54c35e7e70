package core

import "errors"

var (
	ErrParse               = errors.New("cannot parse input")
	ErrEndOfInput          = errors.New("end of input")
	ErrGroupNotFound       = errors.New("group not found")
	ErrUnrecognizedCommand = errors.New("unrecognized command")
)
