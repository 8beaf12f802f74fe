package contribution

import "errors"

var (
	ErrNoTableInEffect = errors.New("no contribution table in effect for date")
	ErrNoBracketMatch  = errors.New("no bracket matches the given salary")
)
