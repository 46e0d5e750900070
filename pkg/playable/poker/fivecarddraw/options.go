package fivecarddraw

import "errors"

// Options provides options for a five-card draw session
type Options struct {
	// StartingStake is how much money each player starts the session with
	StartingStake int
	// Ante is paid by both players on every deal
	Ante int
}

// DefaultOptions returns the default set of options
func DefaultOptions() Options {
	return Options{
		StartingStake: 1000,
		Ante:          5,
	}
}

// Validate returns an error if the options are unusable
func (o Options) Validate() error {
	if o.StartingStake <= 0 {
		return errors.New("starting stake must be greater than zero")
	}

	if o.Ante < 0 {
		return errors.New("ante cannot be negative")
	}

	return nil
}
