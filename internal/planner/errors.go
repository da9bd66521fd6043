package planner

import "errors"

var (
	// ErrConfiguration means the catalog cannot describe the student's
	// program at all. It is fatal for the request.
	ErrConfiguration = errors.New("planner configuration error")

	// ErrTrackUnresolved means the major needs a track and none of the
	// known tracks matches the profile. CreatePlan turns it into a track
	// choice instead of failing.
	ErrTrackUnresolved = errors.New("track not resolved")
)
