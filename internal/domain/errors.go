package domain

import "errors"

var (
	// ErrNotLinked means no player record exists for the requested puuid,
	// so there is nothing to sync.
	ErrNotLinked = errors.New("player has no linked riot account")

	// ErrPlayerNotFound means the player row vanished between enqueue and
	// processing. Fatal to the job that hit it.
	ErrPlayerNotFound = errors.New("player not found")

	// ErrNotFound maps a 404 from the external API.
	ErrNotFound = errors.New("not found")
)
