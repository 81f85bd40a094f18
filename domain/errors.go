package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given Param is not valid")
	// ErrUnauthorized will throw if the actor does not own the item it tries to change
	ErrUnauthorized = errors.New("you are not allowed to modify this item")
	// ErrInvalidState will throw if the action targets the actor itself where that is not allowed
	ErrInvalidState = errors.New("action is not allowed in the current state")
	// ErrCacheMiss will throw if the key is not in the cache
	ErrCacheMiss = errors.New("cache miss")
)
