package request

// Register is the data of a websocket "register" control frame.
type Register struct {
	Token string `json:"token" validate:"required"`
}
