package entity

// Identity is the outcome of the session lifecycle decision for one
// inbound request: the verified user payload plus the session snapshot it
// was minted from. A request either carries a fully populated Identity or
// none at all; it is never partially filled.
//
// Identity doubles as the token payload: both token kinds are signed from
// this value, and a verified token decodes back into it.
type Identity struct {
	Username string          `json:"username"`
	Email    string          `json:"email"`
	Name     string          `json:"name"`
	Session  SessionSnapshot `json:"session"`
	Roles    Roles           `json:"Roles"`
}
