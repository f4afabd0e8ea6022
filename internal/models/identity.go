package models

// Identity is what the session gate resolved for a request. The zero value means "no session".
type Identity struct {
	AccountID string
}

func (i Identity) Resolved() bool { return i.AccountID != "" }

// ClientInfo carries the originating address and user agent of a request.
type ClientInfo struct {
	Address string
	Agent   string
}

const UnknownClient = "unknown"
