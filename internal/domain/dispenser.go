package domain

import (
	"encoding/json"
	"time"
)

// ServerInfo is whatever the store reports about itself; its fields are not
// interpreted by the client.
type ServerInfo map[string]any

// DueNow holds the store's "pills due in the current window" list. Item shape
// is owned by the store.
type DueNow []json.RawMessage

type DispenserSnapshot struct {
	ServerInfo      ServerInfo
	ServerInfoError string
	DueNow          DueNow
	DueNowError     string
	FetchedAt       time.Time
}
