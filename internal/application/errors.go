package application

import "errors"

// ErrRefreshAfterWrite means the store accepted a change but the follow-up
// refresh failed. The local collection is stale, not the store.
var ErrRefreshAfterWrite = errors.New("change applied but refresh failed")
