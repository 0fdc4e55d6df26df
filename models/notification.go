package models

const NotificationTypeRequestProcessed = "requestProcessed"

// RequestProcessedNotification is pushed over the websocket hub to a
// request's sender once the receiver resolves it.
type RequestProcessedNotification struct {
	Type      string  `json:"type"`
	RequestID string  `json:"requestId"`
	Status    string  `json:"status"` // terminal status the request resolved to
	By        UserRef `json:"by"`     // the user who resolved the request
}
