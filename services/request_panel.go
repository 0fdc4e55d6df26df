package services

import (
	"fmt"
	"time"

	"nutriquest_server/models"
)

// DefaultAvatarURL is rendered when a profile snapshot has no avatar.
const DefaultAvatarURL = "https://static.nutriquest.app/avatars/placeholder.png"

// ✅ Panel Tab Names
const (
	TabIncoming = "incoming"
	TabOutgoing = "outgoing"
)

// ✅ Status Badge Styles
const (
	BadgeWarning = "warning"
	BadgeSuccess = "success"
	BadgeDanger  = "danger"
	BadgeDefault = "default"
)

// RequestItemView is one rendered row of the friend request panel.
type RequestItemView struct {
	RequestID   string `json:"requestId"`
	DisplayName string `json:"displayName"`
	Username    string `json:"username"`
	AvatarURL   string `json:"avatarUrl"`
	Message     string `json:"message,omitempty"`
	TimeAgo     string `json:"timeAgo"`
	Status      string `json:"status"`
	StatusBadge string `json:"statusBadge"`
	ShowActions bool   `json:"showActions"` // accept/decline controls render (incoming + pending)
	Sent        bool   `json:"sent"`        // outgoing + pending marker
	Processing  bool   `json:"processing"`  // controls disabled while the mutation is in flight
}

// RequestTabView groups the rows of one panel tab with its count badge.
type RequestTabView struct {
	Name  string            `json:"name"`
	Count int               `json:"count"`
	Items []RequestItemView `json:"items"`
}

// RequestsPanelView is the full two-tab panel. When both lists are empty the
// panel collapses to a single empty-state marker and carries no tabs.
type RequestsPanelView struct {
	Empty bool             `json:"empty"`
	Tabs  []RequestTabView `json:"tabs,omitempty"`
}

// BuildRequestsPanel partitions requests into incoming/outgoing tabs,
// preserving the caller's ordering of each list.
func BuildRequestsPanel(incoming, outgoing []models.FriendRequest, registry *ProcessingRegistry, now time.Time) RequestsPanelView {
	if len(incoming) == 0 && len(outgoing) == 0 {
		return RequestsPanelView{Empty: true}
	}

	incomingTab := RequestTabView{Name: TabIncoming, Count: len(incoming), Items: make([]RequestItemView, 0, len(incoming))}
	for _, request := range incoming {
		incomingTab.Items = append(incomingTab.Items, renderRequestItem(request, true, registry, now))
	}

	outgoingTab := RequestTabView{Name: TabOutgoing, Count: len(outgoing), Items: make([]RequestItemView, 0, len(outgoing))}
	for _, request := range outgoing {
		outgoingTab.Items = append(outgoingTab.Items, renderRequestItem(request, false, registry, now))
	}

	return RequestsPanelView{Tabs: []RequestTabView{incomingTab, outgoingTab}}
}

// renderRequestItem maps one request to a row. Incoming rows show the sender,
// outgoing rows show the receiver.
func renderRequestItem(request models.FriendRequest, incoming bool, registry *ProcessingRegistry, now time.Time) RequestItemView {
	counterpart := request.Sender
	if !incoming {
		counterpart = request.Receiver
	}

	avatarURL := counterpart.AvatarURL
	if avatarURL == "" {
		avatarURL = DefaultAvatarURL
	}

	pending := request.Status == models.RequestStatusPending
	processing := registry.IsProcessing(request.RequestID)

	return RequestItemView{
		RequestID:   request.RequestID,
		DisplayName: counterpart.DisplayName,
		Username:    counterpart.Username,
		AvatarURL:   avatarURL,
		Message:     request.Message,
		TimeAgo:     FormatTimeAgo(request.CreatedAt, now),
		Status:      request.Status,
		StatusBadge: StatusBadge(request.Status),
		ShowActions: incoming && pending,
		Sent:        !incoming && pending,
		Processing:  processing,
	}
}

// FormatTimeAgo renders a creation timestamp relative to now: minutes under
// an hour, floored hours under a day, floored days under a week, then an
// absolute date.
func FormatTimeAgo(createdAt string, now time.Time) string {
	created, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return createdAt
	}

	diff := now.Sub(created)
	if diff < 0 {
		// Clock skew can put createdAt slightly in the future.
		diff = 0
	}
	switch {
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	default:
		return created.Format("Jan 2, 2006")
	}
}

// StatusBadge maps a request status to its badge style. Unknown statuses fall
// back to the default style; the raw status string is still rendered.
func StatusBadge(status string) string {
	switch status {
	case models.RequestStatusPending:
		return BadgeWarning
	case models.RequestStatusAccepted:
		return BadgeSuccess
	case models.RequestStatusRejected:
		return BadgeDanger
	default:
		return BadgeDefault
	}
}
