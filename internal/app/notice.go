package app

// NoticeLevel classifies an operator-facing notification.
type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeError   NoticeLevel = "error"
)

// Notice is a non-fatal, operator-facing notification produced by a flow.
// The web adapter renders notices as one-shot flash messages; no notice ever
// escalates to a process-fatal state.
type Notice struct {
	Level   NoticeLevel
	Message string
}

// Destination is a logical navigation target produced by a flow. The inbound
// adapter maps destinations to concrete routes; flows never know URLs.
type Destination string

const (
	DestinationLogin  Destination = "login"
	DestinationOrders Destination = "orders"
)
