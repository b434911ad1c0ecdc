package constants

// WebSocket event names
const (
	EventTransactionNotification = "transaction_notification"
)
