package constants

// NATS subjects
const (
	// Transaction events consumed by the notification service.
	// Subject name mirrors the topic the downstream consumers expect.
	SubjectTransactionNotification = "notificationTopic"
)

// Queue groups
const (
	QueueGroupNotification = "notification-service"
)
