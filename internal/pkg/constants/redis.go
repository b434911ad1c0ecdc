package constants

// Redis key formats
const (
	// Account Service
	KeyUserAccounts = "accounts:%s" // Format: accounts:{user_id}
)
