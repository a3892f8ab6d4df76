package repoargs

type CreateAccount struct {
	UserID       int64
	ReferralCode string
	ReferredBy   *int64
}
