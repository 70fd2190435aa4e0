package model

import "time"

type SubscriptionTier string

const (
	TierFree       SubscriptionTier = "free"
	TierPro        SubscriptionTier = "pro"
	TierEnterprise SubscriptionTier = "enterprise"
)

// User is the account record returned by the auth endpoints.
type User struct {
	ID                string           `json:"id"`
	Email             string           `json:"email"`
	Username          string           `json:"username,omitempty"`
	FullName          string           `json:"full_name,omitempty"`
	AvatarURL         string           `json:"avatar_url,omitempty"`
	IsActive          bool             `json:"is_active"`
	IsVerified        bool             `json:"is_verified"`
	Tier              SubscriptionTier `json:"tier"`
	MonthlyQuotaUsed  int              `json:"monthly_quota_used"`
	MonthlyQuotaLimit int              `json:"monthly_quota_limit"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         *time.Time       `json:"updated_at,omitempty"`
	LastLogin         *time.Time       `json:"last_login,omitempty"`
}

// DisplayName prefers the full name and falls back to the username, then the email.
func (u *User) DisplayName() string {
	switch {
	case u.FullName != "":
		return u.FullName
	case u.Username != "":
		return u.Username
	default:
		return u.Email
	}
}

type UserProfile struct {
	ID              string           `json:"id"`
	Email           string           `json:"email"`
	FullName        string           `json:"full_name,omitempty"`
	AvatarURL       string           `json:"avatar_url,omitempty"`
	Tier            SubscriptionTier `json:"subscription_tier"`
	ProcessingQuota int              `json:"processing_quota"`
	UsedQuota       int              `json:"used_quota"`
	VideosProcessed int              `json:"videos_processed"`
	ClipsCreated    int              `json:"clips_created"`
	SplicesExported int              `json:"splices_exported"`
	CreatedAt       time.Time        `json:"created_at"`
}

// UserSummary is the flat subset of User kept in the user cache.
type UserSummary struct {
	ID         string `json:"id"          redis:"id"`
	Email      string `json:"email"       redis:"email"`
	FullName   string `json:"fullName"    redis:"full_name"`
	Tier       string `json:"tier"        redis:"tier"`
	QuotaUsed  int    `json:"quotaUsed"   redis:"quota_used"`
	QuotaLimit int    `json:"quotaLimit"  redis:"quota_limit"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:         u.ID,
		Email:      u.Email,
		FullName:   u.DisplayName(),
		Tier:       string(u.Tier),
		QuotaUsed:  u.MonthlyQuotaUsed,
		QuotaLimit: u.MonthlyQuotaLimit,
	}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"full_name,omitempty"`
}

// Token is the auth endpoints' success body.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}
