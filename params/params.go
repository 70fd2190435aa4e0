package params

import (
	"fmt"
	"time"
)

const (
	VersionMajor = 0
	VersionMinor = 3
	VersionPatch = 1
)

const (
	ServerBodyLimit    = 1048576
	ServerIdleTimeout  = 30 * time.Second
	ServerReadTimeout  = 10 * time.Second
	ServerWriteTimeout = 10 * time.Second
	ShutdownTimeout    = 15 * time.Second
)

const (
	SessionStoreKeyPrefix = "session:"
	NotifyStoreKeyPrefix  = "notify:"
	UserCacheKeyPrefix    = "user:"
	CSRFTokenExpiration   = 1 * time.Hour
	UserCacheExpiration   = 10 * time.Minute
	NotificationTTL       = 5 * time.Minute
	MaxPendingToasts      = 5
)

const (
	AuthFormIdleTimeout = 30 * time.Minute
	PasswordMinLength   = 8
	AnnualDiscount      = 0.8
	StatRotateInterval  = 3 * time.Second
)

const (
	BackendAPITimeout = 15 * time.Second
	BackendAPIPrefix  = "/api/v1"
)

func Version() string {
	return fmt.Sprintf("%d.%d.%d", VersionMajor, VersionMinor, VersionPatch)
}

func VersionWithCommit(gitCommit, gitDate string) string {
	version := Version()
	if len(gitCommit) >= 8 {
		version += "-" + gitCommit[:8]
	}
	if gitDate != "" {
		version += "-" + gitDate
	}
	return version
}
