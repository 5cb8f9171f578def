package util

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ariebrainware/medi-help/model"
	"github.com/rs/zerolog"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SecurityEventType represents different types of security events
type SecurityEventType string

const (
	EventLoginSuccess       SecurityEventType = "LOGIN_SUCCESS"
	EventLoginFailure       SecurityEventType = "LOGIN_FAILURE"
	EventSignupSuccess      SecurityEventType = "SIGNUP_SUCCESS"
	EventLogout             SecurityEventType = "LOGOUT"
	EventIDChanged          SecurityEventType = "ID_CHANGED"
	EventUnauthorizedAccess SecurityEventType = "UNAUTHORIZED_ACCESS"
	EventRateLimitExceeded  SecurityEventType = "RATE_LIMIT_EXCEEDED"
	EventSuspiciousActivity SecurityEventType = "SUSPICIOUS_ACTIVITY"
	EventEndpointCall       SecurityEventType = "ENDPOINT_CALL"
)

// SecurityEvent represents a security event to be logged
type SecurityEvent struct {
	EventType SecurityEventType
	UserID    string
	Role      string
	IP        string
	UserAgent string
	Message   string
	Details   map[string]interface{}
}

var (
	securityLogger = zerolog.New(os.Stdout).With().Timestamp().Str("channel", "security").Logger()
	securityDB     *gorm.DB
)

// SetSecurityLoggerDB sets the gorm DB the security logger persists events to.
// A nil DB disables persistence.
func SetSecurityLoggerDB(db *gorm.DB) {
	securityDB = db
}

// SetSecurityLogOutput redirects the security log and returns a function
// restoring the previous logger.
func SetSecurityLogOutput(w io.Writer) func() {
	prev := securityLogger
	securityLogger = zerolog.New(w).With().Timestamp().Str("channel", "security").Logger()
	return func() { securityLogger = prev }
}

// sanitizeLogValue removes newlines and other characters that could break log parsing
func sanitizeLogValue(value string) string {
	value = strings.NewReplacer("\n", " ", "\r", " ", "\t", " ").Replace(value)
	return TruncateUTF8(value, 200)
}

// LogSecurityEvent logs a security event and persists it best-effort.
func LogSecurityEvent(event SecurityEvent) {
	entry := model.SecurityLog{
		EventType: string(event.EventType),
		UserID:    sanitizeLogValue(event.UserID),
		Role:      sanitizeLogValue(event.Role),
		IP:        sanitizeLogValue(event.IP),
		UserAgent: sanitizeLogValue(event.UserAgent),
		Message:   sanitizeLogValue(event.Message),
	}

	securityLogger.Info().
		Str("event", entry.EventType).
		Str("user_id", entry.UserID).
		Str("role", entry.Role).
		Str("ip", entry.IP).
		Str("user_agent", entry.UserAgent).
		Int("details", len(event.Details)).
		Msg(entry.Message)

	if securityDB == nil {
		return
	}
	if event.Details != nil {
		if b, err := json.Marshal(event.Details); err == nil {
			entry.Details = datatypes.JSON(b)
		}
	}
	entry.Location = sanitizeLogValue(GetIPLocation(event.IP).String())
	if err := securityDB.Create(&entry).Error; err != nil {
		securityLogger.Error().Err(err).Msg("failed to persist security event")
	}
}

// LogLoginSuccess logs a successful login event
func LogLoginSuccess(userID, role, ip, userAgent string) {
	LogSecurityEvent(SecurityEvent{
		EventType: EventLoginSuccess,
		UserID:    userID,
		Role:      role,
		IP:        ip,
		UserAgent: userAgent,
		Message:   "User logged in successfully",
	})
}

// LogLoginFailure logs a failed login attempt
func LogLoginFailure(userID, ip, userAgent, reason string) {
	LogSecurityEvent(SecurityEvent{
		EventType: EventLoginFailure,
		UserID:    userID,
		IP:        ip,
		UserAgent: userAgent,
		Message:   fmt.Sprintf("Login failed: %s", reason),
	})
}

// LogSignup logs a patient registration
func LogSignup(userID, ip, userAgent string) {
	LogSecurityEvent(SecurityEvent{
		EventType: EventSignupSuccess,
		UserID:    userID,
		Role:      model.RolePatient,
		IP:        ip,
		UserAgent: userAgent,
		Message:   "User registered",
	})
}

// LogLogout logs a logout event
func LogLogout(userID, role, ip, userAgent string) {
	LogSecurityEvent(SecurityEvent{
		EventType: EventLogout,
		UserID:    userID,
		Role:      role,
		IP:        ip,
		UserAgent: userAgent,
		Message:   "User logged out",
	})
}

// LogIDChanged logs a self-service id change
func LogIDChanged(oldID, newID, ip string) {
	LogSecurityEvent(SecurityEvent{
		EventType: EventIDChanged,
		UserID:    newID,
		Role:      model.RolePatient,
		IP:        ip,
		Message:   fmt.Sprintf("User id changed from %s", oldID),
		Details:   map[string]interface{}{"old_id": oldID, "new_id": newID},
	})
}

// LogUnauthorizedAccess logs unauthorized access attempts
func LogUnauthorizedAccess(userID, ip, resource, reason string) {
	LogSecurityEvent(SecurityEvent{
		EventType: EventUnauthorizedAccess,
		UserID:    userID,
		IP:        ip,
		Message:   fmt.Sprintf("Unauthorized access to %s: %s", resource, reason),
	})
}

// LogRateLimitExceeded logs when rate limit is exceeded
func LogRateLimitExceeded(ip, endpoint string) {
	LogSecurityEvent(SecurityEvent{
		EventType: EventRateLimitExceeded,
		IP:        ip,
		Message:   fmt.Sprintf("Rate limit exceeded for endpoint: %s", endpoint),
	})
}
