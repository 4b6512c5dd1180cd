package services

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

const (
	failedLoginWindow    = 10 * time.Minute
	failedLoginThreshold = 5
	alertCooldown        = time.Hour
	maxAlerts            = 100
)

// SecurityAlert represents a triggered security alert
type SecurityAlert struct {
	Timestamp time.Time
	IP        string
	Reason    string
	Level     string // "WARNING", "CRITICAL"
}

// SecurityMonitor counts failed logins per IP and raises an alert once an IP
// crosses the threshold inside the window. Alerts repeat at most once per hour per IP.
type SecurityMonitor struct {
	log          *zap.Logger
	failedLogins *cache.Cache // IP -> failures in the current window
	alertedIPs   *cache.Cache // IP -> last alert time

	mu     sync.Mutex
	alerts []SecurityAlert
	now    func() time.Time
}

// NewSecurityMonitor creates a monitor whose stale entries expire on their own
func NewSecurityMonitor(log *zap.Logger) *SecurityMonitor {
	return &SecurityMonitor{
		log:          log.Named("security"),
		failedLogins: cache.New(failedLoginWindow, time.Minute),
		alertedIPs:   cache.New(alertCooldown, 10*time.Minute),
		now:          time.Now,
	}
}

// TrackFailedLogin records a failed login attempt and reports whether it raised an alert
func (m *SecurityMonitor) TrackFailedLogin(ip string) bool {
	count := 1
	if err := m.failedLogins.Add(ip, 1, failedLoginWindow); err != nil {
		n, err := m.failedLogins.IncrementInt(ip, 1)
		if err != nil {
			m.failedLogins.Set(ip, 1, failedLoginWindow)
			n = 1
		}
		count = n
	}

	if count < failedLoginThreshold {
		return false
	}
	return m.triggerAlert(ip, "Multiple failed logins detected")
}

// ResetFailedLogins forgets the failures of ip after a successful login
func (m *SecurityMonitor) ResetFailedLogins(ip string) {
	m.failedLogins.Delete(ip)
}

func (m *SecurityMonitor) triggerAlert(ip, reason string) bool {
	if err := m.alertedIPs.Add(ip, m.now(), alertCooldown); err != nil {
		return false
	}

	alert := SecurityAlert{
		Timestamp: m.now(),
		IP:        ip,
		Reason:    reason,
		Level:     "CRITICAL",
	}

	m.mu.Lock()
	// Newest first
	m.alerts = append([]SecurityAlert{alert}, m.alerts...)
	if len(m.alerts) > maxAlerts {
		m.alerts = m.alerts[:maxAlerts]
	}
	m.mu.Unlock()

	m.log.Warn("Security alert",
		zap.String("level", alert.Level),
		zap.String("reason", reason),
		zap.String("ip", ip),
	)
	return true
}

// RecentAlerts returns a copy of recent alerts, newest first
func (m *SecurityMonitor) RecentAlerts() []SecurityAlert {
	m.mu.Lock()
	defer m.mu.Unlock()
	alertsCopy := make([]SecurityAlert, len(m.alerts))
	copy(alertsCopy, m.alerts)
	return alertsCopy
}
