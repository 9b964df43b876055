package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid checks that the address's domain actually resolves
// (MX first, A/AAAA as fallback). Used behind STRICT_EMAIL_CHECK so the
// booking form never depends on DNS in the default configuration.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := strings.ToLower(email[at+1:])

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
