package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid checks at registration time that the address's domain
// actually resolves, via MX records or a plain A/AAAA lookup. Syntactic
// validation already happened at the binding layer; this only weeds out
// made-up domains before an account is created.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	// Some small domains receive mail on their apex without MX records.
	ips, err := net.LookupIP(domain)
	return err == nil && len(ips) > 0
}
