package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid faz uma checagem barata de que o domínio do
// e-mail existe de verdade (MX ou, na falta dele, qualquer registro A).
// Não substitui confirmação por e-mail; só barra typos grosseiros
// tipo "gmial.com" no cadastro.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	if strings.ContainsAny(domain, " @") {
		return false
	}

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	// domínio sem MX mas com A ainda recebe e-mail em alguns provedores
	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
