package placement

import (
	"strings"

	"github.com/google/uuid"
)

// CertificateURL derives the completion certificate reference for an
// application. Pure and deterministic: the same application always maps to
// the same URL, which keeps the completed transition idempotent.
func CertificateURL(baseURL string, applicationID uuid.UUID) string {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	return base + "/" + applicationID.String() + ".pdf"
}
