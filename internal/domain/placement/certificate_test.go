package placement

import (
	"testing"

	"github.com/google/uuid"
)

func TestCertificateURL(t *testing.T) {
	id := uuid.MustParse("3f9d2c2e-1a5b-4d2f-9c1e-8e7a6b5c4d3e")

	got := CertificateURL("https://certs.example.com", id)
	want := "https://certs.example.com/3f9d2c2e-1a5b-4d2f-9c1e-8e7a6b5c4d3e.pdf"
	if got != want {
		t.Fatalf("CertificateURL() = %q, want %q", got, want)
	}

	if again := CertificateURL("https://certs.example.com", id); again != got {
		t.Fatalf("expected deterministic result, got %q then %q", got, again)
	}

	if trailing := CertificateURL("https://certs.example.com/", id); trailing != want {
		t.Fatalf("trailing slash: got %q, want %q", trailing, want)
	}
}
