// Package dns verifies email deliverability by looking up MX records
// for the address domain.
package dns

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/njaumatilda/PRODIGY-BD-03/internal/model"
)

var _ model.DomainVerifier = (*Verifier)(nil)

// Verifier resolves MX records to decide whether a domain accepts mail.
type Verifier struct {
	resolver *net.Resolver
	timeout  time.Duration
}

// New creates a new Verifier with a per-lookup timeout.
func New(timeout time.Duration) *Verifier {
	return &Verifier{
		resolver: &net.Resolver{},
		timeout:  timeout,
	}
}

// IsDeliverable reports whether the email's domain publishes at least one
// MX record. A domain that does not exist is reported as not deliverable;
// resolver failures are returned as errors for the caller to map.
func (v *Verifier) IsDeliverable(ctx context.Context, email string) (bool, error) {
	parts := strings.SplitN(email, "@", 2)
	if len(parts) != 2 || parts[1] == "" {
		return false, nil
	}

	ctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	records, err := v.resolver.LookupMX(ctx, parts[1])
	if err != nil {
		var dnsErr *net.DNSError
		if errors.As(err, &dnsErr) && dnsErr.IsNotFound {
			return false, nil
		}
		return false, fmt.Errorf("failed to look up mx records for %q: %w", parts[1], err)
	}

	return len(records) > 0, nil
}
