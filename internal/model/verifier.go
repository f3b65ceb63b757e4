package model

import "context"

// DomainVerifier reports whether an email's domain can receive mail.
type DomainVerifier interface {
	IsDeliverable(ctx context.Context, email string) (bool, error)
}
