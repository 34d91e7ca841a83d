package auth

import "time"

// Strategy issues and verifies bearer tokens bound to a subject email.
type Strategy interface {
	IssueToken(subject string) (string, error)
	ParseToken(token string) (string, error)
	Name() string
}

type Options struct {
	TTL time.Duration
}
