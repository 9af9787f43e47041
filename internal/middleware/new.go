package middleware

import (
	"natural-event-scheduler/pkg/log"
)

type Middleware struct {
	l               log.Logger
	rateLimitPerMin int
}

func New(l log.Logger, rateLimitPerMin int) Middleware {
	return Middleware{
		l:               l,
		rateLimitPerMin: rateLimitPerMin,
	}
}
