package middleware

import (
	"eindr-intent-engine/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, requestsPerMin int) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(requestsPerMin),
	}
}
