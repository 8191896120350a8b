package model

// Scope carries the authenticated caller's identity through the request.
// Authentication itself happens upstream; the engine only consumes the
// already-verified user identifier.
type Scope struct {
	UserID   string
	Username string
}

// Environment names the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
