package makuwro

import "fmt"

// Endpoint is a pair of base URLs for REST and realtime gateway access.
// It is passed explicitly at Client construction; there is no process-wide
// default.
type Endpoint struct {
	API     string
	Gateway string
}

// Named endpoint configurations.
var (
	// Production points at the live Makuwro service.
	Production = Endpoint{
		API:     "https://api.makuwro.com",
		Gateway: "wss://gateway.makuwro.com",
	}

	// Development points at a locally hosted stack.
	Development = Endpoint{
		API:     "http://localhost:3001",
		Gateway: "ws://localhost:3002",
	}
)

// EndpointForEnvironment resolves a named environment to its endpoint pair.
func EndpointForEnvironment(env string) (Endpoint, error) {
	switch env {
	case "production":
		return Production, nil
	case "development":
		return Development, nil
	default:
		return Endpoint{}, fmt.Errorf("unknown environment: %s", env)
	}
}
