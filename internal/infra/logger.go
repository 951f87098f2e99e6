// README: Structured logger construction (zap).
package infra

import "go.uber.org/zap"

// NewLogger builds the process-wide zap logger. Development mode uses the
// human-readable console encoder.
func NewLogger(development bool) (*zap.Logger, error) {
	if development {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
