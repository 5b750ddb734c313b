package s3remote

import (
	"errors"

	"github.com/grafana/s3remote/log"
)

// WithLogger configures a custom logger for the client.
// If not provided, a no-op logger is used. A logger injected into the
// context of a call with log.WithContextLogger takes precedence.
func WithLogger(logger log.Logger) Option {
	return func(c *clientImpl) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		c.logger = logger
		return nil
	}
}
