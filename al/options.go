// SPDX-License-Identifier: EPL-2.0

package al

import "go.uber.org/zap"

// Option configures a Context.
type Option func(*Context)

// WithLogger sets the logger used for buffer lifecycle events. A nil
// logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(c *Context) {
		if l != nil {
			c.logger = l
		}
	}
}
