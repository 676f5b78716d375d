package identity

import "go.uber.org/fx"

// Module wires the placeholder provider as the Provider implementation.
var Module = fx.Provide(func() Provider { return NewMockProvider() })
