package engine

import "github.com/pkg/errors"

// ErrMissingComponent is raised by MustGet when an entity lacks the requested component
// Systems only request components guaranteed by their query, so this is a contract violation
var ErrMissingComponent = errors.New("missing component")
