package nbody

import "errors"

// Domain errors for simulation operations. All are recoverable at the
// call boundary: the operation that reports one leaves the simulation
// state unchanged.
var (
	// ErrOutOfRange indicates a body index outside the current body list.
	ErrOutOfRange = errors.New("nbody: body index out of range")

	// ErrEmptySystem indicates a diagnostic query on a system with no
	// bodies (or zero total mass).
	ErrEmptySystem = errors.New("nbody: empty system")

	// ErrSingularConfiguration indicates two bodies at zero separation
	// during force evaluation. The step that detects it is not committed.
	ErrSingularConfiguration = errors.New("nbody: coincident bodies (zero separation)")

	// ErrUnsupportedStrategy indicates an unknown integration method.
	ErrUnsupportedStrategy = errors.New("nbody: unsupported integration method")

	// ErrNonPositiveMass indicates a body mass <= 0.
	ErrNonPositiveMass = errors.New("nbody: mass must be positive")
)
