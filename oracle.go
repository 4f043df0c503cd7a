package qtable

import "context"

/*
Oracle simulates a circuit for one full input state and returns the full
output state, or an error when the state cannot be simulated. Implementations
must not retain or modify input.
*/
type Oracle interface {
	Simulate(ctx context.Context, c Computation, input State) (State, error)
}

// OracleFunc adapts a plain function to the Oracle interface.
type OracleFunc func(ctx context.Context, c Computation, input State) (State, error)

func (f OracleFunc) Simulate(ctx context.Context, c Computation, input State) (State, error) {
	return f(ctx, c, input)
}
