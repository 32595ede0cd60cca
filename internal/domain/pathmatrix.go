package domain

// PathMatrix holds N simulated price trajectories in a single row-major buffer
// of N*(M+1) float64 values, where M is the number of time steps. Memory cost
// is 8*N*(M+1) bytes; callers choosing very large N*M should size accordingly.
// The matrix is written once during simulation and read-only afterward.
type PathMatrix struct {
	paths int
	steps int
	data  []float64
}

// NewPathMatrix allocates a matrix for the given number of paths and steps.
func NewPathMatrix(paths, steps int) *PathMatrix {
	return &PathMatrix{
		paths: paths,
		steps: steps,
		data:  make([]float64, paths*(steps+1)),
	}
}

// NumPaths returns the number of simulated trajectories (rows).
func (m *PathMatrix) NumPaths() int { return m.paths }

// NumSteps returns the number of time steps per trajectory; each row has
// NumSteps()+1 entries including the initial price at step 0.
func (m *PathMatrix) NumSteps() int { return m.steps }

// At returns the price of the given path at the given step.
func (m *PathMatrix) At(path, step int) float64 {
	return m.data[path*(m.steps+1)+step]
}

// Set writes the price of the given path at the given step.
func (m *PathMatrix) Set(path, step int, price float64) {
	m.data[path*(m.steps+1)+step] = price
}

// Row returns one trajectory as a slice aliasing the underlying buffer.
func (m *PathMatrix) Row(path int) []float64 {
	start := path * (m.steps + 1)
	return m.data[start : start+m.steps+1]
}

// Terminal returns the price of the given path at maturity.
func (m *PathMatrix) Terminal(path int) float64 {
	return m.At(path, m.steps)
}

// TerminalPrices returns a fresh slice with the price at maturity of every path.
func (m *PathMatrix) TerminalPrices() []float64 {
	out := make([]float64, m.paths)
	for i := 0; i < m.paths; i++ {
		out[i] = m.Terminal(i)
	}
	return out
}
