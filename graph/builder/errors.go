package builder

import "github.com/kestrelgraph/kestrel/kerr"

func errTooFewNodes(method string, n, min int) error {
	return kerr.New(kerr.InvalidArgument, "%s: n=%d < min=%d", method, n, min)
}

func errBadIndex(method string, idx, n int) error {
	return kerr.New(kerr.InvalidArgument, "%s: node index %d out of range [0,%d)", method, idx, n)
}

func errSelfLoop(method string, idx int) error {
	return kerr.New(kerr.InvalidArgument, "%s: self-loop at index %d not allowed by policy", method, idx)
}

func errParallelEdge(method string, u, v int) error {
	return kerr.New(kerr.InvalidArgument, "%s: parallel edge %d-%d not allowed by policy", method, u, v)
}

func errBadProbability(method string, p float64) error {
	return kerr.New(kerr.InvalidArgument, "%s: probability %f out of range [0,1]", method, p)
}

func errConstructFailed(method string, attempts int) error {
	return kerr.New(kerr.AlgorithmError, "%s: exhausted %d stub-matching attempts", method, attempts)
}
