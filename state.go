package qsim

/*
Entry is one stored basis state of the sparse register together with its
probability amplitude.
*/
type Entry struct {
	Index     Index
	Amplitude complex128
}

// Probability returns the squared magnitude of the amplitude.
func (e Entry) Probability() float64 {
	return normSqr(e.Amplitude)
}

func normSqr(v complex128) float64 {
	return real(v)*real(v) + imag(v)*imag(v)
}

// nearlyZero reports whether v is indistinguishable from zero at the given magnitude threshold.
func nearlyZero(v complex128, epsilon float64) bool {
	return normSqr(v) <= epsilon*epsilon
}
