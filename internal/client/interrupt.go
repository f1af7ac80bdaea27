package client

// Interrupter delivers an interrupt to the whole process group. It is an
// interface so tests can observe delivery without signalling themselves.
type Interrupter interface {
	Interrupt()
}
