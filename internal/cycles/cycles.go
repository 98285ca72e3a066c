// package cycles reads the hardware cycle counter of the processor the
// calling thread is running on.
package cycles

// Source returns the name of the counter read by Now.
func Source() string { return source }
