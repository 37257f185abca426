// Package tensor provides third- and fourth-order dense tensors and the
// multilinear primitives the decomposition engines are built on.
//
// What & Why:
//
//	Tensor3 (I1×I2×I3) and Tensor4 (I1×I2×I3×I4) store float64 elements in one
//	contiguous buffer with mode 1 varying fastest, so every frontal slice (and
//	every Tensor4 block along mode 4) is contiguous. Extents are fixed at
//	construction and checked at runtime; accessors return ErrOutOfRange and
//	never panic.
//
// Unfolding conventions:
//
//	Two matricization conventions exist and are deliberately separate types:
//
//	  - BackwardUnfolding (Lathauwer/Kolda): the remaining modes are laid out in
//	    ascending order with the LOWEST mode varying fastest. Mode-1 of a
//	    Tensor3 has column i2 + I2*i3. HOSVD, HOOI and HOPM use only this one.
//	  - ForwardUnfolding (Kiers): the remaining modes are laid out in ascending
//	    order with the HIGHEST mode varying fastest. Mode-1 of a Tensor3 has
//	    column i2*I3 + i3.
//
//	Each type refolds only through its own convention, so mixing them inside an
//	algorithm is a compile error rather than silent corruption.
//
// Multilinear products:
//
//	MultiplyMode contracts one mode with a J×I_k matrix; MultiplyAll composes
//	every mode and is the Tucker reconstruction operator.
//
// Tensor[T] is the mode-generic constraint satisfied by *Tensor3 and *Tensor4;
// the hosvd, tucker and cp engines are written once against it.
//
// Modes are zero-based; Mode1..Mode4 name them.
package tensor
