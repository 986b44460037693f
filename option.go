// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coeff

// Param is the F-bounded interface for input types with a designated
// "no input yet" value. Nothing has executed before the first resume,
// so drivers supply Initial as the seed.
//
// Example:
//
//	type Operands struct{ A, B int; Set bool }
//	func (Operands) Initial() Operands { return Operands{} }
type Param[P Param[P]] interface {
	Initial() P
}

// Seed returns the "no input yet" value of P.
func Seed[P Param[P]]() P {
	var p P
	return p.Initial()
}

// Option is an input that may carry a value.
// The zero Option is None.
type Option[T any] struct {
	value T
	ok    bool
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// Initial implements [Param]: an Option seeds as None.
func (Option[T]) Initial() Option[T] {
	return Option[T]{}
}

// IsSome returns true if the Option holds a value.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// Get returns the held value and true, or zero and false.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// OrElse returns the held value, or v if the Option is empty.
func (o Option[T]) OrElse(v T) T {
	if o.ok {
		return o.value
	}
	return v
}
