// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coeff

// Effect unions are closed. A computation suspending on a narrower union
// is used where a wider one is expected only through an explicit Embed,
// so an unsatisfiable composition is a type error rather than a runtime one.

// Embed converts an effect of a narrower union into a wider union.
// Embeddings are total: every From value has a To representation.
type Embed[From, To any] func(From) To

// View projects an effect of a wider union back onto a member union.
// It returns false if the value belongs to another member.
type View[To, From any] func(To) (From, bool)

// identityEmbed is the identity embedding.
// Named generic function produces a static function value per type instantiation.
func identityEmbed[E any](e E) E { return e }

// Identity returns the embedding of a union into itself.
func Identity[E any]() Embed[E, E] {
	return identityEmbed[E]
}

// Compose chains two embeddings: A into B, then B into C.
func Compose[A, B, C any](f Embed[A, B], g Embed[B, C]) Embed[A, C] {
	return func(a A) C {
		return g(f(a))
	}
}

// Embedding is a constraint for effect values that know their embedding
// into a wider union U.
//
// Example:
//
//	type Log struct{ Message string }
//	func (l Log) Embed() Effect { return Effect{Log: &l} }
type Embedding[U any] interface {
	Embed() U
}

// Into returns the embedding carried by an [Embedding] effect type.
func Into[E Embedding[U], U any]() Embed[E, U] {
	return embedInto[E, U]
}

func embedInto[E Embedding[U], U any](e E) U { return e.Embed() }
