// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package effects provides illustrative effect families and the policies
// that interpret them.
//
// Families:
//
//   - [Log]: emit a message; always continues
//   - [Get], [Set]: read and overwrite a handler-owned slot ([StateOp])
//   - [Raise]: abort the handled session with a sentinel result
//
// [Effect] is the closed union of the Log and State families, built with
// [LogEffect] or [StateEffect]. [LogView] and [StateView] match its members.
//
// Policies:
//
//   - [LogStep]: Stepper for Log
//   - [StateStep]: Stepper for StateOp
//   - [LogState]: Stepper for the composed [Effect] union
//   - [ExceptionHandler]: Handler for Raise
//
// State is scoped to the policy instance: a fresh instance starts empty.
package effects
