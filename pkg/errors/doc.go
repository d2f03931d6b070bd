// Copyright (c) 2025, The Brewkit Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package errors provides structured error types shared by the calculators,
// the CLI and the API server.
//
// Two codes matter most to callers of the calculators:
//
//   - ErrCodeInvalidInput: the input could not be understood ("1.0x5", "abc l",
//     a malformed date). The request should be fixed and resent.
//   - ErrCodeDomain: the input parsed fine but describes something that cannot
//     happen (a bittering target below the IBU already contributed by other
//     additions, diluting wort down to a gravity of exactly 1.000).
//
// The remaining codes describe transport-level failures and map directly onto
// HTTP status codes in pkg/server.
//
// Usage:
//
//	if err != nil {
//	    return errors.Wrap(errors.ErrCodeInvalidInput, "invalid original gravity", err)
//	}
//
// StructuredError implements Unwrap, so errors.Is and errors.As see through it
// to sentinel causes such as calc.ErrNegativeTarget.
package errors
