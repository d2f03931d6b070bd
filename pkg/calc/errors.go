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

package calc

import (
	"errors"

	brewerrors "github.com/mchmarny/brewkit/pkg/errors"
)

var (
	// ErrNegativeTarget is returned when the other hop additions already
	// exceed the requested bitterness.
	ErrNegativeTarget = errors.New("target IBU is below the bitterness of the other additions")

	// ErrDivisionByZero is returned when an input makes a formula divide by zero.
	ErrDivisionByZero = errors.New("division by zero")
)

func domainError(message string, cause error, context map[string]any) error {
	return brewerrors.WrapWithContext(brewerrors.ErrCodeDomain, message, cause, context)
}
