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

package server

import (
	"context"
	"errors"
	"maps"
	"net/http"
	"time"

	"github.com/google/uuid"

	brewerrors "github.com/mchmarny/brewkit/pkg/errors"
	"github.com/mchmarny/brewkit/pkg/serializer"
)

// HTTPStatusFromCode maps an error code to its HTTP status.
func HTTPStatusFromCode(code brewerrors.ErrorCode) int {
	switch code {
	case brewerrors.ErrCodeInvalidInput, brewerrors.ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case brewerrors.ErrCodeDomain:
		return http.StatusUnprocessableEntity
	case brewerrors.ErrCodeNotFound:
		return http.StatusNotFound
	case brewerrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case brewerrors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case brewerrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	case brewerrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func retryableFromCode(code brewerrors.ErrorCode) bool {
	switch code {
	case brewerrors.ErrCodeTimeout, brewerrors.ErrCodeUnavailable,
		brewerrors.ErrCodeRateLimitExceeded, brewerrors.ErrCodeInternal:
		return true
	default:
		return false
	}
}

// mergeDetails returns a new map holding a then b, or nil when both are empty.
func mergeDetails(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[string]any, len(a)+len(b))
	maps.Copy(out, a)
	maps.Copy(out, b)
	return out
}

// WriteError writes a structured error response.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code brewerrors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID := RequestID(r.Context())
	if requestID == "" {
		requestID = uuid.New().String()
	}

	errResp := ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	}

	serializer.RespondJSON(w, statusCode, errResp)
}

// WriteErrorFromErr writes err as a structured error response. Structured
// errors keep their code, message and context; the cause is reported under
// "error". Anything else is reported as an internal error with
// fallbackMessage, or as a timeout when it wraps context.DeadlineExceeded.
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string, extraDetails map[string]any) {
	if se, ok := brewerrors.As(err); ok {
		details := mergeDetails(se.Context, extraDetails)
		if se.Cause != nil {
			details = mergeDetails(details, map[string]any{"error": se.Cause.Error()})
		}
		WriteError(w, r, HTTPStatusFromCode(se.Code), se.Code, se.Message, retryableFromCode(se.Code), details)
		return
	}

	code := brewerrors.ErrCodeInternal
	if errors.Is(err, context.DeadlineExceeded) {
		code = brewerrors.ErrCodeTimeout
	}

	details := mergeDetails(extraDetails, map[string]any{"error": err.Error()})
	WriteError(w, r, HTTPStatusFromCode(code), code, fallbackMessage, retryableFromCode(code), details)
}
