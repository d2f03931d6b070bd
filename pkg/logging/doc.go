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

// Package logging configures log/slog for the brew CLI and the brewd server.
//
// Both binaries log JSON to stderr, tagged with "module" and "version", so
// calculation output on stdout stays clean for piping:
//
//	logging.SetDefaultStructuredLogger("brewd", version)
//	slog.Info("catalog loaded", "styles", n)
//
// The level comes from an explicit argument (the CLI --log-level flag) or,
// when that is empty, from LOG_LEVEL. Accepted names are debug, info, warn
// (or warning) and error; anything else is info. Debug level adds the
// source location to each record.
//
// NewLogLogger adapts the default handler to a *log.Logger for APIs such as
// http.Server.ErrorLog that still expect one.
package logging
