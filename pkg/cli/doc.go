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

// Package cli implements the brew command-line interface.
//
// # Overview
//
// brew wraps the brewing calculators and the beer style, hop and yeast
// reference data in one command per calculation or search. Every command
// writes a document with a kind, an apiVersion, metadata and the result
// under spec.
//
// # Commands
//
// Calculators:
//
//	brew abv --og 1.064 --fg 1.012
//	brew abv --og 1.064 --abv 6.8
//	brew fg --og 1.056 --attenuation 75
//	brew abv-abw --percent 5 --total-volume 330ml
//	brew calories --og 1.050 --fg 1.010 --volume 330ml
//	brew calories --abv 5
//	brew boil-off --wort-volume 25l --current-gravity 1.040 --desired-gravity 1.050
//	brew diluting --sg 1.060 --current-volume 10l --target-volume 12l
//	brew sg-correction --sg 1.050 --calibration-temperature 20C --measured-temperature 30C
//	brew priming --temp 20C --amount 25l --co2-volumes 2.4
//	brew num-bottles --volume 25l
//	brew ibu --volume 20l --gravity 1.050 --addition 28g:10:60 --addition 14g:5:10:pellet
//	brew bittering --target-ibu 40 --alpha-acid 12 --volume 20l --gravity 1.050
//	brew yeast-viability --production-date 01/12/2025 --cell-count 100
//
// Searches:
//
//	brew beer-style --name ipa --abv 6.5
//	brew hops --purpose Aroma --country USA
//	brew yeasts --company wyeast --temperature 20C
//
// # Flags
//
//	--output, -o      Output file path (default: stdout)
//	--format          Output format: yaml, json, table (default: yaml)
//	--log-level       Log level: debug, info, warn, error (default: info)
//	--styles-file     Beer styles dataset path or URL
//	--hops-file       Hops dataset path or URL
//	--yeasts-file     Yeasts dataset path or URL
//
// # Exit Codes
//
//	0  Success
//	1  Invalid input or calculation failure
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/mchmarny/brewkit/pkg/cli.version=1.0.0'"
package cli
