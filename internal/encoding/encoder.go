// Copyright 2025 Magnus Pierre
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

// Package encoding maps sample attributes to plot color values.
package encoding

import "sampleatlas/internal/dataset"

// UnknownOrdinal is the reserved ordinal for categorical values absent
// from a descriptor's mapping.
const UnknownOrdinal = -1

// Encode maps one sample's attribute to a color value under the given
// descriptor. Categorical descriptors yield the mapped ordinal, or
// UnknownOrdinal when the value is unmapped or missing. Continuous
// descriptors yield the raw numeric attribute value; normalization, if
// any, is the renderer's concern. Pure: no state beyond the arguments.
func Encode(desc dataset.Encoding, s *dataset.Sample) float64 {
	v := s.Attr(desc.Attr)

	if desc.Type == dataset.EncodingCategorical {
		if v.IsAbsent() {
			return UnknownOrdinal
		}
		if ord, ok := desc.Mapping[v.Format()]; ok {
			return float64(ord)
		}
		return UnknownOrdinal
	}

	if n, ok := v.Float(); ok {
		return n
	}
	return UnknownOrdinal
}
