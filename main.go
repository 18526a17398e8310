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

package main

import (
	"flag"
	"net/http"
	"time"

	"sampleatlas/internal/dataset"
	"sampleatlas/windows"
)

func main() {
	project := flag.String("project", "parchment", "project whose dataset to open")
	baseURL := flag.String("base-url", "https://samples.radiocarbon.atlas", "base URL the dataset payload is served from")
	flag.Parse()

	loader := &dataset.Loader{
		BaseURL: *baseURL,
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
	windows.CreateMainWindow(loader, *project)
}
