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

package windows

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"sampleatlas/internal/export"
)

// exportVisible writes the currently visible rows (after filter and
// sort) to the chosen format via a file save dialog.
func (t *MainWindow) exportVisible(format export.Format) {
	rows := t.model.VisibleRows(t.store.Filter(), t.store.Sort())
	if len(rows) == 0 {
		dialog.ShowInformation("Nothing to Export",
			"The current filter matches no samples.", t.w)
		return
	}

	saveDialog := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, t.w)
			return
		}
		if writer == nil {
			// User cancelled
			return
		}
		filePath := writer.URI().Path()
		writer.Close()

		c := make(chan bool)
		go func(c chan bool) {
			pbi := widget.NewProgressBarInfinite()
			progressDialog := dialog.NewCustomWithoutButtons("Exporting...", pbi, t.w)
			progressDialog.Resize(fyne.NewSize(300, 100))
			progressDialog.Show()
			pbi.Start()
			for {
				select {
				case <-c:
					progressDialog.Hide()
					pbi.Stop()
					return
				default:
					time.Sleep(time.Millisecond * 500)
				}
			}
		}(c)

		var exportErr error
		tbl, buildErr := export.BuildArrowTable(t.model.Columns(), rows)
		if buildErr != nil {
			exportErr = fmt.Errorf("failed to prepare data: %w", buildErr)
		} else {
			switch format {
			case export.FormatParquet:
				exportErr = export.ToParquet(tbl, filePath)
			case export.FormatCSV:
				exportErr = export.ToCSV(tbl, filePath)
			case export.FormatJSON:
				exportErr = export.ToJSON(tbl, filePath)
			}
			tbl.Release()
		}

		c <- true

		if exportErr != nil {
			dialog.ShowError(fmt.Errorf("export failed: %w", exportErr), t.w)
		} else {
			dialog.ShowInformation("Export Successful",
				fmt.Sprintf("Data exported successfully to:\n%s", filePath), t.w)
		}
	}, t.w)

	saveDialog.SetFileName(cleanFilename(t.project) + format.Ext())
	saveDialog.Show()
}

// cleanFilename removes spaces and special characters from a filename.
func cleanFilename(name string) string {
	result := ""
	for _, r := range name {
		if r == ' ' {
			result += "_"
		} else if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' || r == '-' {
			result += string(r)
		}
	}
	if result == "" {
		result = "samples"
	}
	return result
}
