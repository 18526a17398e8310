package windows

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"sampleatlas/internal/dataset"
	"sampleatlas/internal/export"
	"sampleatlas/internal/intent"
	"sampleatlas/internal/scene"
	"sampleatlas/internal/store"
	"sampleatlas/internal/table"
)

// MainWindow is the application shell: toolbar and filter controls on
// top, the sample table and the 3D projection side by side, a status
// bar at the bottom. All view-state changes flow through the intent
// coordinator; the window only wires views to store events.
type MainWindow struct {
	a fyne.App
	w fyne.Window

	project string
	loader  *dataset.Loader

	store *store.Store
	model *table.Model
	coord *intent.Coordinator
	geom  *scene.Geometry

	tableView   *TableView
	sceneView   *SceneView
	legend      *Legend
	spectrumWin *SpectrumWindow

	filterEntry *widget.Entry
	colorSelect *widget.Select
	statusBar   *widget.Label
}

func CreateMainWindow(loader *dataset.Loader, project string) *MainWindow {
	var v MainWindow
	v.NewMainWindow(loader, project)
	return &v
}

// SetStatus updates the status bar message
func (t *MainWindow) SetStatus(message string) {
	if t.statusBar != nil {
		t.statusBar.SetText(message)
	}
}

func (t *MainWindow) NewMainWindow(loader *dataset.Loader, project string) {
	t.loader = loader
	t.project = project

	t.a = app.NewWithID("sampleatlas")
	t.a.Settings().SetTheme(&AtlasTheme{})
	t.w = t.a.NewWindow("Sample Atlas: " + project)
	t.w.Resize(fyne.NewSize(1200, 760))

	t.statusBar = widget.NewLabel("Ready")
	t.statusBar.TextStyle = fyne.TextStyle{Italic: true}

	t.w.SetContent(container.NewCenter(widget.NewLabel("Loading " + project + "...")))
	t.loadProject()
	t.w.ShowAndRun()
}

// loadProject fetches the dataset. A load failure is fatal for the
// session: the window shows the error and no partial content.
func (t *MainWindow) loadProject() {
	c := make(chan bool)
	go func(c chan bool) {
		pbi := widget.NewProgressBarInfinite()
		di := dialog.NewCustomWithoutButtons(fmt.Sprintf("Loading %s...", t.project), pbi, t.w)
		di.Resize(fyne.NewSize(300, 100))
		di.Show()
		pbi.Start()
		for {
			select {
			case <-c:
				di.Hide()
				pbi.Stop()
				return
			default:
				time.Sleep(time.Millisecond * 500)
			}
		}
	}(c)

	ds, err := t.loader.Load(t.project)
	c <- true
	if err != nil {
		t.SetStatus("Dataset load failed")
		dialog.ShowError(err, t.w)
		return
	}

	t.buildContent(ds)
}

func (t *MainWindow) buildContent(ds *dataset.Dataset) {
	t.store = store.New(ds)
	t.model = table.NewModel(ds)
	t.coord = intent.NewCoordinator(t.store)

	t.tableView = NewTableView(t.model, t.store, t.coord.Dispatch)
	t.sceneView = NewSceneView(t.coord.Dispatch)
	t.legend = NewLegend()
	t.spectrumWin = NewSpectrumWindow(t.a, t.w, ds)

	t.coord.OnSpectrum(t.spectrumWin.Show)
	t.coord.OnSelect(t.tableView.ScrollToSample)

	t.filterEntry = widget.NewEntry()
	t.filterEntry.SetPlaceHolder("Filter samples (text or attr = value)")
	t.filterEntry.OnChanged = func(text string) {
		t.coord.Dispatch(intent.FilterChanged{Text: text})
	}

	labels, keyByLabel := t.channelLabels(ds)
	t.colorSelect = widget.NewSelect(labels, func(sel string) {
		t.coord.Dispatch(intent.ColorChannelChanged{Key: keyByLabel[sel]})
	})
	if desc, ok := ds.Encoding(t.store.ColorKey()); ok {
		t.colorSelect.Selected = desc.Label
	}

	t.store.On(store.EventFilterChanged, func(interface{}) {
		t.tableView.Reload()
		t.rebuildScene()
		t.updateStatus()
	})
	t.store.On(store.EventSortChanged, func(interface{}) {
		t.tableView.Reload()
		t.updateStatus()
	})
	t.store.On(store.EventColorChanged, func(interface{}) {
		desc := t.store.ColorEncoding()
		t.sceneView.SetEncoding(desc)
		t.legend.Update(desc, t.currentGeometry())
		t.updateStatus()
	})
	t.store.On(store.EventSelectionChanged, func(data interface{}) {
		t.tableView.Refresh()
		t.sceneView.SetSelected(data.(string))
	})

	t.rebuildScene()

	toolbar := widget.NewToolbar(
		widget.NewToolbarAction(theme.ViewRefreshIcon(), t.sceneView.ResetCamera),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), func() {
			t.exportVisible(export.FormatCSV)
		}),
	)

	t.w.SetMainMenu(fyne.NewMainMenu(fyne.NewMenu("File",
		fyne.NewMenuItem("Export as Parquet...", func() { t.exportVisible(export.FormatParquet) }),
		fyne.NewMenuItem("Export as CSV...", func() { t.exportVisible(export.FormatCSV) }),
		fyne.NewMenuItem("Export as JSON...", func() { t.exportVisible(export.FormatJSON) }),
	)))

	controls := container.NewBorder(nil, nil, nil,
		container.NewHBox(widget.NewLabel("Color by:"), t.colorSelect),
		t.filterEntry)

	right := container.NewBorder(nil, container.NewHScroll(t.legend.Object()), nil, nil, t.sceneView)
	split := container.NewHSplit(t.tableView.Object(), right)
	split.Offset = 0.55

	top := container.NewVBox(toolbar, controls)
	t.w.SetContent(container.NewBorder(top, container.NewHBox(t.statusBar), nil, nil, split))
	t.updateStatus()
}

// rebuildScene derives plot geometry from the filtered, load-ordered
// sequence. Table sorting never reaches this path.
func (t *MainWindow) rebuildScene() {
	desc := t.store.ColorEncoding()
	geom := scene.Build(t.model.PlotRows(t.store.Filter()), desc)
	t.geom = geom
	t.sceneView.SetGeometry(geom, desc)
	t.legend.Update(desc, geom)
}

func (t *MainWindow) currentGeometry() *scene.Geometry { return t.geom }

func (t *MainWindow) channelLabels(ds *dataset.Dataset) ([]string, map[string]string) {
	labels := make([]string, 0, len(ds.EncodingKeys))
	byLabel := make(map[string]string, len(ds.EncodingKeys))
	for _, key := range ds.EncodingKeys {
		desc, _ := ds.Encoding(key)
		labels = append(labels, desc.Label)
		byLabel[desc.Label] = key
	}
	return labels, byLabel
}

func (t *MainWindow) updateStatus() {
	visible := t.tableView.VisibleCount()
	total := t.model.TotalRows()
	status := fmt.Sprintf("Project %s: showing %d/%d samples", t.project, visible, total)

	st := t.store.Sort()
	if st.IsSorted() {
		direction := "↑"
		if st.Direction == table.SortDescending {
			direction = "↓"
		}
		status += fmt.Sprintf(" | Sorted: %s %s", st.Column, direction)
	}
	if desc := t.store.ColorEncoding(); desc.Label != "" {
		status += " | Color: " + desc.Label
	}
	t.SetStatus(status)
}
