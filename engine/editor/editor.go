package editor

import (
	"fmt"
	"path/filepath"

	"github.com/spaghettifunk/anima-editor/engine/core"
	"github.com/spaghettifunk/anima-editor/engine/editor/text"
	"github.com/spaghettifunk/anima-editor/engine/scene"
)

const (
	ShaderEditorWindow  = "Shader Editor"
	DebugCountersWindow = "Debug counters"
	EntityBrowserWindow = "Entity Browser"
)

// FrameState is what the editor reports back to the engine every frame.
type FrameState struct {
	// ShowEditor toggles the editor windows.
	ShowEditor bool
	// HasChanges is set when the editor wrote a file this frame.
	HasChanges bool
}

// EditorUI draws the editor panels on top of the scene.
type EditorUI struct {
	ctx      Context
	profiler *core.Profiler
	metrics  *core.Metrics
	dialog   FileDialog
}

func New(ctx Context, profiler *core.Profiler, metrics *core.Metrics) *EditorUI {
	return &EditorUI{
		ctx:      ctx,
		profiler: profiler,
		metrics:  metrics,
	}
}

// SetFileDialog enables File > Open.
func (ui *EditorUI) SetFileDialog(d FileDialog) {
	ui.dialog = d
}

func (ui *EditorUI) NewFrame(deltaTime float64) {
	ui.ctx.NewFrame(deltaTime)
}

func (ui *EditorUI) Render() {
	ui.ctx.Render()
}

func (ui *EditorUI) Shutdown() {
	ui.ctx.Shutdown()
	core.LogInfo("editor shut down")
}

// Update builds this frame's windows. It must run between NewFrame and Render.
func (ui *EditorUI) Update(session *Session, state *FrameState, data *scene.GameData) {
	state.HasChanges = false
	w := ui.ctx

	if w.BeginMainMenuBar() {
		if w.BeginMenu("Windows") {
			if w.MenuItem("Editor", "F1", state.ShowEditor, true) {
				state.ShowEditor = !state.ShowEditor
			}
			w.EndMenu()
		}
		fps := ui.metrics.FPS()
		w.Text(fmt.Sprintf("Application average %.3f ms/frame (%.1f FPS)", ui.metrics.FrameTime(), fps))
		w.EndMainMenuBar()
	}

	if !state.ShowEditor {
		return
	}

	ui.shaderEditor(session, state)
	ui.debugCounters()
	ui.entityBrowser(session, data)
}

func (ui *EditorUI) shaderEditor(session *Session, state *FrameState) {
	w := ui.ctx
	buf := session.Buffer

	if core.InputIsCtrlDown() && core.InputIsKeyPressed(core.KEY_S) {
		ui.save(session, state)
	}
	if core.InputIsKeyPressed(core.KEY_INSERT) && !buf.IsReadOnly() {
		buf.SetOverwrite(!buf.IsOverwrite())
	}

	w.SetNextWindowSize(800, 600)
	if w.BeginWindow(ShaderEditorWindow, WindowFlagsHorizontalScrollbar|WindowFlagsMenuBar) {
		if w.BeginMenuBar() {
			ui.fileMenu(session, state)
			editMenu(w, buf)
			viewMenu(w, buf)
			if w.Button("Close") {
				state.ShowEditor = false
			}
			w.EndMenuBar()
		}

		w.Text(statusLine(session))
		if session.Notice != "" {
			w.Text(session.Notice)
		}
		w.TextEditor(ShaderEditorWindow, buf)
	}
	w.EndWindow()
}

func (ui *EditorUI) fileMenu(session *Session, state *FrameState) {
	w := ui.ctx
	if !w.BeginMenu("File") {
		return
	}
	if w.MenuItem("Open...", "", false, ui.dialog != nil) {
		ui.open(session)
	}
	if w.MenuItem("Save", "Ctrl-S", false, session.HasFile()) {
		ui.save(session, state)
	}
	w.EndMenu()
}

func editMenu(w Widgets, buf *text.Editor) {
	if !w.BeginMenu("Edit") {
		return
	}
	ro := buf.IsReadOnly()
	if w.MenuItem("Read-only mode", "", ro, true) {
		buf.SetReadOnly(!ro)
	}
	w.Separator()

	if w.MenuItem("Undo", "ALT-Backspace", false, !ro && buf.CanUndo()) {
		buf.Undo()
	}
	if w.MenuItem("Redo", "Ctrl-Y", false, !ro && buf.CanRedo()) {
		buf.Redo()
	}
	w.Separator()

	if w.MenuItem("Copy", "Ctrl-C", false, buf.HasSelection()) {
		buf.Copy()
	}
	if w.MenuItem("Cut", "Ctrl-X", false, !ro && buf.HasSelection()) {
		buf.Cut()
	}
	if w.MenuItem("Delete", "Del", false, !ro && buf.HasSelection()) {
		buf.Delete()
	}
	if w.MenuItem("Paste", "Ctrl-V", false, buf.CanPaste()) {
		buf.Paste()
	}
	w.Separator()

	if w.MenuItem("Select all", "", false, true) {
		buf.SelectAll()
	}
	w.EndMenu()
}

var palettes = []text.Palette{text.PaletteDark, text.PaletteLight, text.PaletteRetroBlue}

func viewMenu(w Widgets, buf *text.Editor) {
	if !w.BeginMenu("View") {
		return
	}
	for _, p := range palettes {
		if w.MenuItem(p.String()+" palette", "", buf.Palette() == p, true) {
			buf.SetPalette(p)
		}
	}
	w.EndMenu()
}

func (ui *EditorUI) debugCounters() {
	w := ui.ctx
	w.SetNextWindowSize(400, 600)
	if w.BeginWindow(DebugCountersWindow, WindowFlagsNone) {
		for r := core.DebugRegion(0); r < core.NumDebugRegions; r++ {
			w.LabelText(r.String(), fmt.Sprintf("%.3f ms", ui.profiler.AverageMS(r)))
		}
	}
	w.EndWindow()
}

func (ui *EditorUI) entityBrowser(session *Session, data *scene.GameData) {
	w := ui.ctx
	if w.BeginWindow(EntityBrowserWindow, WindowFlagsNone) && data != nil {
		session.SyncSelection(data.GameObjects)
		for i, obj := range data.GameObjects {
			label := fmt.Sprintf("(%d) %s", obj.ID, obj.Name)
			if w.Selectable(label, session.SelectedEntity == i) {
				session.ToggleSelection(data.GameObjects, i)
			}
		}
	}
	w.EndWindow()
}

func (ui *EditorUI) open(session *Session) {
	startDir := ""
	if session.HasFile() {
		startDir = filepath.Dir(session.CurrentFile)
	}
	path, err := ui.dialog(startDir)
	if err != nil {
		session.Notice = err.Error()
		core.LogWarn("file dialog failed: %s", err)
		return
	}
	if path == "" {
		return
	}
	if err := session.OpenFile(path); err != nil {
		session.Notice = err.Error()
		core.LogError("could not open %s: %s", path, err)
	}
}

func (ui *EditorUI) save(session *Session, state *FrameState) {
	if err := session.Save(); err != nil {
		session.Notice = err.Error()
		core.LogError("could not save %s: %s", session.CurrentFile, err)
		return
	}
	state.HasChanges = true
	session.Notice = "saved " + filepath.Base(session.CurrentFile)
	core.EventFire(core.EventContext{
		Type: core.EVENT_CODE_SHADER_SAVED,
		Data: &core.FileEvent{Path: session.CurrentFile},
	})
}

func statusLine(session *Session) string {
	buf := session.Buffer
	pos := buf.CursorPosition()
	mode := "Ins"
	if buf.IsOverwrite() {
		mode = "Ovr"
	}
	dirty := " "
	if buf.CanUndo() {
		dirty = "*"
	}
	file := session.CurrentFile
	if file == "" {
		file = "(no file)"
	}
	return fmt.Sprintf("%6d/%-6d %6d lines  | %s | %s | %s | %s",
		pos.Line+1, pos.Column+1, buf.TotalLines(), mode, dirty, buf.LanguageDefinition().Name, file)
}
