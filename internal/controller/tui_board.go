package controller

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "treesummary.dev/pkg/treesummary/internal/model"
)

type pane int

const (
	paneTree pane = iota
	paneBoard
)

type boardMode int

const (
	modeBrowse boardMode = iota
	modeRename
	modeSettings
	modeResults
)

const (
	fieldExtensions = iota
	fieldIgnore
	fieldInterval
	fieldFinal
	fieldModernisation
	settingsFieldCount
)

// clipboardWrite is replaced in tests.
var clipboardWrite = clipboard.WriteAll

// ResultsReadyStatus is shown when results arrive while an editor is open.
const ResultsReadyStatus = "Results ready, press v"

type analysisDoneMsg struct {
	requestID string
	resp      m.AnalysisResponse
	err       error
}

// boardSlot is one selectable line of the board pane. item is -1 on a bucket
// header; bucket is NoBucket on the open board area.
type boardSlot struct {
	bucket m.BucketID
	item   int
}

type boardModel struct {
	ctx     context.Context
	session Session
	keys    keyMap
	help    help.Model
	spinner spinner.Model
	rename  textinput.Model
	fields  [fieldFinal]textinput.Model
	flags   [settingsFieldCount - fieldFinal]bool
	results viewport.Model

	focus         pane
	mode          boardMode
	treeCursor    int
	slotCursor    int
	settingsFocus int
	renaming      m.BucketID
	pending       string
	status        string
	width         int
	height        int
}

func newBoardModel(ctx context.Context, session Session) *boardModel {
	b := &boardModel{
		ctx:     ctx,
		session: session,
		keys:    newKeyMap(),
		help:    help.New(),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		rename:  textinput.New(),
		results: viewport.New(80, 20),
	}

	b.rename.Prompt = "Bucket name: "
	b.rename.CharLimit = 120

	placeholders := [fieldFinal]string{"js,py,html,css", "node_modules,dist", "10"}
	for i := range b.fields {
		b.fields[i] = textinput.New()
		b.fields[i].Placeholder = placeholders[i]
	}

	return b
}

func (b *boardModel) Init() tea.Cmd {
	return nil
}

func (b *boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width, b.height = msg.Width, msg.Height
		b.help.Width = msg.Width
		b.results.Width = msg.Width
		b.results.Height = max(msg.Height-3, 1)

		return b, nil

	case spinner.TickMsg:
		if !b.session.InFlight() {
			return b, nil
		}

		var cmd tea.Cmd
		b.spinner, cmd = b.spinner.Update(msg)

		return b, cmd

	case analysisDoneMsg:
		b.finishAnalysis(msg)
		return b, nil

	case tea.KeyMsg:
		switch b.mode {
		case modeRename:
			return b, b.updateRename(msg)
		case modeSettings:
			return b, b.updateSettings(msg)
		case modeResults:
			return b, b.updateResults(msg)
		default:
			return b, b.updateBrowse(msg)
		}
	}

	return b, nil
}

//nolint:cyclop // one case per key binding
func (b *boardModel) updateBrowse(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, b.keys.quit):
		return tea.Quit
	case key.Matches(msg, b.keys.focus):
		b.focus = 1 - b.focus
	case key.Matches(msg, b.keys.up):
		b.move(-1)
	case key.Matches(msg, b.keys.down):
		b.move(1)
	case key.Matches(msg, b.keys.cancel):
		if b.session.Held() != "" {
			b.session.Release()
			b.status = "Drag cancelled"
		}
	case key.Matches(msg, b.keys.pickUp):
		if b.focus == paneTree {
			b.pickUp()
		}
	case key.Matches(msg, b.keys.drop):
		if b.focus == paneTree {
			b.pickUp()
		} else {
			b.drop()
		}
	case key.Matches(msg, b.keys.create):
		id := b.session.CreateBucket()
		b.focus = paneBoard
		b.selectBucket(id)
		b.status = "Bucket created"
	case key.Matches(msg, b.keys.rename):
		b.startRename()
	case key.Matches(msg, b.keys.remove):
		b.removeItem()
	case key.Matches(msg, b.keys.delete):
		b.removeBucket()
	case key.Matches(msg, b.keys.back):
		b.scroll(m.ScrollBack)
	case key.Matches(msg, b.keys.forward):
		b.scroll(m.ScrollForward)
	case key.Matches(msg, b.keys.settings):
		b.openSettings()
	case key.Matches(msg, b.keys.analyze):
		return b.startAnalysis()
	case key.Matches(msg, b.keys.results):
		if doc, ok := b.session.Results(); ok {
			b.showResults(doc)
		} else {
			b.status = "No results yet"
		}
	case key.Matches(msg, b.keys.copy):
		b.copyResults()
	}

	return nil
}

func (b *boardModel) move(delta int) {
	if b.focus == paneTree {
		b.treeCursor = clampIndex(b.treeCursor+delta, len(b.session.Rows()))
		return
	}

	b.slotCursor = clampIndex(b.slotCursor+delta, len(b.slots()))
}

func (b *boardModel) pickUp() {
	if err := b.session.PickUp(b.treeCursor); err != nil {
		b.status = err.Error()
		return
	}

	b.focus = paneBoard
	b.status = fmt.Sprintf("Picked up %s", b.session.Held())
}

func (b *boardModel) drop() {
	slot := b.currentSlot()

	id, err := b.session.DropHeld(slot.bucket)
	if err != nil {
		b.status = err.Error()
		return
	}

	b.selectBucket(id)
	b.status = fmt.Sprintf("Dropped into %s", b.bucketName(id))
}

func (b *boardModel) startRename() {
	slot := b.currentSlot()
	if slot.bucket == m.NoBucket {
		b.status = "Select a bucket to rename"
		return
	}

	b.renaming = slot.bucket
	b.rename.SetValue(b.bucketName(slot.bucket))
	b.rename.CursorEnd()
	b.rename.Focus()
	b.mode = modeRename
}

func (b *boardModel) updateRename(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		b.rename.Blur()
		b.mode = modeBrowse

		return nil
	case tea.KeyEnter:
		b.rename.Blur()
		b.mode = modeBrowse

		if err := b.session.RenameBucket(b.renaming, b.rename.Value()); err != nil {
			b.status = err.Error()
		} else {
			b.status = "Bucket renamed"
		}

		return nil
	}

	var cmd tea.Cmd
	b.rename, cmd = b.rename.Update(msg)

	return cmd
}

func (b *boardModel) removeItem() {
	slot := b.currentSlot()
	if slot.item < 0 {
		b.status = "Select an item to remove"
		return
	}

	if err := b.session.RemoveItem(slot.bucket, slot.item); err != nil {
		b.status = err.Error()
		return
	}

	b.slotCursor = clampIndex(b.slotCursor, len(b.slots()))
	b.status = "Item removed"
}

func (b *boardModel) removeBucket() {
	slot := b.currentSlot()
	if slot.bucket == m.NoBucket {
		return
	}

	if err := b.session.RemoveBucket(slot.bucket); err != nil {
		b.status = err.Error()
		return
	}

	b.slotCursor = clampIndex(b.slotCursor, len(b.slots()))
	b.status = "Bucket deleted"
}

func (b *boardModel) scroll(direction m.ScrollDirection) {
	slot := b.currentSlot()
	if slot.bucket == m.NoBucket {
		return
	}

	if err := b.session.ScrollBucket(slot.bucket, direction); err != nil {
		b.status = err.Error()
		return
	}

	if slot.item >= 0 {
		b.selectBucket(slot.bucket)
	}
}

func (b *boardModel) openSettings() {
	form := b.session.OpenSettings()

	b.fields[fieldExtensions].SetValue(form.FileExtensions)
	b.fields[fieldIgnore].SetValue(form.IgnorePaths)
	b.fields[fieldInterval].SetValue(form.SupersummaryInterval)
	b.flags[fieldFinal-fieldFinal] = form.GenerateFinalSummary
	b.flags[fieldModernisation-fieldFinal] = form.GenerateModernisationSummary
	b.settingsFocus = fieldExtensions
	b.focusField()
	b.mode = modeSettings
}

func (b *boardModel) focusField() {
	for i := range b.fields {
		if i == b.settingsFocus {
			b.fields[i].Focus()
		} else {
			b.fields[i].Blur()
		}
	}
}

func (b *boardModel) settingsForm() m.SettingsForm {
	return m.SettingsForm{
		FileExtensions:               b.fields[fieldExtensions].Value(),
		IgnorePaths:                  b.fields[fieldIgnore].Value(),
		SupersummaryInterval:         b.fields[fieldInterval].Value(),
		GenerateFinalSummary:         b.flags[fieldFinal-fieldFinal],
		GenerateModernisationSummary: b.flags[fieldModernisation-fieldFinal],
	}
}

func (b *boardModel) updateSettings(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		b.session.CloseSettings()
		b.mode = modeBrowse
		b.status = "Settings unchanged"

		return nil
	case "enter":
		err := b.session.SaveSettings(b.settingsForm())

		b.status = b.session.Notice()
		if err == nil {
			b.mode = modeBrowse
		}

		return nil
	case "tab", "down":
		b.settingsFocus = (b.settingsFocus + 1) % settingsFieldCount
		b.focusField()

		return nil
	case "shift+tab", "up":
		b.settingsFocus = (b.settingsFocus + settingsFieldCount - 1) % settingsFieldCount
		b.focusField()

		return nil
	}

	if b.settingsFocus >= fieldFinal {
		if key.Matches(msg, b.keys.pickUp) {
			b.flags[b.settingsFocus-fieldFinal] = !b.flags[b.settingsFocus-fieldFinal]
		}

		return nil
	}

	var cmd tea.Cmd
	b.fields[b.settingsFocus], cmd = b.fields[b.settingsFocus].Update(msg)

	return cmd
}

func (b *boardModel) startAnalysis() tea.Cmd {
	job, err := b.session.BeginAnalysis()
	if err != nil {
		b.status = b.session.Notice()
		if b.status == "" {
			b.status = err.Error()
		}

		return nil
	}

	b.status = ""
	b.pending = job.RequestID()

	return tea.Batch(b.spinner.Tick, runAnalysis(b.ctx, job))
}

func runAnalysis(ctx context.Context, job AnalysisJob) tea.Cmd {
	return func() tea.Msg {
		resp, err := job.Send(ctx)
		return analysisDoneMsg{requestID: job.RequestID(), resp: resp, err: err}
	}
}

// finishAnalysis applies the outcome of the pending job. Completions of
// older jobs are dropped.
func (b *boardModel) finishAnalysis(msg analysisDoneMsg) {
	if msg.requestID != b.pending {
		slog.Debug("dropping stale analysis result", "request_id", msg.requestID, "pending", b.pending)
		return
	}

	b.pending = ""
	b.session.FinishAnalysis(msg.resp, msg.err)
	b.status = b.session.Notice()

	if msg.err != nil {
		return
	}

	doc, ok := b.session.Results()
	if !ok {
		return
	}

	if b.mode == modeBrowse || b.mode == modeResults {
		b.showResults(doc)
		return
	}

	b.status = ResultsReadyStatus
}

func (b *boardModel) showResults(doc m.Document) {
	b.results.SetContent(renderDocument(doc, b.results.Width))
	b.results.GotoTop()
	b.mode = modeResults
}

func (b *boardModel) updateResults(msg tea.KeyMsg) tea.Cmd {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return tea.Quit
	case key.Matches(msg, b.keys.cancel, b.keys.quit, b.keys.results):
		b.mode = modeBrowse
		return nil
	case key.Matches(msg, b.keys.copy):
		b.copyResults()
		return nil
	}

	var cmd tea.Cmd
	b.results, cmd = b.results.Update(msg)

	return cmd
}

func (b *boardModel) copyResults() {
	doc, ok := b.session.Results()
	if !ok {
		b.status = "No results yet"
		return
	}

	if err := clipboardWrite(doc.Markdown()); err != nil {
		slog.Debug("clipboard write failed", "error", err)
		b.status = "Clipboard unavailable"

		return
	}

	b.status = "Results copied to clipboard"
}

func (b *boardModel) slots() []boardSlot {
	var slots []boardSlot

	for _, bucket := range b.session.Buckets() {
		slots = append(slots, boardSlot{bucket: bucket.ID, item: -1})

		offset := 0
		if bucket.Scrollable {
			offset = bucket.Offset
		}

		for i := range bucket.Visible() {
			slots = append(slots, boardSlot{bucket: bucket.ID, item: offset + i})
		}
	}

	return append(slots, boardSlot{bucket: m.NoBucket, item: -1})
}

func (b *boardModel) currentSlot() boardSlot {
	slots := b.slots()
	b.slotCursor = clampIndex(b.slotCursor, len(slots))

	return slots[b.slotCursor]
}

func (b *boardModel) selectBucket(id m.BucketID) {
	for i, slot := range b.slots() {
		if slot.bucket == id && slot.item < 0 {
			b.slotCursor = i
			return
		}
	}
}

func (b *boardModel) bucketName(id m.BucketID) string {
	for _, bucket := range b.session.Buckets() {
		if bucket.ID == id {
			return bucket.Name
		}
	}

	return ""
}

func (b *boardModel) View() string {
	switch b.mode {
	case modeResults:
		return titleStyle.Render("Analysis results") + "\n" + b.results.View() + "\n" +
			subtleStyle.Render("↑/↓ scroll • y copy • esc back") + "\n" + b.statusView()
	case modeSettings:
		return b.settingsView()
	}

	width := b.width
	if width <= 0 {
		width = 100
	}

	height := b.height
	if height <= 0 {
		height = 30
	}

	paneWidth := max(width/2-4, 20)
	paneHeight := max(height-8, 5)

	treeStyle, boardStyle := paneStyle, paneStyle
	if b.focus == paneTree {
		treeStyle = activePane
	} else {
		boardStyle = activePane
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		treeStyle.Width(paneWidth).Height(paneHeight).Render(b.treeView(paneHeight)),
		boardStyle.Width(paneWidth).Height(paneHeight).Render(b.boardView(paneHeight)),
	)

	header := titleStyle.Render("treesummary") + "  " +
		subtleStyle.Render(fmt.Sprintf("%d bucket(s)", len(b.session.Buckets())))

	return header + "\n" + body + "\n" + b.statusView() + "\n" + b.help.View(b.keys)
}

func (b *boardModel) treeView(height int) string {
	rows := b.session.Rows()
	held := b.session.Held()
	lines := make([]string, 0, len(rows))

	for i, row := range rows {
		line := renderTreeRow(row)

		switch {
		case i == b.treeCursor && b.focus == paneTree:
			line = cursorStyle.Render(line)
		case held != "" && row.FullPath == held:
			line = heldStyle.Render(line)
		case row.IsDir:
			line = headingStyle.Render(line)
		}

		lines = append(lines, line)
	}

	return strings.Join(window(lines, b.treeCursor, height), "\n")
}

func (b *boardModel) boardView(height int) string {
	buckets := b.session.Buckets()
	slots := b.slots()
	lines := make([]string, 0, len(slots))
	byID := make(map[m.BucketID]m.BucketState, len(buckets))

	for _, bucket := range buckets {
		byID[bucket.ID] = bucket
	}

	for i, slot := range slots {
		var line string

		bucket := byID[slot.bucket]

		switch {
		case slot.bucket == m.NoBucket:
			line = subtleStyle.Render("+ drop here for a new bucket")
		case slot.item < 0:
			line = fmt.Sprintf("%s (%d)", bucket.Name, len(bucket.Items))
			if len(bucket.Controls) > 0 {
				line += " " + controlsStyle.Render(fmt.Sprintf("◀ %d-%d of %d ▶",
					bucket.Offset+1, bucket.Offset+len(bucket.Visible()), len(bucket.Items)))
			}
		default:
			line = "  • " + string(bucket.Items[slot.item])
		}

		if i == b.slotCursor && b.focus == paneBoard {
			line = cursorStyle.Render(line)
		} else if slot.item < 0 && slot.bucket != m.NoBucket {
			line = headingStyle.Render(line)
		}

		lines = append(lines, line)
	}

	return strings.Join(window(lines, b.slotCursor, height), "\n")
}

func (b *boardModel) statusView() string {
	var parts []string

	if b.session.InFlight() {
		parts = append(parts, b.spinner.View()+" Analyzing...")
	}

	if held := b.session.Held(); held != "" {
		parts = append(parts, heldStyle.Render("Holding "+string(held)))
	}

	if b.mode == modeRename {
		parts = append(parts, b.rename.View())
	}

	if b.status != "" {
		style := subtleStyle
		if b.status == b.session.Notice() {
			style = noticeStyle
		}

		parts = append(parts, style.Render(b.status))
	}

	return strings.Join(parts, "  ")
}

func (b *boardModel) settingsView() string {
	labels := [settingsFieldCount]string{
		"File extensions",
		"Ignore paths",
		"Supersummary interval",
		"Generate final summary",
		"Generate modernisation summary",
	}

	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Analysis settings"))
	sb.WriteString("\n\n")

	for i := 0; i < settingsFieldCount; i++ {
		marker := "  "
		if i == b.settingsFocus {
			marker = "> "
		}

		if i < fieldFinal {
			fmt.Fprintf(&sb, "%s%-24s %s\n", marker, labels[i]+":", b.fields[i].View())
			continue
		}

		check := "[ ]"
		if b.flags[i-fieldFinal] {
			check = "[x]"
		}

		fmt.Fprintf(&sb, "%s%s %s\n", marker, check, labels[i])
	}

	sb.WriteString("\n")
	sb.WriteString(subtleStyle.Render("enter save • esc cancel • tab next • space toggle"))
	sb.WriteString("\n")
	sb.WriteString(b.statusView())

	return sb.String()
}

// window returns at most height lines around cursor.
func window(lines []string, cursor, height int) []string {
	if height <= 0 || len(lines) <= height {
		return lines
	}

	start := cursor - height/2
	start = max(0, min(start, len(lines)-height))

	return lines[start : start+height]
}

func clampIndex(i, n int) int {
	if n <= 0 {
		return 0
	}

	return max(0, min(i, n-1))
}
