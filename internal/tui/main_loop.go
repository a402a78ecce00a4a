package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Baconcat1912/encryptify/internal/config"
	"github.com/Baconcat1912/encryptify/internal/crypto"
	"github.com/Baconcat1912/encryptify/internal/service"
	"github.com/Baconcat1912/encryptify/internal/workers"
	"github.com/Baconcat1912/encryptify/models"
)

type screen int

const (
	screenMenu screen = iota
	screenJobForm
	screenConfirm
	screenRunning
	screenReport
	screenHistory
	screenReverseForm
)

type jobKind int

const (
	jobFile jobKind = iota
	jobFolder
)

type mainModel struct {
	ctx      context.Context
	services *service.Services
	runner   *workers.Runner
	defaults config.AppDefaults

	buildInfo     models.AppBuildInfo
	showBuildInfo bool

	screen    screen
	menuIdx   int
	menuItems []string

	// Job form state.
	kind       jobKind
	pathInput  textinput.Model
	passInput  textinput.Model
	iterInput  textinput.Model
	formFocus  int
	formErr    string
	algorithms []crypto.Algorithm
	algIdx     int

	// Staged job, filled when the form is submitted and consumed after
	// the confirmation screen.
	stagedPath      string
	stagedAlgorithm string
	stagedCreds     models.Credentials

	// Confirmation re-entry state.
	confirmPass  textinput.Model
	confirmIter  textinput.Model
	confirmFocus int
	confirmErr   string

	spinner      spinner.Model
	runningLabel string

	// Last finished run, shown on the report screen.
	lastEntry  models.HistoryEntry
	lastReport *service.FolderReport
	lastErr    error

	// History browser state.
	entries []models.HistoryEntry
	histIdx int
	status  string
	errMsg  string

	// Reversal state.
	reverseEntry models.HistoryEntry
	reverseRoot  textinput.Model
	reversePass  textinput.Model
	reverseIter  textinput.Model
	reverseFocus int
	reverseErr   string

	quitByUser bool
}

func newMainModel(ctx context.Context, services *service.Services, runner *workers.Runner, defaults config.AppDefaults, buildInfo models.AppBuildInfo) mainModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return mainModel{
		ctx:       ctx,
		services:  services,
		runner:    runner,
		defaults:  defaults,
		buildInfo: buildInfo,
		menuItems: []string{
			"Encrypt / decrypt a file",
			"Encrypt / decrypt a folder",
			"History",
			"Quit",
		},
		algorithms: crypto.ListRegistered(),
		spinner:    s,
	}
}

func (m mainModel) Init() tea.Cmd {
	return nil
}

func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case fileDoneMsg:
		m.screen = screenReport
		m.lastEntry = msg.entry
		m.lastReport = nil
		m.lastErr = msg.err
		return m, nil
	case folderDoneMsg:
		m.screen = screenReport
		m.lastEntry = models.HistoryEntry{}
		m.lastReport = msg.report
		m.lastErr = msg.err
		return m, nil
	case reverseDoneMsg:
		m.screen = screenReport
		m.lastEntry = msg.entry
		m.lastReport = nil
		m.lastErr = msg.err
		return m, nil
	case historyClearedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.entries = nil
		m.histIdx = 0
		m.status = "History cleared"
		m.errMsg = ""
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "copy failed: " + msg.err.Error()
			return m, nil
		}
		m.status = "Copied"
		return m, nil
	case spinner.TickMsg:
		if m.screen != screenRunning {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInputs(msg)
	}

	if keyMsg.String() == "ctrl+c" {
		m.quitByUser = true
		return m, tea.Quit
	}

	if m.showBuildInfo {
		if key.Matches(keyMsg, keys.esc) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	switch m.screen {
	case screenMenu:
		return m.updateMenu(keyMsg)
	case screenJobForm:
		return m.updateJobForm(keyMsg)
	case screenConfirm:
		return m.updateConfirm(keyMsg)
	case screenRunning:
		// The batch cannot be interrupted mid-file; keys are ignored.
		return m, nil
	case screenReport:
		return m.updateReport(keyMsg)
	case screenHistory:
		return m.updateHistory(keyMsg)
	case screenReverseForm:
		return m.updateReverseForm(keyMsg)
	}
	return m, nil
}

// updateInputs forwards non-key messages (blink ticks) to whichever text
// input currently has focus.
func (m mainModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.screen {
	case screenJobForm:
		switch m.formFocus {
		case 0:
			m.pathInput, cmd = m.pathInput.Update(msg)
		case 1:
			m.passInput, cmd = m.passInput.Update(msg)
		case 2:
			m.iterInput, cmd = m.iterInput.Update(msg)
		}
	case screenConfirm:
		if m.confirmFocus == 0 {
			m.confirmPass, cmd = m.confirmPass.Update(msg)
		} else {
			m.confirmIter, cmd = m.confirmIter.Update(msg)
		}
	case screenReverseForm:
		switch m.reverseFocus {
		case 0:
			m.reverseRoot, cmd = m.reverseRoot.Update(msg)
		case 1:
			m.reversePass, cmd = m.reversePass.Update(msg)
		case 2:
			m.reverseIter, cmd = m.reverseIter.Update(msg)
		}
	}
	return m, cmd
}

// ── Menu ─────────────────────────────────────────────────────────────────────

func (m mainModel) updateMenu(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.version):
		m.showBuildInfo = true
		return m, nil
	case key.Matches(keyMsg, keys.up):
		if m.menuIdx > 0 {
			m.menuIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.menuIdx < len(m.menuItems)-1 {
			m.menuIdx++
		}
	case key.Matches(keyMsg, keys.history):
		m.openHistory()
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		switch m.menuIdx {
		case 0:
			m.startJobForm(jobFile)
		case 1:
			m.startJobForm(jobFolder)
		case 2:
			m.openHistory()
		case 3:
			m.quitByUser = true
			return m, tea.Quit
		}
		return m, nil
	}
	return m, nil
}

// ── Job form ─────────────────────────────────────────────────────────────────

func (m *mainModel) startJobForm(kind jobKind) {
	m.kind = kind
	m.formErr = ""
	m.formFocus = 0

	path := textinput.New()
	if kind == jobFile {
		path.Placeholder = "path to file"
	} else {
		path.Placeholder = "path to folder"
	}
	path.Width = 50
	path.Focus()

	pass := textinput.New()
	pass.Placeholder = "passphrase"
	pass.EchoMode = textinput.EchoPassword
	pass.Width = 50

	iter := textinput.New()
	iter.Placeholder = "iterations"
	iter.SetValue(strconv.Itoa(m.defaults.Iterations))
	iter.Width = 12

	m.pathInput = path
	m.passInput = pass
	m.iterInput = iter

	m.algIdx = 0
	last := m.services.Settings.LastAlgorithm(m.ctx, m.defaults.Algorithm)
	for i, alg := range m.algorithms {
		if alg.ID == last {
			m.algIdx = i
			break
		}
	}

	m.screen = screenJobForm
}

func (m mainModel) updateJobForm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.screen = screenMenu
		return m, nil
	case key.Matches(keyMsg, keys.tab):
		m.blurJobForm()
		m.formFocus = (m.formFocus + 1) % 4
		m.focusJobForm()
		return m, nil
	case key.Matches(keyMsg, keys.backtab):
		m.blurJobForm()
		m.formFocus = (m.formFocus + 3) % 4
		m.focusJobForm()
		return m, nil
	case key.Matches(keyMsg, keys.left), key.Matches(keyMsg, keys.right):
		// The algorithm row is a picker, not an input.
		if m.formFocus == 3 {
			if key.Matches(keyMsg, keys.left) && m.algIdx > 0 {
				m.algIdx--
			}
			if key.Matches(keyMsg, keys.right) && m.algIdx < len(m.algorithms)-1 {
				m.algIdx++
			}
			return m, nil
		}
	case key.Matches(keyMsg, keys.enter):
		return m.submitJobForm()
	}

	var cmd tea.Cmd
	switch m.formFocus {
	case 0:
		m.pathInput, cmd = m.pathInput.Update(keyMsg)
	case 1:
		m.passInput, cmd = m.passInput.Update(keyMsg)
	case 2:
		m.iterInput, cmd = m.iterInput.Update(keyMsg)
	}
	return m, cmd
}

func (m *mainModel) blurJobForm() {
	m.pathInput.Blur()
	m.passInput.Blur()
	m.iterInput.Blur()
}

func (m *mainModel) focusJobForm() {
	switch m.formFocus {
	case 0:
		m.pathInput.Focus()
	case 1:
		m.passInput.Focus()
	case 2:
		m.iterInput.Focus()
	}
}

func (m mainModel) submitJobForm() (tea.Model, tea.Cmd) {
	path := strings.TrimSpace(m.pathInput.Value())
	if path == "" {
		m.formErr = "path is required"
		return m, nil
	}

	pass := m.passInput.Value()
	if pass == "" {
		m.formErr = "passphrase is required"
		return m, nil
	}

	iterations, err := strconv.Atoi(strings.TrimSpace(m.iterInput.Value()))
	if err != nil || iterations <= 0 {
		m.formErr = "iterations must be a positive number"
		return m, nil
	}

	m.stagedPath = path
	m.stagedAlgorithm = m.algorithms[m.algIdx].ID
	m.stagedCreds = models.Credentials{Passphrase: pass, Iterations: iterations}
	m.formErr = ""
	m.startConfirm()
	return m, nil
}

// ── Confirmation ─────────────────────────────────────────────────────────────

func (m *mainModel) startConfirm() {
	pass := textinput.New()
	pass.Placeholder = "repeat passphrase"
	pass.EchoMode = textinput.EchoPassword
	pass.Width = 50
	pass.Focus()

	iter := textinput.New()
	iter.Placeholder = "repeat iterations"
	iter.Width = 12

	m.confirmPass = pass
	m.confirmIter = iter
	m.confirmFocus = 0
	m.confirmErr = ""
	m.screen = screenConfirm
}

func (m mainModel) updateConfirm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.screen = screenMenu
		return m, nil
	case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.backtab):
		if m.confirmFocus == 0 {
			m.confirmPass.Blur()
			m.confirmIter.Focus()
			m.confirmFocus = 1
		} else {
			m.confirmIter.Blur()
			m.confirmPass.Focus()
			m.confirmFocus = 0
		}
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		iterations, err := strconv.Atoi(strings.TrimSpace(m.confirmIter.Value()))
		if err != nil {
			m.confirmErr = "iterations must be a number"
			return m, nil
		}

		prompter := staticPrompter{
			creds: models.Credentials{
				Passphrase: m.confirmPass.Value(),
				Iterations: iterations,
			},
			ok: true,
		}

		m.screen = screenRunning
		if m.kind == jobFile {
			m.runningLabel = "Processing file..."
			return m, tea.Batch(m.spinner.Tick, m.cmdRunFile(prompter))
		}
		m.runningLabel = "Processing folder..."
		return m, tea.Batch(m.spinner.Tick, m.cmdRunFolder(prompter))
	}

	var cmd tea.Cmd
	if m.confirmFocus == 0 {
		m.confirmPass, cmd = m.confirmPass.Update(keyMsg)
	} else {
		m.confirmIter, cmd = m.confirmIter.Update(keyMsg)
	}
	return m, cmd
}

// ── Report ───────────────────────────────────────────────────────────────────

func (m mainModel) updateReport(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.enter), key.Matches(keyMsg, keys.quit):
		m.screen = screenMenu
		m.lastErr = nil
		m.lastReport = nil
	case key.Matches(keyMsg, keys.history):
		m.openHistory()
	}
	return m, nil
}

// ── History ──────────────────────────────────────────────────────────────────

func (m *mainModel) openHistory() {
	m.entries = m.services.History.List()
	if m.histIdx >= len(m.entries) {
		m.histIdx = len(m.entries) - 1
	}
	if m.histIdx < 0 {
		m.histIdx = 0
	}
	m.status = ""
	m.errMsg = ""
	m.screen = screenHistory
}

func (m mainModel) currentEntry() (models.HistoryEntry, bool) {
	if len(m.entries) == 0 || m.histIdx < 0 || m.histIdx >= len(m.entries) {
		return models.HistoryEntry{}, false
	}
	return m.entries[m.histIdx], true
}

func (m mainModel) updateHistory(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.quit):
		m.screen = screenMenu
	case key.Matches(keyMsg, keys.up):
		if m.histIdx > 0 {
			m.histIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.histIdx < len(m.entries)-1 {
			m.histIdx++
		}
	case key.Matches(keyMsg, keys.reverse):
		entry, ok := m.currentEntry()
		if !ok {
			m.status = "Nothing to reverse"
			return m, nil
		}
		m.startReverseForm(entry)
	case key.Matches(keyMsg, keys.copy):
		entry, ok := m.currentEntry()
		if !ok {
			m.status = "Nothing to copy"
			return m, nil
		}
		return m, func() tea.Msg {
			return copiedMsg{err: clipboard.WriteAll(entry.FileName)}
		}
	case key.Matches(keyMsg, keys.delete):
		return m, m.cmdClearHistory()
	}
	return m, nil
}

// ── Reversal ─────────────────────────────────────────────────────────────────

func (m *mainModel) startReverseForm(entry models.HistoryEntry) {
	m.reverseEntry = entry

	root := textinput.New()
	if entry.Action == models.ActionProcessedFolder {
		root.Placeholder = "folder containing " + entry.FileName
	} else {
		root.Placeholder = "folder containing the file"
	}
	root.SetValue(".")
	root.Width = 50
	root.Focus()

	pass := textinput.New()
	pass.Placeholder = "passphrase"
	pass.EchoMode = textinput.EchoPassword
	pass.Width = 50

	iter := textinput.New()
	iter.Placeholder = "iterations"
	iter.SetValue(strconv.Itoa(m.defaults.Iterations))
	iter.Width = 12

	m.reverseRoot = root
	m.reversePass = pass
	m.reverseIter = iter
	m.reverseFocus = 0
	m.reverseErr = ""
	m.screen = screenReverseForm
}

func (m mainModel) updateReverseForm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.screen = screenHistory
		return m, nil
	case key.Matches(keyMsg, keys.tab):
		m.blurReverseForm()
		m.reverseFocus = (m.reverseFocus + 1) % 3
		m.focusReverseForm()
		return m, nil
	case key.Matches(keyMsg, keys.backtab):
		m.blurReverseForm()
		m.reverseFocus = (m.reverseFocus + 2) % 3
		m.focusReverseForm()
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		root := strings.TrimSpace(m.reverseRoot.Value())
		if root == "" {
			m.reverseErr = "folder is required"
			return m, nil
		}
		pass := m.reversePass.Value()
		if pass == "" {
			m.reverseErr = "passphrase is required"
			return m, nil
		}
		iterations, err := strconv.Atoi(strings.TrimSpace(m.reverseIter.Value()))
		if err != nil || iterations <= 0 {
			m.reverseErr = "iterations must be a positive number"
			return m, nil
		}

		prompter := staticPrompter{
			creds: models.Credentials{Passphrase: pass, Iterations: iterations},
			ok:    true,
		}

		m.screen = screenRunning
		m.runningLabel = "Reversing..."
		return m, tea.Batch(m.spinner.Tick, m.cmdReverse(m.reverseEntry, root, prompter))
	}

	var cmd tea.Cmd
	switch m.reverseFocus {
	case 0:
		m.reverseRoot, cmd = m.reverseRoot.Update(keyMsg)
	case 1:
		m.reversePass, cmd = m.reversePass.Update(keyMsg)
	case 2:
		m.reverseIter, cmd = m.reverseIter.Update(keyMsg)
	}
	return m, cmd
}

func (m *mainModel) blurReverseForm() {
	m.reverseRoot.Blur()
	m.reversePass.Blur()
	m.reverseIter.Blur()
}

func (m *mainModel) focusReverseForm() {
	switch m.reverseFocus {
	case 0:
		m.reverseRoot.Focus()
	case 1:
		m.reversePass.Focus()
	case 2:
		m.reverseIter.Focus()
	}
}

// ── Commands ─────────────────────────────────────────────────────────────────

// Batches run on the single-goroutine runner so two of them can never
// overlap, even if the UI somehow dispatched a second one.

func (m mainModel) cmdRunFile(prompter staticPrompter) tea.Cmd {
	ctx := m.ctx
	svc := m.services
	runner := m.runner
	path, algorithm, creds := m.stagedPath, m.stagedAlgorithm, m.stagedCreds

	return func() tea.Msg {
		var entry models.HistoryEntry
		var err error
		<-runner.Do(func() {
			entry, err = svc.Batch.ProcessFile(ctx, path, algorithm, creds, prompter)
		})
		if err == nil {
			rememberAlgorithm(ctx, svc, algorithm)
		}
		return fileDoneMsg{entry: entry, err: err}
	}
}

func (m mainModel) cmdRunFolder(prompter staticPrompter) tea.Cmd {
	ctx := m.ctx
	svc := m.services
	runner := m.runner
	root, algorithm, creds := m.stagedPath, m.stagedAlgorithm, m.stagedCreds

	return func() tea.Msg {
		var report *service.FolderReport
		var err error
		<-runner.Do(func() {
			report, err = svc.Batch.ProcessFolder(ctx, root, algorithm, creds, prompter)
		})
		if err == nil {
			rememberAlgorithm(ctx, svc, algorithm)
		}
		return folderDoneMsg{report: report, err: err}
	}
}

func (m mainModel) cmdReverse(entry models.HistoryEntry, root string, prompter staticPrompter) tea.Cmd {
	ctx := m.ctx
	svc := m.services
	runner := m.runner

	return func() tea.Msg {
		var reversal models.HistoryEntry
		var err error
		<-runner.Do(func() {
			reversal, err = svc.History.Reverse(ctx, entry, root, prompter)
		})
		return reverseDoneMsg{entry: reversal, err: err}
	}
}

func (m mainModel) cmdClearHistory() tea.Cmd {
	ctx := m.ctx
	svc := m.services

	return func() tea.Msg {
		return historyClearedMsg{err: svc.History.Clear(ctx)}
	}
}

func rememberAlgorithm(ctx context.Context, svc *service.Services, algorithm string) {
	// Best-effort preference write; the batch already succeeded.
	_ = svc.Settings.RememberAlgorithm(ctx, algorithm)
}

// ── Views ────────────────────────────────────────────────────────────────────

func (m mainModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}

	switch m.screen {
	case screenMenu:
		return m.viewMenu()
	case screenJobForm:
		return m.viewJobForm()
	case screenConfirm:
		return m.viewConfirm()
	case screenRunning:
		return renderPage("WORKING", m.spinner.View()+" "+m.runningLabel, "")
	case screenReport:
		return m.viewReport()
	case screenHistory:
		return m.viewHistory()
	case screenReverseForm:
		return m.viewReverseForm()
	}
	return renderPage("encryptify", "", "")
}

func (m mainModel) viewMenu() string {
	var b strings.Builder
	for i, item := range m.menuItems {
		cursor := " "
		if i == m.menuIdx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %d. %s\n", cursor, i+1, item))
	}

	return renderPage("ENCRYPTIFY", strings.TrimRight(b.String(), "\n"),
		"enter: select │ ↑/↓: navigate │ h: history │ v: about │ q: quit")
}

func (m mainModel) viewJobForm() string {
	title := "ENCRYPT / DECRYPT FILE"
	pathLabel := "File      "
	if m.kind == jobFolder {
		title = "ENCRYPT / DECRYPT FOLDER"
		pathLabel = "Folder    "
	}

	algorithm := m.algorithms[m.algIdx]
	algCell := "< " + algorithm.ID + " >"
	if m.formFocus != 3 {
		algCell = "  " + algorithm.ID
	}

	out := pathLabel + ": [ " + m.pathInput.View() + " ]\n"
	out += "Passphrase: [ " + m.passInput.View() + " ]\n"
	out += "Iterations: [ " + m.iterInput.View() + " ]\n"
	out += "Algorithm : " + algCell + "  " + helpStyle.Render(algorithm.Description) + "\n"
	out += "\nFiles ending in .enc are decrypted, everything else is encrypted."
	if m.formErr != "" {
		out += "\n\n" + errorStyle.Render("Error: "+m.formErr)
	}

	return renderPage(title, out,
		"tab: next field │ ←/→: algorithm │ enter: continue │ esc: back")
}

func (m mainModel) viewConfirm() string {
	target := m.stagedPath
	out := "About to process " + target + " and delete the originals.\n"
	out += "Repeat the passphrase and iteration count to continue.\n\n"
	out += "Passphrase: [ " + m.confirmPass.View() + " ]\n"
	out += "Iterations: [ " + m.confirmIter.View() + " ]"
	if m.confirmErr != "" {
		out += "\n\n" + errorStyle.Render("Error: "+m.confirmErr)
	}

	return renderPage("CONFIRM", out, "tab: next field │ enter: run │ esc: cancel")
}

func (m mainModel) viewReport() string {
	if m.lastErr != nil {
		return renderPage("RESULT",
			errorStyle.Render("Error: "+humanizeError(m.lastErr)),
			"esc/enter: menu")
	}

	if m.lastReport != nil {
		var b strings.Builder
		b.WriteString(fmt.Sprintf("Folder: %s\n", m.lastReport.Folder))
		b.WriteString(fmt.Sprintf("Succeeded: %d   Failed: %d\n\n", m.lastReport.Succeeded(), m.lastReport.Failed()))

		for _, outcome := range m.lastReport.Outcomes {
			if outcome.Err != nil {
				b.WriteString(fmt.Sprintf("FAIL %-40s %s\n", fitText(outcome.Path, 40), humanizeError(outcome.Err)))
			} else {
				b.WriteString(fmt.Sprintf("OK   %-40s %s\n", fitText(outcome.Path, 40), outcome.Entry.Action))
			}
		}
		return renderPage("FOLDER RESULT", strings.TrimRight(b.String(), "\n"), "esc/enter: menu │ h: history")
	}

	out := fmt.Sprintf("%s: %s\nAlgorithm: %s", m.lastEntry.Action, m.lastEntry.FileName, m.lastEntry.Algorithm)
	return renderPage("RESULT", out, "esc/enter: menu │ h: history")
}

func (m mainModel) viewHistory() string {
	if len(m.entries) == 0 {
		data := "No history yet"
		if m.status != "" {
			data = m.status
		}
		return renderPage("HISTORY", data, "esc: menu")
	}

	var b strings.Builder
	if m.status != "" {
		b.WriteString("Status: " + m.status + "\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Error: "+m.errMsg) + "\n")
	}
	if b.Len() > 0 {
		b.WriteString("\n")
	}

	b.WriteString("ID       │ Name                     │ Action           │ Algorithm\n")
	b.WriteString("─────────┼──────────────────────────┼──────────────────┼────────────\n")
	for i, entry := range m.entries {
		cursor := " "
		if i == m.histIdx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf(
			"%s%-8s │ %-24s │ %-16s │ %s\n",
			cursor,
			shortID(entry.ID),
			fitText(entry.FileName, 24),
			fitText(string(entry.Action), 16),
			entry.Algorithm,
		))
	}

	return renderPage("HISTORY", strings.TrimRight(b.String(), "\n"),
		"r: reverse │ c: copy name │ ctrl+d: clear │ ↑/↓: navigate │ esc: menu")
}

func (m mainModel) viewReverseForm() string {
	verb := "decrypt"
	if m.reverseEntry.Action == models.ActionDecrypted {
		verb = "encrypt"
	}
	if m.reverseEntry.Action == models.ActionProcessedFolder {
		verb = "re-process"
	}

	out := fmt.Sprintf("Will %s %q. Enter the folder it lives in and the credentials.\n\n", verb, m.reverseEntry.FileName)
	out += "Folder    : [ " + m.reverseRoot.View() + " ]\n"
	out += "Passphrase: [ " + m.reversePass.View() + " ]\n"
	out += "Iterations: [ " + m.reverseIter.View() + " ]"
	if m.reverseErr != "" {
		out += "\n\n" + errorStyle.Render("Error: "+m.reverseErr)
	}

	return renderPage("REVERSE", out, "tab: next field │ enter: run │ esc: back")
}
