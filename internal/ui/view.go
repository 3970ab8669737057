package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/barstock/internal/inventory"
)

const infoLifetime = 5 * time.Second

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text is already styled; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model.
func (m *Model) View() string {
	switch m.mode {
	case ModeNameForm:
		if m.nameForm != nil {
			return m.viewNameForm(m.menuHeader())
		}
	case ModeConfig:
		return m.viewMenu()
	case ModeConfirm:
		if m.returnMode == ModeConfig {
			return m.viewMenu()
		}
	}
	return m.viewInventory()
}

func (m *Model) viewInventory() string {
	snap := m.session.Snapshot()
	lines := make([]styledLine, 0, 16)
	lines = append(lines,
		styledLine{text: m.tabBar(snap), raw: true},
		styledLine{text: m.wellBar(snap), raw: true},
		styledLine{},
	)
	switch {
	case snap.CurrentWell() == nil:
		lines = append(lines, styledLine{text: "No wells in this tab. Press ctrl+o to add one.", style: styles.Empty})
	case len(m.products.Items) == 0:
		lines = append(lines, styledLine{text: "(empty well)", style: styles.Empty})
	default:
		m.syncViewport(m.products)
		entries := m.productEntries()
		qtyWidth := quantityWidth(entries)
		start := m.products.ViewportOffset
		for i := range m.products.Visible(m.maxVisibleProducts()) {
			idx := start + i
			if idx >= len(entries) {
				break
			}
			label := fmt.Sprintf("%*d × %s", qtyWidth, entries[idx].Quantity, entries[idx].Name)
			lines = append(lines, m.buildItemLine(label, idx, m.products, m.width))
		}
	}
	lines = append(lines, m.trailerLines()...)

	bottom := make([]styledLine, 0, 8)
	if m.mode == ModeInventory {
		bottom = append(bottom, m.suggestionLines()...)
	}
	bottom = append(bottom, m.statusLine(), styledLine{text: m.entryPrompt(), raw: true})

	lines = limitHeight(lines, m.height-len(bottom), m.width)
	lines = applyWidth(lines, m.width)
	lines = append(lines, applyWidth(bottom, m.width)...)
	return renderLines(lines)
}

func (m *Model) viewMenu() string {
	lines := make([]styledLine, 0, 16)
	if header := m.menuHeader(); header != "" {
		lines = append(lines, styledLine{text: header, style: styles.Header})
	}
	if current := m.currentLevel(); current != nil {
		m.syncViewport(current)
		if len(current.Items) == 0 {
			msg := "(no entries)"
			if current.Filter() != "" {
				msg = fmt.Sprintf("No matches for %q", current.Filter())
			}
			lines = append(lines, styledLine{text: msg, style: styles.Info})
		} else {
			start := current.ViewportOffset
			for i, item := range current.Visible(m.maxVisibleItems()) {
				lines = append(lines, m.buildItemLine(item.Label, start+i, current, m.width))
			}
		}
	}
	if m.loading && m.pendingLabel != "" {
		lines = append(lines, styledLine{text: fmt.Sprintf("Loading %s…", m.pendingLabel), style: styles.Loading})
	}
	lines = append(lines, m.trailerLines()...)
	lines = limitHeight(lines, m.height-2, m.width)
	lines = applyWidth(lines, m.width)

	prompt := m.filterPrompt()
	if m.mode == ModeConfirm {
		prompt = m.confirmPrompt()
	}
	bottom := applyWidth([]styledLine{m.statusLine(), {text: prompt, raw: true}}, m.width)
	lines = append(lines, bottom...)
	return renderLines(lines)
}

// trailerLines renders the info message and the key help footer.
func (m *Model) trailerLines() []styledLine {
	var lines []styledLine
	if m.catalogLoading && m.mode == ModeInventory {
		lines = append(lines, styledLine{text: "Loading catalog…", style: styles.Loading})
	}
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{}, styledLine{text: info, style: styles.Info})
	}
	if m.showFooter {
		lines = append(lines, styledLine{}, styledLine{text: m.help.ShortHelpView(m.keys.helpFor(m.mode)), raw: true})
	}
	return lines
}

func (m *Model) statusLine() styledLine {
	if m.errMsg == "" {
		return styledLine{}
	}
	return styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
}

func (m *Model) tabBar(snap inventory.State) string {
	parts := make([]string, 0, len(snap.Tabs))
	for _, tab := range snap.Tabs {
		style := styles.Tab
		if tab.ID == snap.CurrentTabID {
			style = styles.ActiveTab
		}
		parts = append(parts, style.Render(tab.Name))
	}
	return strings.Join(parts, " ")
}

func (m *Model) wellBar(snap inventory.State) string {
	tab := snap.CurrentTab()
	if tab == nil || len(tab.Wells) == 0 {
		return styles.Empty.Render("no wells")
	}
	parts := make([]string, 0, len(tab.Wells))
	for _, well := range tab.Wells {
		style := styles.Well
		if well.Name == snap.CurrentWellName {
			style = styles.ActiveWell
		}
		parts = append(parts, style.Render(fmt.Sprintf("%s (%d)", well.Name, len(well.Products))))
	}
	return strings.Join(parts, " ")
}

func (m *Model) suggestionLines() []styledLine {
	lines := make([]styledLine, 0, len(m.suggestions.Items))
	for i, item := range m.suggestions.Items {
		style := styles.Suggestion
		marker := "  "
		if i == m.suggestions.Index {
			style = styles.ActiveSuggestion
			marker = "› "
		}
		lines = append(lines, styledLine{text: marker + item, style: style})
	}
	return lines
}

// entryPrompt renders the product entry line for the inventory and quantity
// steps.
func (m *Model) entryPrompt() string {
	if m.mode == ModeConfirm {
		return m.confirmPrompt()
	}
	sign := styles.SignPlus.Render("+")
	if m.sign < 0 {
		sign = styles.SignMinus.Render("-")
	}
	if m.mode == ModeQuantity {
		return fmt.Sprintf("%s %s × %s", sign, m.pendingName, m.qtyInput.View())
	}
	return sign + " " + styles.FilterPrompt.Render("» ") + m.nameInput.View()
}

func (m *Model) confirmPrompt() string {
	if m.confirm == nil {
		return ""
	}
	return styles.Confirm.Render(m.confirm.Question + " [y/n]")
}

// buildItemLine constructs a single styledLine for a list entry. width is
// the target column width; when > 0 the text is padded so that the
// selected entry's background spans the full row.
func (m *Model) buildItemLine(label string, idx int, current *level, width int) styledLine {
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	if idx == current.Cursor {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
	}
	fullText := "▌ " + label
	if width > 0 {
		if pad := width - lipgloss.Width(fullText); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1,
	}
}

func quantityWidth(entries []inventory.ProductEntry) int {
	width := 1
	for _, e := range entries {
		if w := len(fmt.Sprint(e.Quantity)); w > width {
			width = w
		}
	}
	return width
}

func (m *Model) menuHeader() string {
	segments := make([]string, 0, len(m.stack))
	for _, l := range m.stack {
		if title := strings.TrimSpace(l.Title); title != "" {
			segments = append(segments, title)
		}
	}
	return strings.Join(segments, menuHeaderSeparator)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
		m.help.Width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.syncViewport(m.products)
	if current := m.currentLevel(); current != nil {
		m.syncViewport(current)
	}
	return nil
}

// maxVisibleItems returns how many menu entries fit, or -1 when the height
// is unknown.
func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := 2 + m.trailerRows()
	if m.menuHeader() != "" {
		used++
	}
	if m.loading && m.pendingLabel != "" {
		used++
	}
	return atLeastOne(m.height - used)
}

// maxVisibleProducts returns how many product rows fit, or -1 when the
// height is unknown.
func (m *Model) maxVisibleProducts() int {
	if m.height <= 0 {
		return -1
	}
	used := 3 + 2 + m.trailerRows()
	if m.mode == ModeInventory {
		used += len(m.suggestions.Items)
	}
	return atLeastOne(m.height - used)
}

func (m *Model) trailerRows() int {
	rows := 0
	if m.catalogLoading && m.mode == ModeInventory {
		rows++
	}
	if m.currentInfo() != "" {
		rows += 2
	}
	if m.showFooter {
		rows += 2
	}
	return rows
}

func atLeastOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(infoLifetime)
}

func (m *Model) clearInfo() {
	if m.infoMsg == "" {
		return
	}
	if !m.infoExpire.IsZero() && time.Now().Before(m.infoExpire) {
		return
	}
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		line.text = truncateText(line.text, width)
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

// truncateText shortens text to width terminal cells, ending with an
// ellipsis. ANSI sequences are preserved.
func truncateText(text string, width int) string {
	if width <= 0 || lipgloss.Width(text) <= width {
		return text
	}
	return truncate.StringWithTail(text, uint(width), "…")
}
