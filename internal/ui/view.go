package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const fallbackVisibleRows = 20

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.denied {
		return m.viewDenied()
	}
	if m.session.User() == nil {
		if m.loading {
			return m.viewLoading()
		}
		return m.render([]styledLine{
			{text: m.headerText(), style: m.styles.Header},
			{},
			{text: msgUserMissing, style: m.styles.Error},
		})
	}
	switch m.mode {
	case ModeForm:
		if m.form != nil {
			return m.viewForm()
		}
	case ModeConfirm:
		if m.pendingDelete != nil {
			return m.viewConfirm()
		}
	}
	return m.viewList()
}

func (m *Model) viewLoading() string {
	return m.render([]styledLine{
		{text: m.headerText(), style: m.styles.Header},
		{},
		{text: "Yuklanmoqda…", style: m.styles.Loading},
	})
}

func (m *Model) viewDenied() string {
	return m.render([]styledLine{
		{text: m.headerText(), style: m.styles.Header},
		{},
		{text: "Kirish taqiqlangan", style: m.styles.Title},
		{text: m.deniedMsg, style: m.styles.Error},
	})
}

func (m *Model) viewList() string {
	lines := make([]styledLine, 0, 16)
	lines = append(lines, styledLine{text: m.headerLine(), raw: true})
	lines = append(lines, styledLine{text: m.sessionLine(), style: m.styles.Muted})
	lines = append(lines, styledLine{text: m.search.View(), raw: true})
	lines = append(lines, styledLine{})

	rows := m.list.Rows
	if len(rows) == 0 {
		empty := "Kategoriyalar yo'q"
		if strings.TrimSpace(m.list.Filter) != "" {
			empty = "Hech narsa topilmadi"
		}
		lines = append(lines, styledLine{text: empty, style: m.styles.Muted})
	} else {
		offset := m.list.ViewportOffset
		maxVisible := m.maxVisibleRows()
		end := len(rows)
		if maxVisible > 0 && offset+maxVisible < end {
			end = offset + maxVisible
		}
		if offset < 0 {
			offset = 0
		}
		for i := offset; i < end; i++ {
			lines = append(lines, m.buildItemLine(rows[i].Label, i))
		}
	}

	if m.busy {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: "So'rov bajarilmoqda…", style: m.styles.Overlay})
	}
	if notice := m.currentNotice(); notice != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: notice, style: m.styles.Notice})
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{
			text:  "↑/↓ move  enter edit  ctrl+n new  ctrl+d delete  ctrl+t theme  esc quit",
			style: m.styles.Footer,
		})
	}
	return m.render(lines)
}

func (m *Model) viewForm() string {
	title := "Yangi kategoriya"
	if m.form.Editing() {
		title = "Kategoriyani tahrirlash"
	}
	lines := make([]styledLine, 0, 16)
	lines = append(lines, styledLine{text: m.headerLine(), raw: true})
	lines = append(lines, styledLine{text: title, style: m.styles.Title})
	lines = append(lines, styledLine{})
	for i := range m.form.inputs {
		labelStyle := m.styles.FormLabel
		if i == m.form.focused {
			labelStyle = m.styles.FormFocusedLabel
		}
		lines = append(lines, styledLine{text: fieldLabels[i], style: labelStyle})
		lines = append(lines, styledLine{text: "  " + m.form.inputs[i].View(), raw: true})
	}
	if m.form.Error() != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: m.form.Error(), style: m.styles.Error})
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{
			text:  "tab keyingi maydon  enter saqlash  esc bekor qilish",
			style: m.styles.Footer,
		})
	}
	return m.render(lines)
}

func (m *Model) viewConfirm() string {
	lines := []styledLine{
		{text: m.headerLine(), raw: true},
		{},
		{text: confirmQuestion, style: m.styles.Title},
		{text: categoryDisplayName(*m.pendingDelete), style: m.styles.SelectedItem},
		{},
		{text: "y ha   n yo'q", style: m.styles.Footer},
	}
	return m.render(lines)
}

// buildItemLine renders one category row; the cursor row carries the
// selected indicator and background.
func (m *Model) buildItemLine(label string, idx int) styledLine {
	indicator := "▌"
	lineStyle := m.styles.Item
	indicatorStyle := m.styles.ItemIndicator
	if idx == m.list.Cursor {
		indicatorStyle = m.styles.SelectedItemIndicator
		lineStyle = m.styles.SelectedItem
	}
	fullText := indicator + " " + label
	if m.width > 0 {
		if pad := m.width - len([]rune(fullText)); pad > 0 {
			fullText += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          fullText,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1, // just the ▌ character
	}
}

func (m *Model) headerText() string {
	return "Kategoriyalar boshqaruvi"
}

func (m *Model) headerLine() string {
	title := m.headerText()
	if m.styles.Title != nil {
		title = m.styles.Title.Render(title)
	}
	badge := m.chatID
	if m.styles.Badge != nil {
		badge = m.styles.Badge.Render(" " + m.chatID + " ")
	}
	return title + "  " + badge
}

func (m *Model) sessionLine() string {
	user := m.session.User()
	if user == nil {
		return m.location
	}
	name := strings.TrimSpace(user.Firstname + " " + user.Lastname)
	if name == "" {
		name = user.Username
	}
	return fmt.Sprintf("%s  ·  %s", name, m.location)
}

// maxVisibleRows returns how many list rows fit below the fixed chrome
// (header, session line, search box, separators, footer).
func (m *Model) maxVisibleRows() int {
	if m.height <= 0 {
		return fallbackVisibleRows
	}
	chrome := 4
	if m.showFooter {
		chrome += 2
	}
	rows := m.height - chrome - 2
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m *Model) render(lines []styledLine) string {
	lines = limitHeight(lines, m.height, m.width)
	lines = applyWidth(lines, m.width)
	return renderLines(lines)
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
		text := line.text
		if line.raw {
			w := lipgloss.Width(text)
			if w > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{
			text:          text,
			style:         line.style,
			prefixStyle:   line.prefixStyle,
			highlightFrom: line.highlightFrom,
			raw:           line.raw,
		}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			// Text already contains ANSI escapes; pass through as-is.
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

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
