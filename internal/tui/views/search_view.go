package views

import (
	bondlyv1 "github.com/bondly/bondly/gen/bondly/v1"
	"github.com/bondly/bondly/internal/tui/model"
	"github.com/bondly/bondly/internal/tui/ui"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// SearchView runs message searches and lists the hits.
type SearchView struct {
	*tview.Flex
	theme   *ui.Theme
	input   *tview.InputField
	results *tview.Table
	onQuery func(query string)
	data    []*bondlyv1.SearchResult
}

// NewSearchView creates a new search view.
func NewSearchView(theme *ui.Theme) *SearchView {
	input := tview.NewInputField().
		SetLabel(" Search: ").
		SetFieldWidth(0)
	input.SetBackgroundColor(theme.BgColor)
	input.SetFieldBackgroundColor(theme.BgColor)
	input.SetFieldTextColor(theme.FgColor)
	input.SetLabelColor(theme.MenuKeyColor)

	results := tview.NewTable().
		SetSelectable(true, false).
		SetBorders(false).
		SetFixed(1, 0)
	results.SetBorder(true)
	results.SetBorderColor(theme.BorderColor)
	results.SetBackgroundColor(theme.BgColor)
	results.SetTitle(" Results ")
	results.SetTitleColor(theme.TitleColor)
	results.SetSelectedStyle(tcell.StyleDefault.
		Foreground(theme.TableCursorFg).
		Background(theme.TableCursorBg))

	sv := &SearchView{
		Flex: tview.NewFlex().
			SetDirection(tview.FlexRow).
			AddItem(input, 1, 0, true).
			AddItem(results, 0, 1, false),
		theme:   theme,
		input:   input,
		results: results,
	}
	input.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEnter && sv.onQuery != nil && input.GetText() != "" {
			sv.onQuery(input.GetText())
		}
	})
	return sv
}

// Name implements ui.Component.
func (sv *SearchView) Name() string { return "Search" }

// Hints implements ui.Component.
func (sv *SearchView) Hints() []ui.MenuHint {
	return []ui.MenuHint{{Key: "enter", Description: "Search/Open"}}
}

// SetOnQuery sets the callback for a submitted query.
func (sv *SearchView) SetOnQuery(fn func(query string)) {
	sv.onQuery = fn
}

// SetQuery fills the input without running it.
func (sv *SearchView) SetQuery(q string) {
	sv.input.SetText(q)
}

// Update renders search results.
func (sv *SearchView) Update(results []*bondlyv1.SearchResult) {
	sv.data = results
	sv.results.Clear()

	for col, h := range []string{" FROM", " SNIPPET", " TIME"} {
		sv.results.SetCell(0, col, tview.NewTableCell(h).
			SetSelectable(false).
			SetTextColor(sv.theme.TableHeaderFg).
			SetBackgroundColor(sv.theme.TableHeaderBg).
			SetAttributes(tcell.AttrBold))
	}

	for i, r := range results {
		row := i + 1
		m := r.GetMessage()
		from := m.GetSenderId()
		if m.GetFromMe() {
			from = "you"
		}
		if m.GetChannelId() != "" {
			from += " #" + m.GetChannelId()
		}
		sv.results.SetCell(row, 0, tview.NewTableCell(" "+sanitize(from)).SetMaxWidth(25).SetTextColor(sv.theme.FgColor))
		sv.results.SetCell(row, 1, tview.NewTableCell(" "+sanitize(oneLine(r.Snippet))).SetExpansion(1).SetTextColor(sv.theme.FgColor))
		sv.results.SetCell(row, 2, tview.NewTableCell(" "+formatTimestamp(m.GetCreatedAtMs())).SetTextColor(sv.theme.FgColor))
	}
	sv.results.SetTitle(" Results ")
	if len(results) == 0 {
		sv.results.SetTitle(" No matches ")
	}
}

// Selected returns the conversation of the highlighted result.
func (sv *SearchView) Selected(self string) (model.Target, bool) {
	row, _ := sv.results.GetSelection()
	if row < 1 || row > len(sv.data) {
		return model.Target{}, false
	}
	return TargetOf(self, sv.data[row-1].GetMessage()), true
}

// TargetOf names the conversation m belongs to from self's point of view.
func TargetOf(self string, m *bondlyv1.Message) model.Target {
	switch {
	case m.GetChannelId() != "":
		return model.Target{Channel: m.GetChannelId()}
	case m.GetSenderId() == self:
		return model.Target{Counterpart: m.GetReceiverId()}
	}
	return model.Target{Counterpart: m.GetSenderId()}
}

// Input returns the search input.
func (sv *SearchView) Input() *tview.InputField {
	return sv.input
}

// Results returns the results table.
func (sv *SearchView) Results() *tview.Table {
	return sv.results
}
