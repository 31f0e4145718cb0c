package tui

import (
	"strings"

	"github.com/MKhiriev/go-estate/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// searchTypeOptions cycles through the transaction-type filter of the
// catalogue search: empty means both types.
var searchTypeOptions = []string{"", models.ListingTypeSale, models.ListingTypeRent}

type searchBarModel struct {
	input   textinput.Model
	typeIdx int
	focused bool
}

func newSearchBarModel() searchBarModel {
	input := textinput.New()
	input.Placeholder = "что ищем?"
	input.CharLimit = 64
	input.Width = 40
	return searchBarModel{input: input}
}

func (s searchBarModel) init() tea.Cmd {
	return textinput.Blink
}

func (s *searchBarModel) focus() {
	s.focused = true
	s.input.Focus()
}

func (s *searchBarModel) blur() {
	s.focused = false
	s.input.Blur()
}

func (s searchBarModel) typeFilter() string {
	return searchTypeOptions[s.typeIdx]
}

func (s searchBarModel) typeFilterLabel() string {
	if s.typeFilter() == "" {
		return "все"
	}
	return listingTypeLabel(s.typeFilter())
}

func (m mainLoopModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if !isKey {
		var cmd tea.Cmd
		m.searchBar.input, cmd = m.searchBar.input.Update(msg)
		return m, cmd
	}

	if m.searchBar.focused {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.searchBar.blur()
			m.mode = modePortfolio
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.searchBar.typeIdx = (m.searchBar.typeIdx + 1) % len(searchTypeOptions)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.searching {
				return m, nil
			}
			m.searching = true
			m.errMsg = ""
			return m, m.cmdSearch(strings.TrimSpace(m.searchBar.input.Value()), m.searchBar.typeFilter())
		}

		var cmd tea.Cmd
		m.searchBar.input, cmd = m.searchBar.input.Update(msg)
		return m, cmd
	}

	// Results navigation.
	switch {
	case key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.quit):
		m.mode = modePortfolio
	case key.Matches(keyMsg, keys.up):
		if m.resultIdx > 0 {
			m.resultIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.resultIdx < len(m.results)-1 {
			m.resultIdx++
		}
	case key.Matches(keyMsg, keys.enter):
		if len(m.results) > 0 && m.resultIdx < len(m.results) {
			m.detail = m.results[m.resultIdx]
			m.detailFrom = modeSearch
			m.mode = modeDetail
		}
	case key.Matches(keyMsg, keys.search):
		m.searchBar.focus()
		return m, m.searchBar.init()
	}

	return m, nil
}

func (m mainLoopModel) viewSearch() string {
	var b strings.Builder

	b.WriteString("Запрос  │ [")
	b.WriteString(m.searchBar.input.View())
	b.WriteString("]\n")
	b.WriteString("Тип     │ " + m.searchBar.typeFilterLabel() + "\n\n")

	switch {
	case m.searching:
		b.WriteString("Поиск...")
	case m.errMsg != "":
		b.WriteString("Ошибка: " + m.errMsg)
	case m.results == nil:
		b.WriteString("Введите запрос и нажмите enter.")
	case len(m.results) == 0:
		b.WriteString("Ничего не найдено.")
	default:
		b.WriteString(renderListingTable(m.results, m.resultIdx))
	}

	hotKeys := "enter: искать │ tab: тип │ esc: назад"
	if !m.searchBar.focused {
		hotKeys = "enter: открыть │ ↑/↓: навигация │ /: новый запрос │ esc: назад"
	}

	return renderPage("ПОИСК ЖИЛЬЯ", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m mainLoopModel) cmdSearch(term, listingType string) tea.Cmd {
	ctx := m.ctx
	listings := m.services.ListingService

	return func() tea.Msg {
		found, err := listings.Search(ctx, models.SearchQuery{
			SearchTerm: term,
			Type:       listingType,
		})
		return searchDoneMsg{listings: found, err: err}
	}
}
