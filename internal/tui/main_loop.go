package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-estate/internal/service"
	"github.com/MKhiriev/go-estate/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type viewMode int

const (
	modePortfolio viewMode = iota
	modeSearch
	modeDetail
	modeForm
	modeProfile
	modeConfirmDeleteListing
	modeConfirmDeleteAccount
)

type mainLoopModel struct {
	ctx      context.Context
	services *service.ClientServices

	mode       viewMode
	detailFrom viewMode

	portfolio []models.Listing
	idx       int
	loading   bool

	results   []models.Listing
	resultIdx int
	searching bool
	searchBar searchBarModel

	detail models.Listing

	form    listingFormModel
	profile profileFormModel

	status string
	errMsg string

	logout bool
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices) mainLoopModel {
	return mainLoopModel{
		ctx:       ctx,
		services:  services,
		loading:   true,
		searchBar: newSearchBarModel(),
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return m.cmdLoadPortfolio()
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case listingsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.portfolio = msg.listings
		if m.idx >= len(m.portfolio) {
			m.idx = len(m.portfolio) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil

	case searchDoneMsg:
		m.searching = false
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.results = msg.listings
		m.resultIdx = 0
		m.searchBar.blur()
		return m, nil

	case listingSavedMsg:
		m.form.submitting = false
		if msg.err != nil {
			m.form.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.mode = modePortfolio
		m.status = "Объявление сохранено"
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadPortfolio()

	case listingDeletedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Ошибка удаления: %v", msg.err)
			m.mode = modePortfolio
			return m, nil
		}
		m.mode = modePortfolio
		m.status = "Объявление удалено"
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadPortfolio()

	case profileSavedMsg:
		m.profile.submitting = false
		if msg.err != nil {
			m.profile.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.mode = modePortfolio
		m.status = "Профиль обновлён"
		return m, nil

	case signOutDoneMsg:
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			return m, nil
		}
		m.logout = true
		return m, tea.Quit

	case accountDeletedMsg:
		if msg.err != nil {
			m.errMsg = humanizeServerUnavailableError(msg.err)
			m.mode = modePortfolio
			return m, nil
		}
		m.logout = true
		return m, tea.Quit

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Не удалось скопировать: %v", msg.err)
			return m, nil
		}
		m.status = "Скопировано в буфер обмена"
		return m, nil
	}

	keyMsg, isKey := msg.(tea.KeyMsg)
	if !isKey {
		switch m.mode {
		case modeForm:
			return m.updateForm(msg)
		case modeProfile:
			return m.updateProfile(msg)
		case modeSearch:
			return m.updateSearch(msg)
		}
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case modePortfolio:
		return m.updatePortfolio(keyMsg)
	case modeSearch:
		return m.updateSearch(msg)
	case modeDetail:
		return m.updateDetail(keyMsg)
	case modeForm:
		return m.updateForm(msg)
	case modeProfile:
		return m.updateProfile(msg)
	case modeConfirmDeleteListing:
		return m.updateConfirmDeleteListing(keyMsg)
	case modeConfirmDeleteAccount:
		return m.updateConfirmDeleteAccount(keyMsg)
	}

	return m, nil
}

func (m mainLoopModel) updatePortfolio(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.portfolio)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if listing, ok := m.currentPortfolioItem(); ok {
			m.detail = listing
			m.detailFrom = modePortfolio
			m.mode = modeDetail
		}
	case key.Matches(keyMsg, keys.newItem):
		m.form = newListingFormModel(models.Listing{})
		m.mode = modeForm
		return m, m.form.init()
	case key.Matches(keyMsg, keys.edit):
		if listing, ok := m.currentPortfolioItem(); ok {
			m.form = newListingFormModel(listing)
			m.mode = modeForm
			return m, m.form.init()
		}
	case key.Matches(keyMsg, keys.delete):
		if _, ok := m.currentPortfolioItem(); ok {
			m.mode = modeConfirmDeleteListing
		}
	case key.Matches(keyMsg, keys.search):
		m.mode = modeSearch
		m.searchBar.focus()
		return m, m.searchBar.init()
	case key.Matches(keyMsg, keys.profile):
		user, ok := m.services.AuthService.CurrentUser()
		if !ok {
			m.errMsg = "Сессия не активна"
			return m, nil
		}
		m.profile = newProfileFormModel(user)
		m.mode = modeProfile
		return m, m.profile.init()
	case key.Matches(keyMsg, keys.delAccount):
		m.mode = modeConfirmDeleteAccount
	case key.Matches(keyMsg, keys.logout):
		return m, m.cmdSignOut()
	}

	return m, nil
}

func (m mainLoopModel) updateDetail(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.quit):
		m.mode = m.detailFrom
	case key.Matches(keyMsg, keys.copy):
		return m, cmdCopyToClipboard(m.detail.Address)
	case key.Matches(keyMsg, keys.copyImage):
		if len(m.detail.ImageURLs) > 0 {
			return m, cmdCopyToClipboard(m.detail.ImageURLs[0])
		}
	}
	return m, nil
}

func (m mainLoopModel) updateConfirmDeleteListing(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.yes):
		if listing, ok := m.currentPortfolioItem(); ok {
			return m, m.cmdDeleteListing(listing.ID)
		}
		m.mode = modePortfolio
	case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.esc):
		m.mode = modePortfolio
	}
	return m, nil
}

func (m mainLoopModel) updateConfirmDeleteAccount(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.yes):
		return m, m.cmdDeleteAccount()
	case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.esc):
		m.mode = modePortfolio
	}
	return m, nil
}

func (m mainLoopModel) View() string {
	switch m.mode {
	case modeSearch:
		return m.viewSearch()
	case modeDetail:
		return m.viewDetail()
	case modeForm:
		return m.form.view()
	case modeProfile:
		return m.profile.view()
	case modeConfirmDeleteListing:
		listing, _ := m.currentPortfolioItem()
		return overlayBoxStyle.Render("Удалить \"" + fitText(listing.Name, 40) + "\"?\n\ny да    n нет")
	case modeConfirmDeleteAccount:
		return overlayBoxStyle.Render("Удалить аккаунт вместе со всеми объявлениями?\n\ny да    n нет")
	default:
		return m.viewPortfolio()
	}
}

func (m mainLoopModel) viewPortfolio() string {
	var b strings.Builder

	if m.status != "" {
		b.WriteString("OK: ")
		b.WriteString(m.status)
		b.WriteString("\n\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n\n")
	}

	switch {
	case m.loading:
		b.WriteString("Загрузка...")
	case len(m.portfolio) == 0:
		b.WriteString("У вас пока нет объявлений. Нажмите n, чтобы создать первое.")
	default:
		b.WriteString(renderListingTable(m.portfolio, m.idx))
	}

	return renderPage(
		"МОИ ОБЪЯВЛЕНИЯ",
		strings.TrimRight(b.String(), "\n"),
		"enter: открыть │ n: новое │ e: изменить │ d: удалить │ s: поиск │ p: профиль │ l: выйти из аккаунта │ q: выход",
	)
}

func (m mainLoopModel) viewDetail() string {
	var b strings.Builder
	listing := m.detail

	b.WriteString("Название      │ " + listing.Name + "\n")
	b.WriteString("Описание      │ " + fitText(listing.Description, 60) + "\n")
	b.WriteString("Адрес         │ " + listing.Address + "\n")
	b.WriteString("Тип           │ " + listingTypeLabel(listing.Type) + "\n")
	b.WriteString("Цена          │ " + formatPrice(listing) + "\n")
	if listing.Offer {
		b.WriteString("Без скидки    │ $" + groupDigits(listing.RegularPrice) + "\n")
	}
	b.WriteString("Комнаты       │ " + roomsLabel(listing) + "\n")
	b.WriteString("Мебель        │ " + boolLabel(listing.Furnished) + "\n")
	b.WriteString("Парковка      │ " + boolLabel(listing.Parking) + "\n")
	b.WriteString("Фотографии    │\n")
	for _, url := range listing.ImageURLs {
		b.WriteString("  - " + url + "\n")
	}

	if m.status != "" {
		b.WriteString("\nOK: " + m.status + "\n")
	}

	return renderPage(
		"ОБЪЯВЛЕНИЕ #"+fmt.Sprint(listing.ID),
		strings.TrimRight(b.String(), "\n"),
		"esc: назад │ c: копир. адрес │ i: копир. ссылку на фото",
	)
}

func renderListingTable(listings []models.Listing, selected int) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%-4s │ %-30s │ %-8s │ %-14s │ %s\n", "", "Название", "Тип", "Цена", "Комнаты"))
	b.WriteString(strings.Repeat("─", 80))
	b.WriteString("\n")

	for i, listing := range listings {
		cursor := " "
		if i == selected {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %-2d │ %-30s │ %-8s │ %-14s │ %s\n",
			cursor, i+1,
			fitText(listing.Name, 30),
			listingTypeLabel(listing.Type),
			formatPrice(listing),
			roomsLabel(listing),
		))
	}

	return b.String()
}

func (m mainLoopModel) currentPortfolioItem() (models.Listing, bool) {
	if len(m.portfolio) == 0 || m.idx < 0 || m.idx >= len(m.portfolio) {
		return models.Listing{}, false
	}
	return m.portfolio[m.idx], true
}

func (m mainLoopModel) cmdLoadPortfolio() tea.Cmd {
	ctx := m.ctx
	listings := m.services.ListingService

	return func() tea.Msg {
		items, err := listings.MyListings(ctx)
		return listingsLoadedMsg{listings: items, err: err}
	}
}

func (m mainLoopModel) cmdDeleteListing(listingID int64) tea.Cmd {
	ctx := m.ctx
	listings := m.services.ListingService

	return func() tea.Msg {
		return listingDeletedMsg{err: listings.RemoveListing(ctx, listingID)}
	}
}

func (m mainLoopModel) cmdSignOut() tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService

	return func() tea.Msg {
		return signOutDoneMsg{err: auth.SignOut(ctx)}
	}
}

func (m mainLoopModel) cmdDeleteAccount() tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService

	return func() tea.Msg {
		return accountDeletedMsg{err: auth.DeleteAccount(ctx)}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}
