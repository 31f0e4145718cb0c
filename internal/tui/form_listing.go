package tui

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-estate/internal/workers"
	"github.com/MKhiriev/go-estate/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	formFieldName = iota
	formFieldDescription
	formFieldAddress
	formFieldBedrooms
	formFieldBathrooms
	formFieldRegularPrice
	formFieldDiscountPrice
	formFieldImageURLs
	formFieldPhotoPaths
	formInputCount
)

// Toggle positions follow the text inputs in the focus order.
const (
	togglePosType = formInputCount + iota
	togglePosOffer
	togglePosFurnished
	togglePosParking
	formFieldCount
)

// listingFormModel is the create/edit form for a listing. Numeric fields are
// parsed on submission; photos are given as local file paths and uploaded
// before the listing is sent to the server.
type listingFormModel struct {
	editID int64

	inputs []textinput.Model
	focus  int

	saleType  bool
	offer     bool
	furnished bool
	parking   bool

	submitting bool
	errMsg     string
}

func newListingFormModel(listing models.Listing) listingFormModel {
	labels := []struct {
		placeholder string
		value       string
		limit       int
	}{
		{"название", listing.Name, 62},
		{"описание", listing.Description, 256},
		{"адрес", listing.Address, 128},
		{"спальни", intOrEmpty(listing.Bedrooms), 2},
		{"санузлы", intOrEmpty(listing.Bathrooms), 2},
		{"цена", int64OrEmpty(listing.RegularPrice), 12},
		{"цена со скидкой", int64OrEmpty(listing.DiscountPrice), 12},
		{"ссылки на фото через запятую", strings.Join(listing.ImageURLs, ","), 1024},
		{"пути к новым фото через запятую", "", 1024},
	}

	inputs := make([]textinput.Model, formInputCount)
	for i, l := range labels {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = l.placeholder
		inputs[i].SetValue(l.value)
		inputs[i].CharLimit = l.limit
		inputs[i].Width = 46
	}
	inputs[0].Focus()

	return listingFormModel{
		editID:    listing.ID,
		inputs:    inputs,
		saleType:  listing.Type != models.ListingTypeRent,
		offer:     listing.Offer,
		furnished: listing.Furnished,
		parking:   listing.Parking,
	}
}

func (f listingFormModel) init() tea.Cmd {
	return textinput.Blink
}

func (m mainLoopModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if !isKey {
		if m.form.focus < formInputCount {
			var cmd tea.Cmd
			m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.mode = modePortfolio
		return m, nil
	case key.Matches(keyMsg, keys.tab):
		m.form.focusNext()
		return m, nil
	case key.Matches(keyMsg, keys.backtab):
		m.form.focusPrev()
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		if m.form.submitting {
			return m, nil
		}

		req, photos, err := m.form.buildRequest()
		if err != nil {
			m.form.errMsg = err.Error()
			return m, nil
		}

		m.form.errMsg = ""
		m.form.submitting = true
		return m, m.cmdSaveListing(m.form.editID, req, photos)
	case keyMsg.String() == " ":
		if m.form.focus >= formInputCount {
			m.form.toggle(m.form.focus)
			return m, nil
		}
	}

	if m.form.focus < formInputCount {
		var cmd tea.Cmd
		m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (f *listingFormModel) toggle(pos int) {
	switch pos {
	case togglePosType:
		f.saleType = !f.saleType
	case togglePosOffer:
		f.offer = !f.offer
	case togglePosFurnished:
		f.furnished = !f.furnished
	case togglePosParking:
		f.parking = !f.parking
	}
}

// buildRequest parses the form values into a listing request and the list
// of local photo files queued for upload.
func (f listingFormModel) buildRequest() (models.ListingRequest, []string, error) {
	var zero models.ListingRequest

	bedrooms, err := parseFormInt(f.inputs[formFieldBedrooms].Value(), "спальни")
	if err != nil {
		return zero, nil, err
	}
	bathrooms, err := parseFormInt(f.inputs[formFieldBathrooms].Value(), "санузлы")
	if err != nil {
		return zero, nil, err
	}
	regularPrice, err := parseFormInt64(f.inputs[formFieldRegularPrice].Value(), "цена")
	if err != nil {
		return zero, nil, err
	}

	var discountPrice int64
	if v := strings.TrimSpace(f.inputs[formFieldDiscountPrice].Value()); v != "" {
		discountPrice, err = parseFormInt64(v, "цена со скидкой")
		if err != nil {
			return zero, nil, err
		}
	}

	listingType := models.ListingTypeRent
	if f.saleType {
		listingType = models.ListingTypeSale
	}

	req := models.ListingRequest{
		Name:          strings.TrimSpace(f.inputs[formFieldName].Value()),
		Description:   strings.TrimSpace(f.inputs[formFieldDescription].Value()),
		Address:       strings.TrimSpace(f.inputs[formFieldAddress].Value()),
		Type:          listingType,
		Parking:       f.parking,
		Furnished:     f.furnished,
		Offer:         f.offer,
		Bedrooms:      bedrooms,
		Bathrooms:     bathrooms,
		RegularPrice:  regularPrice,
		DiscountPrice: discountPrice,
		ImageURLs:     splitCommaList(f.inputs[formFieldImageURLs].Value()),
	}

	return req, splitCommaList(f.inputs[formFieldPhotoPaths].Value()), nil
}

func (f listingFormModel) view() string {
	var b strings.Builder

	rows := []struct {
		label string
		field int
	}{
		{"Название        ", formFieldName},
		{"Описание        ", formFieldDescription},
		{"Адрес           ", formFieldAddress},
		{"Спальни         ", formFieldBedrooms},
		{"Санузлы         ", formFieldBathrooms},
		{"Цена            ", formFieldRegularPrice},
		{"Цена со скидкой ", formFieldDiscountPrice},
		{"Фото (URL)      ", formFieldImageURLs},
		{"Новые фото      ", formFieldPhotoPaths},
	}

	b.WriteString("Поле            │ Значение\n")
	b.WriteString("────────────────┼──────────────────────────────────────────────────\n")
	for _, row := range rows {
		b.WriteString(row.label)
		b.WriteString("│ [")
		b.WriteString(f.inputs[row.field].View())
		b.WriteString("]\n")
	}

	typeValue := "аренда"
	if f.saleType {
		typeValue = "продажа"
	}
	b.WriteString(f.toggleRow("Тип             ", typeValue, togglePosType))
	b.WriteString(f.toggleRow("Скидка          ", boolLabel(f.offer), togglePosOffer))
	b.WriteString(f.toggleRow("Мебель          ", boolLabel(f.furnished), togglePosFurnished))
	b.WriteString(f.toggleRow("Парковка        ", boolLabel(f.parking), togglePosParking))

	if f.submitting {
		b.WriteString("\n[Сохранение... фото загружаются]\n")
	} else {
		b.WriteString("\n[Сохранить]\n")
	}

	if f.errMsg != "" {
		b.WriteString("\nОшибка: ")
		b.WriteString(f.errMsg)
		b.WriteString("\n")
	}

	title := "НОВОЕ ОБЪЯВЛЕНИЕ"
	if f.editID != 0 {
		title = "ИЗМЕНЕНИЕ ОБЪЯВЛЕНИЯ"
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"), "esc: отмена │ tab: след. поле │ space: переключить │ enter: сохранить")
}

func (f listingFormModel) toggleRow(label, value string, pos int) string {
	marker := "  "
	if f.focus == pos {
		marker = "> "
	}
	return label + "│ " + marker + value + "\n"
}

func (f *listingFormModel) focusNext() {
	f.setFocus((f.focus + 1) % formFieldCount)
}

func (f *listingFormModel) focusPrev() {
	f.setFocus((f.focus - 1 + formFieldCount) % formFieldCount)
}

func (f *listingFormModel) setFocus(focus int) {
	if f.focus < formInputCount {
		f.inputs[f.focus].Blur()
	}
	f.focus = focus
	if f.focus < formInputCount {
		f.inputs[f.focus].Focus()
	}
}

// cmdSaveListing opens the queued photo files and submits the listing. File
// handles stay open for the duration of the upload and are closed before
// the result message is delivered.
func (m mainLoopModel) cmdSaveListing(editID int64, req models.ListingRequest, photoPaths []string) tea.Cmd {
	ctx := m.ctx
	listings := m.services.ListingService

	return func() tea.Msg {
		photos := make([]workers.UploadFile, 0, len(photoPaths))
		files := make([]*os.File, 0, len(photoPaths))
		defer func() {
			for _, f := range files {
				_ = f.Close()
			}
		}()

		for _, path := range photoPaths {
			f, err := os.Open(path)
			if err != nil {
				return listingSavedMsg{err: fmt.Errorf("не удалось открыть файл %q: %w", path, err)}
			}
			files = append(files, f)
			photos = append(photos, workers.UploadFile{Name: fileBaseName(path), Data: f})
		}

		var (
			listing models.Listing
			err     error
		)
		if editID == 0 {
			listing, err = listings.SubmitListing(ctx, req, photos)
		} else {
			listing, err = listings.EditListing(ctx, editID, req, photos)
		}

		return listingSavedMsg{listing: listing, err: err}
	}
}

func splitCommaList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func fileBaseName(path string) string {
	if idx := strings.LastIndexAny(path, `/\`); idx != -1 {
		return path[idx+1:]
	}
	return path
}

func parseFormInt(v, label string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("поле %q должно быть числом", label)
	}
	return n, nil
}

func parseFormInt64(v, label string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("поле %q должно быть числом", label)
	}
	return n, nil
}

func intOrEmpty(v int) string {
	if v == 0 {
		return ""
	}
	return strconv.Itoa(v)
}

func int64OrEmpty(v int64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatInt(v, 10)
}
