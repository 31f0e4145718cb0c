package tui

import (
	"strings"

	"github.com/MKhiriev/go-estate/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// profileFormModel edits the signed-in user's profile. Empty fields are left
// unchanged server-side; the password field is blank by default and only
// sent when the user types a new one.
type profileFormModel struct {
	inputs []textinput.Model
	focus  int

	submitting bool
	errMsg     string
}

func newProfileFormModel(user models.User) profileFormModel {
	fields := make([]textinput.Model, 4)

	fields[0] = textinput.New()
	fields[0].Placeholder = "login"
	fields[0].SetValue(user.Username)
	fields[0].CharLimit = 20
	fields[0].Width = 40
	fields[0].Focus()

	fields[1] = textinput.New()
	fields[1].Placeholder = "e-mail"
	fields[1].SetValue(user.Email)
	fields[1].CharLimit = 64
	fields[1].Width = 40

	fields[2] = textinput.New()
	fields[2].Placeholder = "новый пароль (пусто — без изменений)"
	fields[2].EchoMode = textinput.EchoPassword
	fields[2].EchoCharacter = '*'
	fields[2].Width = 40

	fields[3] = textinput.New()
	fields[3].Placeholder = "ссылка на аватар"
	fields[3].SetValue(user.Avatar)
	fields[3].CharLimit = 256
	fields[3].Width = 40

	return profileFormModel{inputs: fields}
}

func (f profileFormModel) init() tea.Cmd {
	return textinput.Blink
}

func (m mainLoopModel) updateProfile(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if !isKey {
		var cmd tea.Cmd
		m.profile.inputs[m.profile.focus], cmd = m.profile.inputs[m.profile.focus].Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.mode = modePortfolio
		return m, nil
	case key.Matches(keyMsg, keys.tab):
		m.profile.focusNext()
		return m, nil
	case key.Matches(keyMsg, keys.backtab):
		m.profile.focusPrev()
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		if m.profile.submitting {
			return m, nil
		}

		m.profile.errMsg = ""
		m.profile.submitting = true
		return m, m.cmdSaveProfile(models.UpdateProfileRequest{
			Username: strings.TrimSpace(m.profile.inputs[0].Value()),
			Email:    strings.TrimSpace(m.profile.inputs[1].Value()),
			Password: m.profile.inputs[2].Value(),
			Avatar:   strings.TrimSpace(m.profile.inputs[3].Value()),
		})
	}

	var cmd tea.Cmd
	m.profile.inputs[m.profile.focus], cmd = m.profile.inputs[m.profile.focus].Update(msg)
	return m, cmd
}

func (f profileFormModel) view() string {
	var b strings.Builder

	b.WriteString("Поле    │ Значение\n")
	b.WriteString("────────┼────────────────────────────────────────────\n")
	b.WriteString("Логин   │ [")
	b.WriteString(f.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("E-mail  │ [")
	b.WriteString(f.inputs[1].View())
	b.WriteString("]\n")
	b.WriteString("Пароль  │ [")
	b.WriteString(f.inputs[2].View())
	b.WriteString("]\n")
	b.WriteString("Аватар  │ [")
	b.WriteString(f.inputs[3].View())
	b.WriteString("]\n")

	if f.submitting {
		b.WriteString("\n[Сохранение...]\n")
	} else {
		b.WriteString("\n[Сохранить]\n")
	}

	if f.errMsg != "" {
		b.WriteString("\nОшибка: ")
		b.WriteString(f.errMsg)
		b.WriteString("\n")
	}

	return renderPage("ПРОФИЛЬ", strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ enter: сохранить │ x: удалить аккаунт (из списка)")
}

func (f *profileFormModel) focusNext() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *profileFormModel) focusPrev() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (m mainLoopModel) cmdSaveProfile(req models.UpdateProfileRequest) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService

	return func() tea.Msg {
		user, err := auth.UpdateProfile(ctx, req)
		return profileSavedMsg{user: user, err: err}
	}
}
