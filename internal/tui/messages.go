package tui

import (
	"github.com/MKhiriev/go-estate/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo switches the RootModel to another page. An optional Payload is
// delivered to the target page right after the switch.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// SignInResult finishes the async sign-in command. A nil Err ends the auth
// flow with User as the session owner.
type SignInResult struct {
	User models.User
	Err  error
}

// SignUpResult finishes the async registration command.
type SignUpResult struct {
	Username string
	Err      error
}

// RegisterSuccessNotice is shown on the menu after a successful sign-up.
type RegisterSuccessNotice struct {
	Username string
}

type listingsLoadedMsg struct {
	listings []models.Listing
	err      error
}

type searchDoneMsg struct {
	listings []models.Listing
	err      error
}

type listingSavedMsg struct {
	listing models.Listing
	err     error
}

type listingDeletedMsg struct {
	err error
}

type profileSavedMsg struct {
	user models.User
	err  error
}

type signOutDoneMsg struct {
	err error
}

type accountDeletedMsg struct {
	err error
}

type copiedMsg struct {
	err error
}
