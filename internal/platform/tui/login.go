package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/avorobev/breakout-tui/internal/auth"
	"github.com/avorobev/breakout-tui/internal/breakout"
)

// Login form field indices.
const (
	fieldUsername = iota
	fieldPassword
	fieldCount
)

// loginForm is the main-menu login/register screen built on
// bubbles/textinput. Enter logs in, Ctrl+R registers, Tab switches fields.
type loginForm struct {
	inputs  []textinput.Model
	focused int
	status  string
	isError bool
}

// newLoginForm creates the form with the username field focused.
func newLoginForm() loginForm {
	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 32
	username.Width = 24
	username.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 64
	password.Width = 24
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return loginForm{
		inputs: []textinput.Model{username, password},
	}
}

// Init returns the cursor blink command.
func (f loginForm) Init() tea.Cmd {
	return textinput.Blink
}

// Update processes a key message against the form and the game's auth
// operations. Returns the updated form and any command to run.
func (f loginForm) Update(msg tea.KeyMsg, game *breakout.Game) (loginForm, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab", "up", "down":
		f.focusNext()
		return f, nil

	case "enter":
		f.submitLogin(game)
		return f, nil

	case "ctrl+r":
		f.submitRegister(game)
		return f, nil
	}

	var cmd tea.Cmd
	f.inputs[f.focused], cmd = f.inputs[f.focused].Update(msg)
	return f, cmd
}

// focusNext moves focus to the other field.
func (f *loginForm) focusNext() {
	f.inputs[f.focused].Blur()
	f.focused = (f.focused + 1) % fieldCount
	f.inputs[f.focused].Focus()
}

// submitLogin attempts a login and maps the result to a status message.
// Failed attempts clear both fields.
func (f *loginForm) submitLogin(game *breakout.Game) {
	err := game.Login(f.inputs[fieldUsername].Value(), f.inputs[fieldPassword].Value())
	switch {
	case err == nil:
		f.status = ""
		f.isError = false
	case errors.Is(err, breakout.ErrCredentialsRequired):
		f.setError("Username and password required")
	case errors.Is(err, breakout.ErrInvalidCredentials):
		f.setError("Invalid credentials")
	default:
		f.setError(err.Error())
	}
}

// submitRegister attempts to create an account.
func (f *loginForm) submitRegister(game *breakout.Game) {
	err := game.Register(f.inputs[fieldUsername].Value(), f.inputs[fieldPassword].Value())
	switch {
	case err == nil:
		f.status = "Account created, press Enter to log in"
		f.isError = false
	case errors.Is(err, breakout.ErrCredentialsRequired):
		f.setError("Username and password required")
	case errors.Is(err, auth.ErrUsernameTaken):
		f.setError("Username already taken")
	default:
		f.setError(err.Error())
	}
}

// setError records an error status and clears both fields.
func (f *loginForm) setError(msg string) {
	f.status = msg
	f.isError = true
	f.inputs[fieldUsername].SetValue("")
	f.inputs[fieldPassword].SetValue("")
}

// Form styles.
var (
	loginTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))
	loginBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 3)
	loginHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
	loginErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
	loginOKStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))
)

// View renders the login screen centered in the given dimensions.
func (f loginForm) View(width, height int) string {
	status := " "
	if f.status != "" {
		if f.isError {
			status = loginErrorStyle.Render(f.status)
		} else {
			status = loginOKStyle.Render(f.status)
		}
	}

	box := loginBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		"Username: "+f.inputs[fieldUsername].View(),
		"Password: "+f.inputs[fieldPassword].View(),
		"",
		status,
	))

	content := lipgloss.JoinVertical(lipgloss.Center,
		loginTitleStyle.Render("B R E A K O U T"),
		"",
		box,
		"",
		loginHintStyle.Render("Enter login · Ctrl+R register · Tab switch field · Ctrl+C quit"),
	)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
