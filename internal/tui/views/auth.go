// Package views provides TUI view components for the replog application.
package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/replog-dev/replog/internal/tui"
)

// ============================================================================
// Message Types
// ============================================================================

// SubmitLoginMsg is sent when the user submits the login form.
type SubmitLoginMsg struct {
	Email    string
	Password string
}

// SubmitSignupMsg is sent when the user submits the signup form.
type SubmitSignupMsg struct {
	Email    string
	Password string
}

// SubmitForgotMsg is sent when the user requests a password reset.
type SubmitForgotMsg struct {
	Email string
}

// DemoLoginMsg is sent when the user chooses the local demo identity.
type DemoLoginMsg struct{}

// ============================================================================
// AuthModel
// ============================================================================

// maxAuthWidth is the maximum width for the auth box.
const maxAuthWidth = 60

type authMode int

const (
	authModeLogin authMode = iota
	authModeSignup
	authModeForgot
)

// AuthModel is the view model for the login / signup / reset screen.
type AuthModel struct {
	mode       authMode
	email      textinput.Model
	password   textinput.Model
	focusIndex int
	submitting bool
	errText    string
	infoText   string
	width      int
	height     int
}

// NewAuthModel creates a new AuthModel.
func NewAuthModel(width, height int) AuthModel {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 254
	email.Width = maxAuthWidth - 14
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 128
	password.Width = maxAuthWidth - 14
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return AuthModel{
		email:    email,
		password: password,
		width:    width,
		height:   height,
	}
}

// Init returns the initial command for the auth view.
func (m AuthModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the auth view.
func (m AuthModel) Update(msg tea.Msg) (AuthModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tui.LoginResultMsg:
		m.submitting = false
		if msg.Err != nil {
			m.errText = tui.FailureText(msg.Err, "Login failed. Please check your credentials.")
		}
		return m, nil

	case tui.SignupResultMsg:
		m.submitting = false
		if msg.Err != nil {
			m.errText = tui.FailureText(msg.Err, "Signup failed. Please try again.")
			return m, nil
		}
		// Back to login so the fresh account can be used right away.
		m.mode = authModeLogin
		m.errText = ""
		m.infoText = msg.Message
		if m.infoText == "" {
			m.infoText = "Account created. Please log in."
		}
		m.password.SetValue("")
		return m.focusField(0), nil

	case tui.ForgotResultMsg:
		m.submitting = false
		if msg.Err != nil {
			m.errText = tui.FailureText(msg.Err, "Could not send reset email. Please try again.")
			return m, nil
		}
		m.errText = ""
		m.infoText = msg.Message
		if m.infoText == "" {
			m.infoText = "Check your email for a reset link."
		}
		return m, nil
	}

	return m.updateInputs(msg)
}

func (m AuthModel) handleKey(msg tea.KeyMsg) (AuthModel, tea.Cmd) {
	if m.submitting {
		return m, nil
	}

	switch msg.String() {
	case "ctrl+s":
		return m.switchMode(authModeSignup), nil
	case "ctrl+r":
		return m.switchMode(authModeForgot), nil
	case "ctrl+t":
		m.submitting = true
		m.errText = ""
		return m, func() tea.Msg { return DemoLoginMsg{} }
	case tui.KeyEsc:
		if m.mode != authModeLogin {
			return m.switchMode(authModeLogin), nil
		}
		return m, nil
	case tui.KeyTab, tui.KeyDown:
		return m.focusField(m.focusIndex + 1), nil
	case tui.KeyUp:
		return m.focusField(m.focusIndex - 1), nil
	case tui.KeyEnter:
		return m.submit()
	}

	return m.updateInputs(msg)
}

func (m AuthModel) submit() (AuthModel, tea.Cmd) {
	email := strings.TrimSpace(m.email.Value())
	password := m.password.Value()

	switch m.mode {
	case authModeForgot:
		if email == "" {
			m.errText = "Please enter your email."
			return m, nil
		}
		m.submitting = true
		m.errText = ""
		m.infoText = ""
		return m, func() tea.Msg { return SubmitForgotMsg{Email: email} }

	case authModeSignup:
		if email == "" || password == "" {
			m.errText = "Please enter an email and password."
			return m, nil
		}
		m.submitting = true
		m.errText = ""
		m.infoText = ""
		return m, func() tea.Msg { return SubmitSignupMsg{Email: email, Password: password} }

	default:
		if email == "" || password == "" {
			m.errText = "Please enter an email and password."
			return m, nil
		}
		m.submitting = true
		m.errText = ""
		m.infoText = ""
		return m, func() tea.Msg { return SubmitLoginMsg{Email: email, Password: password} }
	}
}

func (m AuthModel) switchMode(mode authMode) AuthModel {
	m.mode = mode
	m.errText = ""
	m.infoText = ""
	m.password.SetValue("")
	return m.focusField(0)
}

// fieldCount is 1 in forgot mode (email only), 2 otherwise.
func (m AuthModel) fieldCount() int {
	if m.mode == authModeForgot {
		return 1
	}
	return 2
}

func (m AuthModel) focusField(index int) AuthModel {
	count := m.fieldCount()
	m.focusIndex = ((index % count) + count) % count

	if m.focusIndex == 0 {
		m.email.Focus()
		m.password.Blur()
	} else {
		m.email.Blur()
		m.password.Focus()
	}
	return m
}

func (m AuthModel) updateInputs(msg tea.Msg) (AuthModel, tea.Cmd) {
	var cmd tea.Cmd
	if m.focusIndex == 0 {
		m.email, cmd = m.email.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

// View renders the auth view.
func (m AuthModel) View() string {
	var b strings.Builder

	switch m.mode {
	case authModeSignup:
		b.WriteString(tui.TitleStyle.Render("Create account"))
	case authModeForgot:
		b.WriteString(tui.TitleStyle.Render("Reset password"))
	default:
		b.WriteString(tui.TitleStyle.Render("replog"))
	}
	b.WriteString("\n\n")

	if m.infoText != "" {
		b.WriteString(tui.SuccessStyle.Render(m.infoText))
		b.WriteString("\n\n")
	}

	b.WriteString(fmt.Sprintf("Email:    %s\n", m.email.View()))
	if m.mode != authModeForgot {
		b.WriteString(fmt.Sprintf("Password: %s\n", m.password.View()))
	}

	if m.errText != "" {
		b.WriteString("\n")
		b.WriteString(tui.ErrorStyle.Render(m.errText))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.submitting {
		b.WriteString(tui.DimStyle.Render("Working..."))
	} else {
		switch m.mode {
		case authModeLogin:
			b.WriteString(tui.DimStyle.Render("enter login · ctrl+s signup · ctrl+r reset · ctrl+t demo"))
		default:
			b.WriteString(tui.DimStyle.Render("enter submit · esc back to login"))
		}
	}

	width := m.width
	if width > maxAuthWidth {
		width = maxAuthWidth
	}
	box := tui.BoxStyle.Width(width - 4).Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
