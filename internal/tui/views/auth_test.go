package views

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/replog-dev/replog/internal/api"
	"github.com/replog-dev/replog/internal/tui"
)

func TestAuthSubmitRequiresBothFields(t *testing.T) {
	m := NewAuthModel(80, 24)
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil || m.errText == "" {
		t.Error("empty form should be blocked with an error")
	}
}

func TestAuthLoginSubmit(t *testing.T) {
	m := NewAuthModel(80, 24)
	m.email.SetValue("lifter@example.com")
	m.password.SetValue("secret")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("filled form should submit")
	}
	msg, ok := cmd().(SubmitLoginMsg)
	if !ok {
		t.Fatalf("expected SubmitLoginMsg, got %T", cmd())
	}
	if msg.Email != "lifter@example.com" || msg.Password != "secret" {
		t.Errorf("unexpected login submission: %+v", msg)
	}
}

func TestAuthLoginFailureShowsFallbackText(t *testing.T) {
	m := NewAuthModel(80, 24)
	m.email.SetValue("lifter@example.com")
	m.password.SetValue("wrong")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	m, _ = m.Update(tui.LoginResultMsg{Err: &api.Error{Op: "login"}})
	if m.errText != "Login failed. Please check your credentials." {
		t.Errorf("errText: got %q", m.errText)
	}
	if m.submitting {
		t.Error("submitting flag should clear on failure")
	}
}

func TestAuthSignupSuccessReturnsToLogin(t *testing.T) {
	m := NewAuthModel(80, 24)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if m.mode != authModeSignup {
		t.Fatal("ctrl+s should enter signup mode")
	}

	m.email.SetValue("new@example.com")
	m.password.SetValue("secret")
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("signup form should submit")
	}
	if _, ok := cmd().(SubmitSignupMsg); !ok {
		t.Fatalf("expected SubmitSignupMsg, got %T", cmd())
	}

	m, _ = m.Update(tui.SignupResultMsg{Message: "Account created"})
	if m.mode != authModeLogin {
		t.Error("successful signup should return to login")
	}
	if m.infoText != "Account created" {
		t.Errorf("infoText: got %q", m.infoText)
	}
	if m.password.Value() != "" {
		t.Error("password should be cleared when switching back")
	}
}

func TestAuthForgotModeNeedsOnlyEmail(t *testing.T) {
	m := NewAuthModel(80, 24)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	if m.mode != authModeForgot {
		t.Fatal("ctrl+r should enter reset mode")
	}

	m.email.SetValue("lifter@example.com")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("reset form should submit with email only")
	}
	msg, ok := cmd().(SubmitForgotMsg)
	if !ok {
		t.Fatalf("expected SubmitForgotMsg, got %T", cmd())
	}
	if msg.Email != "lifter@example.com" {
		t.Errorf("Email: got %q", msg.Email)
	}
}

func TestAuthDemoLogin(t *testing.T) {
	m := NewAuthModel(80, 24)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	if cmd == nil {
		t.Fatal("ctrl+t should request a demo login")
	}
	if _, ok := cmd().(DemoLoginMsg); !ok {
		t.Fatalf("expected DemoLoginMsg, got %T", cmd())
	}
}

func TestAuthEscReturnsToLogin(t *testing.T) {
	m := NewAuthModel(80, 24)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != authModeLogin {
		t.Error("esc should leave signup mode")
	}
}
