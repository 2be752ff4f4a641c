package shared

import (
	"github.com/Guerrilla-Interactive/nextgen-init/app"
	"github.com/Guerrilla-Interactive/nextgen-init/app/notify"
)

// Toast renders the model's pending notification, or "" when there is none.
func Toast(m app.Model) string {
	if !m.HasToast {
		return ""
	}
	n := m.Toast
	mark := app.SuccessStyle.Render("✓ " + n.Title)
	if n.Style == notify.StyleFailure {
		mark = app.ErrorStyle.Render("✗ " + n.Title)
	}
	if n.Message == "" {
		return mark
	}
	return mark + "  " + app.PathStyle.Render(n.Message)
}

// Show sets n as the pending notification.
func Show(m app.Model, n notify.Notification) app.Model {
	m.Toast = n
	m.HasToast = true
	return m
}
