package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mablo/mablo/internal/launch"
	"github.com/mablo/mablo/internal/service"
)

// submitTimeout bounds a submission including its simulated delay
const submitTimeout = 30 * time.Second

// SubmitInquiryCmd sends the contact form through the contact service
func SubmitInquiryCmd(svc *service.ContactService, form service.ContactForm) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
		defer cancel()

		inq, err := svc.Submit(ctx, form)
		return InquirySubmittedMsg{Inquiry: inq, Err: err}
	}
}

// MailOpener opens mailto links
type MailOpener interface {
	Open(link string) error
}

// OpenMailCmd opens a new message to address in the user's mail client
func OpenMailCmd(opener MailOpener, address string) tea.Cmd {
	return func() tea.Msg {
		if err := opener.Open(launch.MailtoURL(address, "")); err != nil {
			return ErrMsg{Err: err, Context: "No se pudo abrir el correo"}
		}
		return StatusMsg{Message: "Abriendo " + address}
	}
}

// ScrollToCmd requests a smooth scroll to the given section
func ScrollToCmd(msg ScrollToMsg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// frameCmd schedules the next animation frame
func frameCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return frameMsg{At: t}
	})
}

// ClearStatusCmd clears the status message after a delay
func ClearStatusCmd(seq int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return ClearStatusMsg{Seq: seq}
	})
}
