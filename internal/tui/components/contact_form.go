package components

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mablo/mablo/internal/domain"
	"github.com/mablo/mablo/internal/service"
	"github.com/mablo/mablo/internal/tui/styles"
)

// FormState is the lifecycle of the contact form
type FormState int

const (
	FormEditing FormState = iota
	FormSubmitting
	FormSent
)

// Field focus order
const (
	focusName = iota
	focusEmail
	focusMessage
	focusSubmit
	focusCount
)

// ContactForm is the contact section's form: two inputs, a message area and
// a send button. Validation errors are shown under each field.
type ContactForm struct {
	name    textinput.Model
	email   textinput.Model
	message textarea.Model
	spinner spinner.Model

	focus   int
	active  bool
	state   FormState
	errors  map[string]string
	width   int
	success string
}

// NewContactForm creates an empty form
func NewContactForm(success string) ContactForm {
	name := textinput.New()
	name.Placeholder = "Tu nombre"
	name.CharLimit = 80
	name.Prompt = ""

	email := textinput.New()
	email.Placeholder = "tu@empresa.com"
	email.CharLimit = 120
	email.Prompt = ""

	msg := textarea.New()
	msg.Placeholder = "Cuéntanos sobre tu proyecto..."
	msg.ShowLineNumbers = false
	msg.CharLimit = 2000
	msg.SetHeight(4)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.SpinnerStyle

	f := ContactForm{
		name:    name,
		email:   email,
		message: msg,
		spinner: sp,
		errors:  make(map[string]string),
		success: success,
	}
	f.SetWidth(60)
	return f
}

// SetWidth sizes the inputs to fit width cells
func (f *ContactForm) SetWidth(width int) {
	f.width = max(24, width)
	inner := f.width - 4
	f.name.Width = inner
	f.email.Width = inner
	f.message.SetWidth(inner)
}

// Activate focuses the first field
func (f *ContactForm) Activate() tea.Cmd {
	if f.state != FormEditing {
		return nil
	}
	f.active = true
	return f.setFocus(focusName)
}

// Deactivate blurs every field
func (f *ContactForm) Deactivate() {
	f.active = false
	f.name.Blur()
	f.email.Blur()
	f.message.Blur()
}

// Active reports whether the form has keyboard focus
func (f ContactForm) Active() bool {
	return f.active
}

// State returns the lifecycle state
func (f ContactForm) State() FormState {
	return f.state
}

// Values returns the current input
func (f ContactForm) Values() service.ContactForm {
	return service.ContactForm{
		Name:    f.name.Value(),
		Email:   f.email.Value(),
		Message: f.message.Value(),
	}
}

// SetValues fills the inputs
func (f *ContactForm) SetValues(v service.ContactForm) {
	f.name.SetValue(v.Name)
	f.email.SetValue(v.Email)
	f.message.SetValue(v.Message)
}

// Error returns the error shown for field, if any
func (f ContactForm) Error(field string) string {
	return f.errors[field]
}

// BeginSubmit validates the input. If it is valid the form switches to the
// submitting state and the spinner starts; otherwise errors are displayed.
func (f *ContactForm) BeginSubmit() (service.ContactForm, bool, tea.Cmd) {
	values := f.Values()
	clear(f.errors)

	if err := values.Validate(); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			for _, fe := range verr.Fields {
				f.errors[fe.Field] = fe.Message
			}
			return values, false, f.setFocus(f.firstInvalid())
		}
		return values, false, nil
	}

	f.state = FormSubmitting
	f.Deactivate()
	return values, true, f.spinner.Tick
}

// Finish ends a submission. On success the form is cleared and the success
// panel is shown; on failure editing resumes with the input intact.
func (f *ContactForm) Finish(err error) {
	if err != nil {
		f.state = FormEditing
		return
	}
	f.state = FormSent
	f.name.Reset()
	f.email.Reset()
	f.message.Reset()
}

// Reset returns a sent form to editing
func (f *ContactForm) Reset() {
	f.state = FormEditing
	clear(f.errors)
}

func (f ContactForm) firstInvalid() int {
	switch {
	case f.errors[service.FieldName] != "":
		return focusName
	case f.errors[service.FieldEmail] != "":
		return focusEmail
	default:
		return focusMessage
	}
}

func (f *ContactForm) setFocus(i int) tea.Cmd {
	f.focus = i
	f.name.Blur()
	f.email.Blur()
	f.message.Blur()
	switch i {
	case focusName:
		return f.name.Focus()
	case focusEmail:
		return f.email.Focus()
	case focusMessage:
		return f.message.Focus()
	}
	return nil
}

// Update handles messages. submit is true when the user asked to send.
func (f ContactForm) Update(msg tea.Msg) (ContactForm, tea.Cmd, bool) {
	if f.state == FormSubmitting {
		var cmd tea.Cmd
		f.spinner, cmd = f.spinner.Update(msg)
		return f, cmd, false
	}
	if !f.active {
		return f, nil, false
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, FormKeys.Escape):
			f.Deactivate()
			return f, nil, false

		case key.Matches(msg, FormKeys.Submit):
			return f, nil, true

		case msg.Type == tea.KeyEnter && f.focus == focusSubmit:
			return f, nil, true

		case msg.Type == tea.KeyEnter && f.focus < focusMessage:
			return f, f.setFocus(f.focus + 1), false

		case key.Matches(msg, FormKeys.Next) && !(f.focus == focusMessage && msg.Type == tea.KeyDown):
			return f, f.setFocus((f.focus + 1) % focusCount), false

		case key.Matches(msg, FormKeys.Prev) && !(f.focus == focusMessage && msg.Type == tea.KeyUp):
			return f, f.setFocus((f.focus + focusCount - 1) % focusCount), false
		}
	}

	var cmd tea.Cmd
	switch f.focus {
	case focusName:
		f.name, cmd = f.name.Update(msg)
	case focusEmail:
		f.email, cmd = f.email.Update(msg)
	case focusMessage:
		f.message, cmd = f.message.Update(msg)
	}
	return f, cmd, false
}

// View renders the form, the spinner while submitting, or the success panel
func (f ContactForm) View() string {
	if f.state == FormSent {
		return styles.PanelStyle.
			Width(f.width).
			BorderForeground(styles.Green).
			Render(styles.SuccessStyle.Render("✓ " + f.success))
	}

	var b strings.Builder
	f.field(&b, "Nombre", f.name.View(), service.FieldName)
	f.field(&b, "Correo electrónico", f.email.View(), service.FieldEmail)
	f.field(&b, "Mensaje", f.message.View(), service.FieldMessage)

	switch {
	case f.state == FormSubmitting:
		b.WriteString(f.spinner.View() + " " + styles.DimStyle.Render("Enviando..."))
	case f.active && f.focus == focusSubmit:
		b.WriteString(styles.PrimaryButtonStyle.Render("Enviar mensaje →"))
	default:
		b.WriteString(styles.OutlineButtonStyle.Render("Enviar mensaje"))
	}

	border := styles.SlateLight
	if f.active {
		border = styles.MabloPurple
	}
	return styles.CardStyle.
		Width(f.width).
		BorderForeground(border).
		Render(b.String())
}

func (f ContactForm) field(b *strings.Builder, label, input, name string) {
	b.WriteString(styles.LabelStyle.Render(label))
	b.WriteString("\n")
	b.WriteString(input)
	b.WriteString("\n")
	if msg := f.errors[name]; msg != "" {
		b.WriteString(styles.FieldErrorStyle.Render(msg))
		b.WriteString("\n")
	}
	b.WriteString("\n")
}
