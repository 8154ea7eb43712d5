package service

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/mablo/mablo/internal/domain"
)

// Contact form field names
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldMessage = "message"
)

// Minimum lengths in runes
const (
	minNameLen    = 2
	minMessageLen = 10
)

// Field error messages shown under each input
const (
	msgName    = "Por favor, ingresa tu nombre"
	msgEmail   = "Ingresa un correo electrónico válido"
	msgMessage = "Cuéntanos un poco más sobre tu proyecto"
)

// ContactForm is the raw user input
type ContactForm struct {
	Name    string
	Email   string
	Message string
}

// Normalize trims surrounding whitespace from every field
func (f ContactForm) Normalize() ContactForm {
	return ContactForm{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Message: strings.TrimSpace(f.Message),
	}
}

// Validate checks every field and returns a *domain.ValidationError listing
// all invalid ones, or nil
func (f ContactForm) Validate() error {
	f = f.Normalize()
	var fields []domain.FieldError

	if utf8.RuneCountInString(f.Name) < minNameLen {
		fields = append(fields, domain.FieldError{Field: FieldName, Message: msgName})
	}
	if !validEmail(f.Email) {
		fields = append(fields, domain.FieldError{Field: FieldEmail, Message: msgEmail})
	}
	if utf8.RuneCountInString(f.Message) < minMessageLen {
		fields = append(fields, domain.FieldError{Field: FieldMessage, Message: msgMessage})
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// validEmail accepts a bare address with a dotted domain ("a@b.co"),
// rejecting display-name forms like "Ana <a@b.co>"
func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	at := strings.LastIndexByte(s, '@')
	domainPart := s[at+1:]
	dot := strings.LastIndexByte(domainPart, '.')
	return dot > 0 && dot < len(domainPart)-1
}
