package domain

import (
	"strings"
	"time"
)

// ProfileRole represents the role of a customer profile
type ProfileRole string

const (
	RoleCustomer ProfileRole = "customer"
	RoleAdmin    ProfileRole = "admin"
)

// Profile represents a customer identity, deduplicated by normalized email
type Profile struct {
	ID          string
	Email       string // хранится нормализованным: lowercase, trimmed
	FullName    string
	CompanyName *string
	// OrganizationDomain домен организации, выведенный из email
	// nil для адресов публичных почтовых сервисов
	OrganizationDomain *string
	Role               ProfileRole

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAdmin returns true if the profile has the admin role
func (p *Profile) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// NormalizeEmail приводит email к каноническому виду: trim + lowercase
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// DeriveOrganizationDomain выводит домен организации из нормализованного email
// Возвращает nil для публичных почтовых сервисов и некорректных адресов
func DeriveOrganizationDomain(email string) *string {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return nil
	}

	domain := email[at+1:]
	if IsPublicEmailDomain(domain) {
		return nil
	}

	return &domain
}
