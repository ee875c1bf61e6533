// Package catalog implements the in-memory refinement stage applied on
// top of pages already fetched from the database: substring search,
// gallery sorting, and size-option derivation. Everything here is a
// pure synchronous transformation; nothing talks to the gateway.
package catalog

import (
	"strings"

	"github.com/magnetmantra/magnet_api/internal/models"
)

// matches reports whether any of the candidate fields contains the
// lower-cased term as a substring.
func matches(term string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// normalizeTerm lower-cases and trims the query. An empty or
// whitespace-only term matches everything.
func normalizeTerm(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}

// FilterProducts returns the products whose title or description
// contains term, case-insensitively, preserving input order.
func FilterProducts(items []models.Product, term string) []models.Product {
	t := normalizeTerm(term)
	if t == "" {
		return items
	}
	out := make([]models.Product, 0, len(items))
	for _, p := range items {
		if matches(t, p.Title, p.Description) {
			out = append(out, p)
		}
	}
	return out
}

// FilterCategories searches name and description.
func FilterCategories(items []models.Category, term string) []models.Category {
	t := normalizeTerm(term)
	if t == "" {
		return items
	}
	out := make([]models.Category, 0, len(items))
	for _, c := range items {
		if matches(t, c.Name, c.Description) {
			out = append(out, c)
		}
	}
	return out
}

// FilterInquiries searches reference id, email, names, and subject.
func FilterInquiries(items []models.Inquiry, term string) []models.Inquiry {
	t := normalizeTerm(term)
	if t == "" {
		return items
	}
	out := make([]models.Inquiry, 0, len(items))
	for _, i := range items {
		if matches(t, i.ReferenceID, i.Email, i.FirstName, i.LastName, i.Subject) {
			out = append(out, i)
		}
	}
	return out
}

// FilterUsers searches email only.
func FilterUsers(items []models.User, term string) []models.User {
	t := normalizeTerm(term)
	if t == "" {
		return items
	}
	out := make([]models.User, 0, len(items))
	for _, u := range items {
		if matches(t, u.Email) {
			out = append(out, u)
		}
	}
	return out
}
