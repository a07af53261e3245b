// Package pages contains the server-rendered pages of the menu service.
package pages

//go:generate templ generate
