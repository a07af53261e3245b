// Package layout holds the HTML shell shared by server-rendered pages.
package layout

//go:generate templ generate
