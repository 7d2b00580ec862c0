// Package views renders the checker pages as templ components.
package views
