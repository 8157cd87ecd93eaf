// Package views renders the login and error pages as templ components.
//
// All visible text comes from Labels, which can be loaded from a YAML file:
//
//	title: Staging
//	instruction: Ask the team for the pass key
//	submit: Enter
//
// Theme adds a page title, a web font and custom CSS.
//
// The components in page_templ.go are generated from page.templ with
// "templ generate".
package views
