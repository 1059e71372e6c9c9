// Package template holds the template registries for the project
// generators.
//
// A registry is a static mapping from relative output paths to rendered
// file content, produced as a pure function of the render parameters
// (project name and use-case module names). The template texts live as
// embedded assets under assets/; parametrized entries are rendered with
// text/template, static entries are copied through verbatim.
//
// Registries never touch the filesystem. Materializing a registry into a
// real directory tree is the job of internal/scaffold.
package template
