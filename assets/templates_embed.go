// Package assets embeds the project templates copied into new deployments.
package assets

import "embed"

// ProjectFS holds the bundled project skeleton: the server entry point,
// view templates, static assets, and the ignore-file template.
//
//go:embed all:project
var ProjectFS embed.FS

// ProjectRoot is the directory inside ProjectFS holding the skeleton.
const ProjectRoot = "project"
