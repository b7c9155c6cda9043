// Package domain contains the core domain entities and types used by the
// application. These types represent the business concepts (findings, scan
// sessions, scan history, content items and accessibility settings) and are
// intentionally free of infrastructure concerns so they can be shared across
// packages.
package domain
