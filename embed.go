package guide

import "embed"

// EmbeddedAssets contains static assets shipped with the engine:
// guide.css, guide.js
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
