package main

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "1.0"

const appName = "gistwatch"
