package version

// Version is overridden at build time with -ldflags "-X github.com/repify/repify/version.Version=..."
var Version = "0.3.0"
