package version

// Current is set from main at startup; release builds inject it via ldflags.
var Current = "dev"
