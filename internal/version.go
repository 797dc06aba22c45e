package internal

// Version is the dialectprompt release.
const Version = "0.3.0"
