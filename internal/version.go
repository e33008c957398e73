package internal

// Version is the textlens release version
const Version = "0.3.0"
