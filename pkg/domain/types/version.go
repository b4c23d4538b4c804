package types

// Version is the current fontinst version
const Version = "v0.1.0"
