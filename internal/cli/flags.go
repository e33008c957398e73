package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile    string
	InputFile  string
	JSON       bool
	NoTexts    bool
	ListModels bool
	LogLevel   string
	LogFormat  string

	// Translation flags
	Provider   string
	Model      string
	SourceLang string
	TargetLang string

	// Cache flags
	CacheBackend string
	CachePath    string
	ArchiveCache bool

	// Analysis flags
	StopWords    []string
	TopWords     int
	MaxSentences int

	// Server flags
	Addr string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		LogLevel:     "info",
		LogFormat:    "text",
		Provider:     "openai",
		SourceLang:   "es",
		TargetLang:   "en",
		CacheBackend: "memory",
		TopWords:     10,
		MaxSentences: 10,
		Addr:         ":8080",
	}
}
