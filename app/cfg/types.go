package cfg

type Cfg struct {
	// Provider credentials
	APIKey    string
	APISecret string

	// SMTP delivery
	SMTPHost        string
	SMTPPort        int
	SenderAddress   string
	ReceiverAddress string
	SMTPPassword    string

	// Paths
	DBPath      string
	DataDir     string
	ResultsPath string
	ProfilePath string

	// Run control
	SkipFetch  bool
	SkipIngest bool
	SkipNotify bool
	Email      bool
	Page       int

	// Application metadata
	UserAgent string
	Timezone  string
	Debug     bool
	Version   string
}
