package version

// Version is overridden at build time with -ldflags "-X github.com/bnema/pillctl/internal/version.Version=...".
var Version = "dev"

func UserAgent() string {
	return "pillctl/" + Version
}
