package version_control

// Version system:
// vMAJOR.MINOR.PATCH

// Centralized version control
const (
	// Executible
	Main_version = "v1.0.0"

	// Modular tools
	Benchmark    = "v1.0.0"
	ORF_Finder   = "v1.0.0"
	Gene_Eval    = "v1.0.0"
	ORF_Overview = "v1.0.0"
	Practice_Gen = "v1.0.0"
)
