package build

// Set with -ldflags "-X github.com/sergeii/classicrypt/cmd/classicrypt/build.Version=..."
var (
	Version = "development"
	Commit  = "unknown"
	Time    = "unknown"
)
