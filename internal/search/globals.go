package search

// System paths skipped unless hidden traversal is enabled
var systemPaths = []string{
	"/proc", "/root", "/boot", "/dev", "/lib", "/lib64",
	"/lost+found", "/run", "/sbin", "/sys", "/tmp",
	"/var/tmp", "/var/lib", "/var/log", "/var/db", "/var/cache",
	"/etc/pacman.d", "/etc/sudoers.d", "/etc/audit",
}

// Version information, set with -ldflags at build time
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)
