package auth

import "strings"

// DefaultRedirectPath is where a login lands when no valid next path is given.
// It is itself a member of the allowlist.
const DefaultRedirectPath = "/pages"

// allowedRedirectPrefixes is the fixed set of dashboard surfaces a
// post-login redirect may target. The next parameter is attacker-influenced,
// so membership is re-checked on every use.
var allowedRedirectPrefixes = []string{
	"/pages",
	"/generate",
	"/themes",
	"/content",
	"/settings",
}

// IsAllowedRedirect reports whether path equals one of the allowed prefixes
// or starts with one of them followed by "/". Anything else is rejected,
// including absolute URLs and lookalikes such as "/pagesx".
func IsAllowedRedirect(path string) bool {
	for _, prefix := range allowedRedirectPrefixes {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}
	return false
}

// SafeRedirectPath returns path if it is allow-listed, otherwise the default.
// Absent or disallowed input is substituted silently; this never errors.
func SafeRedirectPath(path string) string {
	if IsAllowedRedirect(path) {
		return path
	}
	return DefaultRedirectPath
}
