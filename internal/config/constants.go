package config

// Version is the current Compiscript analyzer version.
// Set at build time via -ldflags or by writing to this file.
var Version = "0.3.0"

const SourceFileExt = ".cps"

// SourceFileExtensions are all recognized source file extensions
var SourceFileExtensions = []string{".cps", ".compiscript"}

// ConfigFileName is the per-project configuration file looked up next to
// the analyzed source.
const ConfigFileName = "compiscript.yaml"

// TrimSourceExt removes any recognized source extension from a filename.
// Returns the original string if no extension matches.
func TrimSourceExt(name string) string {
	for _, ext := range SourceFileExtensions {
		if len(name) >= len(ext) && name[len(name)-len(ext):] == ext {
			return name[:len(name)-len(ext)]
		}
	}
	return name
}

// HasSourceExt returns true if the path ends with any recognized source extension.
func HasSourceExt(path string) bool {
	for _, ext := range SourceFileExtensions {
		if len(path) >= len(ext) && path[len(path)-len(ext):] == ext {
			return true
		}
	}
	return false
}

// Constructor method name looked up on `new` expressions.
const ConstructorName = "constructor"
