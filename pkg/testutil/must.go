package testutil

import "os"

// Must panics if the error value is not nil. It is useful with functions like
// os.Mkdir to succinctly abort a test on a "can't happen" failure.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// MustMkdirAll calls os.MkdirAll for each argument and panics on error.
func MustMkdirAll(names ...string) {
	for _, name := range names {
		Must(os.MkdirAll(name, 0700))
	}
}

// MustCreateEmpty creates empty files and panics on error.
func MustCreateEmpty(names ...string) {
	for _, name := range names {
		file, err := os.Create(name)
		Must(err)
		file.Close()
	}
}

// MustWriteFile calls os.WriteFile with permission 0600 and panics on error.
func MustWriteFile(filename, data string) {
	Must(os.WriteFile(filename, []byte(data), 0600))
}
