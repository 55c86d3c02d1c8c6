// Package shell generates the integration scripts printed by `parrot init`.
// Each script hooks the shell so that every command the user runs is passed
// to `parrot record add`, which ignores it unless a recording is active.
package shell

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// Kind is a supported shell.
type Kind string

const (
	Fish Kind = "fish"
	Bash Kind = "bash"
	Zsh  Kind = "zsh"
)

var scripts = map[Kind]string{
	Fish: fishScript,
	Bash: bashScript,
	Zsh:  zshScript,
}

// Supported returns the supported shell names in lexicographic order.
func Supported() []string {
	names := make([]string, 0, len(scripts))
	for k := range scripts {
		names = append(names, string(k))
	}
	sort.Strings(names)
	return names
}

// Parse maps a shell name to a Kind.
func Parse(name string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := scripts[k]; !ok {
		return "", fmt.Errorf("unsupported shell %q (supported: %s)", name, strings.Join(Supported(), ", "))
	}
	return k, nil
}

// Detect determines the shell kind from an explicit name or, when that is
// empty, from the basename of the SHELL environment value.
func Detect(explicit, shellEnv string) (Kind, error) {
	if explicit != "" {
		return Parse(explicit)
	}
	if shellEnv == "" {
		return "", fmt.Errorf("cannot detect shell: SHELL is not set; pass one of: %s", strings.Join(Supported(), ", "))
	}
	return Parse(filepath.Base(shellEnv))
}

// Script returns the integration script for k, invoking the parrot binary
// by the given name.
func Script(k Kind, binary string) (string, error) {
	tmpl, ok := scripts[k]
	if !ok {
		return "", fmt.Errorf("unsupported shell %q", k)
	}
	if binary == "" {
		binary = "parrot"
	}
	return strings.ReplaceAll(tmpl, "{{parrot}}", binary), nil
}
