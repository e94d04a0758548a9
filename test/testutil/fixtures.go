// Package testutil builds desc records, local database trees and sync
// database archives for tests.
package testutil

import (
	"strings"
)

// Record describes one package for fixture purposes.
type Record struct {
	Name        string
	Base        string
	Version     string
	Description string
	URL         string
	Provides    []string
	Depends     []string
}

// Text renders the record in desc format.
func (r Record) Text() string {
	var b strings.Builder
	section := func(field string, values ...string) {
		if len(values) == 0 {
			return
		}
		b.WriteString("%" + field + "%\n")
		for _, v := range values {
			b.WriteString(v + "\n")
		}
		b.WriteString("\n")
	}

	section("FILENAME", r.Name+"-"+r.Version+"-x86_64.pkg.tar.zst")
	if r.Name != "" {
		section("NAME", r.Name)
	}
	if r.Base != "" {
		section("BASE", r.Base)
	}
	if r.Version != "" {
		section("VERSION", r.Version)
	}
	if r.Description != "" {
		section("DESC", r.Description)
	}
	if r.URL != "" {
		section("URL", r.URL)
	}
	section("ARCH", "x86_64")
	section("PROVIDES", r.Provides...)
	section("DEPENDS", r.Depends...)
	return b.String()
}

// DirName is the directory a record lives in inside a database, for
// example "bash-5.2.026-2".
func (r Record) DirName() string {
	return r.Name + "-" + r.Version
}

// Packages shared by the tests.
var (
	Bash = Record{
		Name:        "bash",
		Base:        "bash",
		Version:     "5.2.026-2",
		Description: "The GNU Bourne Again shell",
		URL:         "https://www.gnu.org/software/bash/bash.html",
		Provides:    []string{"sh"},
		Depends:     []string{"readline", "libreadline.so=8-64", "glibc", "ncurses"},
	}
	BashCompletion = Record{
		Name:        "bash-completion",
		Base:        "bash-completion",
		Version:     "2.14.0-2",
		Description: "Programmable completion for the bash shell",
		URL:         "https://github.com/scop/bash-completion",
		Depends:     []string{"bash"},
	}
	Glibc = Record{
		Name:        "glibc",
		Version:     "2.40+r16+gaa533d58ff-2",
		Description: "GNU C Library",
	}
	Ncurses = Record{
		Name:        "ncurses",
		Version:     "6.5-3",
		Description: "System V Release 4.0 curses emulation library",
		Provides:    []string{"libncursesw.so=6-64"},
	}
	Pacman = Record{
		Name:        "pacman",
		Version:     "7.0.0.r3.g7736133-1",
		Description: "A library-based package manager with dependency support",
		Provides:    []string{"libalpm.so=15-64"},
		Depends:     []string{"bash", "glibc"},
	}
	Readline = Record{
		Name:        "readline",
		Version:     "8.2.013-1",
		Description: "GNU readline library",
		Provides:    []string{"libhistory.so=8-64", "libreadline.so=8-64"},
	}
	ParallelDiskUsage = Record{
		Name:        "parallel-disk-usage",
		Version:     "0.21.1-1",
		Description: "Highly parallelized, blazing fast directory tree analyzer",
	}
	Rust = Record{
		Name:        "rust",
		Version:     "1:1.83.0-1",
		Description: "Systems programming language focused on safety, speed and concurrency",
		Provides:    []string{"cargo", "rustfmt"},
	}
	Rustup = Record{
		Name:        "rustup",
		Version:     "1.27.1-1",
		Description: "The Rust toolchain installer",
		Provides:    []string{"rust", "cargo", "rustfmt"},
	}
	ParuDerivative = Record{
		Name:        "paru",
		Version:     "2.1.0-1",
		Description: "Feature packed AUR helper",
	}
	ParallelDiskUsagePersonal = Record{
		Name:        "parallel-disk-usage",
		Version:     "0.9.2-1",
		Description: "Highly parallelized, blazing fast directory tree analyzer",
	}
	ParuPersonal = Record{
		Name:        "paru",
		Version:     "2.0.4-1",
		Description: "Feature packed AUR helper",
	}
)

// Repository is a named list of records.
type Repository struct {
	Name    string
	Records []Record
}

// BashRecords are the records of the small bash database.
func BashRecords() []Record {
	return []Record{Bash, BashCompletion}
}

// MultiRepositories returns four repositories where parallel-disk-usage and
// paru exist in more than one repository.
func MultiRepositories() []Repository {
	return []Repository{
		{Name: "core", Records: []Record{Bash, Glibc, Ncurses, Pacman, Readline}},
		{Name: "extra", Records: []Record{BashCompletion, ParallelDiskUsage, Rust, Rustup}},
		{Name: "derivative", Records: []Record{ParuDerivative}},
		{Name: "personal", Records: []Record{ParallelDiskUsagePersonal, ParuPersonal}},
	}
}
